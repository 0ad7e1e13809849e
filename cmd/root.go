// Package cmd implements the command-line interface for quizthumb.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/quizthumb-cli/quizthumb/auth"
	"github.com/quizthumb-cli/quizthumb/browser"
	"github.com/quizthumb-cli/quizthumb/color"
	"github.com/quizthumb-cli/quizthumb/constant"
	"github.com/quizthumb-cli/quizthumb/icon"
	"github.com/quizthumb-cli/quizthumb/key"
	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/quizthumb-cli/quizthumb/moodle"
	"github.com/quizthumb-cli/quizthumb/msauth"
	"github.com/quizthumb-cli/quizthumb/style"
	"github.com/quizthumb-cli/quizthumb/util"
	"github.com/quizthumb-cli/quizthumb/version"
	"github.com/quizthumb-cli/quizthumb/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().IntP("thumbnail-width", "w", 0, "Width of inserted thumbnails in pixels")
	lo.Must0(viper.BindPFlag(key.ThumbnailWidth, rootCmd.Flags().Lookup("thumbnail-width")))

	rootCmd.Flags().StringP("question-name", "q", "", "Process only questions whose name matches")
	rootCmd.Flags().Bool("headless", false, "Run the browser without a visible window")
	lo.Must0(viper.BindPFlag(key.BrowserHeadless, rootCmd.Flags().Lookup("headless")))

	rootCmd.Flags().StringSlice("other-ids", []string{}, "Additional quiz ids to process with the same settings")
	rootCmd.Flags().Bool("save-password", false, "Store the password in the system keyring for later runs")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the quizthumb application.
var rootCmd = &cobra.Command{
	Use:   constant.Quizthumb + " [quiz-url] [username] [password] [ms-email]",
	Short: "Turn quiz video links into clickable thumbnails",
	Long: "Turn plain video links inside quiz questions into clickable thumbnail previews.\n" +
		style.New().Italic(true).Foreground(color.HiBlue).Render("    Pass \"-\" as the password to read it from the system keyring."),
	Args: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			return nil
		}
		return cobra.ExactArgs(4)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		var (
			quizURL  = args[0]
			username = args[1]
			password = args[2]
			msEmail  = args[3]
		)

		password = resolvePassword(username, password)
		if lo.Must(cmd.Flags().GetBool("save-password")) {
			handleErr(auth.SetPassword(username, password))
			fmt.Printf("%s Password stored in the system keyring\n", icon.Get(icon.Success))
		}

		otherIDs := lo.Must(cmd.Flags().GetStringSlice("other-ids"))
		quizURLs, err := moodle.ExpandQuizIDs(quizURL, otherIDs)
		handleErr(err)

		headless := viper.GetBool(key.BrowserHeadless)
		session, err := browser.Launch(headless)
		handleErr(err)
		defer session.Close()

		runner := moodle.NewRunner(
			session,
			moodle.Credentials{Username: username, Password: password},
			msauth.Challenge{Email: msEmail, Password: password},
			lo.Must(cmd.Flags().GetString("question-name")),
		)

		runner.Run(quizURLs)

		// A visible browser stays open for inspection until the operator lets go.
		if !headless {
			confirmClose()
		}
	},
}

// resolvePassword turns the password argument into the actual secret: a literal
// value passes through, "-" reads the keyring, and a keyring miss falls back to
// an interactive prompt.
func resolvePassword(username, password string) string {
	if password != "-" {
		return password
	}

	stored, err := auth.GetPassword(username)
	if err == nil && stored != "" {
		log.Debugf("password for %s read from keyring", username)
		return stored
	}

	var prompted string
	handleErr(survey.AskOne(
		&survey.Password{Message: fmt.Sprintf("Password for %s:", username)},
		&prompted,
		survey.WithValidator(survey.Required),
	))
	return prompted
}

// confirmClose blocks until the operator approves tearing down the visible browser.
func confirmClose() {
	confirmed := true
	_ = survey.AskOne(
		&survey.Confirm{Message: "Close the browser?", Default: true},
		&confirmed,
	)
	_ = confirmed
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
