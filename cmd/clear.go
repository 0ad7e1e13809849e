// Package cmd implements the command-line interface for quizthumb.
package cmd

import (
	"fmt"

	"github.com/quizthumb-cli/quizthumb/auth"
	"github.com/quizthumb-cli/quizthumb/filesystem"
	"github.com/quizthumb-cli/quizthumb/icon"
	"github.com/quizthumb-cli/quizthumb/util"
	"github.com/quizthumb-cli/quizthumb/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"thumbnails directory", "thumbnails", mo.Some("t"), where.Thumbnails},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().StringP("password", "p", "", "remove the stored password for the given username")
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if doClear(target.argLong) {
				anyCleared = true
				e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
				_ = util.Delete(target.location())
				e()
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
				handleErr(filesystem.API().RemoveAll(target.location()))
			}
		}

		if username := lo.Must(cmd.Flags().GetString("password")); username != "" {
			anyCleared = true
			handleErr(auth.DeletePassword(username))
			fmt.Printf("%s Stored password for %s removed\n", icon.Get(icon.Success), username)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
