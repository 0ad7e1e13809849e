// Package cmd implements the command-line interface for quizthumb.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/quizthumb-cli/quizthumb/color"
	"github.com/quizthumb-cli/quizthumb/constant"
	"github.com/quizthumb-cli/quizthumb/icon"
	"github.com/quizthumb-cli/quizthumb/style"
)

// chromeCandidates are the executable names probed for a driveable browser,
// most common first.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"msedge",
}

// CheckDependencies verifies the availability of required system dependencies.
// The current implementation validates the presence of a Chrome-compatible
// browser in the system PATH.
func CheckDependencies() {
	for _, candidate := range chromeCandidates {
		if _, err := exec.LookPath(candidate); err == nil {
			return
		}
	}

	printMissingDependencyError("google-chrome")
	os.Exit(1)
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install --cask google-chrome"
	case constant.Linux:
		installCmd = "sudo apt install chromium-browser" // Generic, maybe check distro
	case constant.Windows:
		installCmd = "winget install Google.Chrome"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("No Chrome-compatible browser ('%s' or similar) was found in your PATH.", dep)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install one, try running:\n  %s", style.New().Foreground(color.HiYellow).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
