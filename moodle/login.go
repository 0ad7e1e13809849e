package moodle

import (
	"fmt"
	"strings"

	"github.com/quizthumb-cli/quizthumb/browser"
	"github.com/quizthumb-cli/quizthumb/constant"
	"github.com/quizthumb-cli/quizthumb/icon"
	"github.com/quizthumb-cli/quizthumb/log"
)

// LMS login form selectors. The Moodle login page is single-factor; federated
// logins triggered by video links are handled elsewhere.
const (
	usernameSelector    = `input[name="username"]`
	passwordSelector    = `input[name="password"]`
	loginSubmitSelector = `button[type="submit"], input[type="submit"]`
)

// isLMSLoginURL reports whether a location is the LMS login page.
func isLMSLoginURL(u string) bool {
	return strings.Contains(u, constant.LMSLoginPath)
}

// login fills and submits the LMS credential form on the given tab.
// The caller decides when a login is required; this only drives the form.
func (r *Runner) login(tab *browser.Tab) error {
	fmt.Printf("%s Logging in as %s...\n", icon.Get(icon.Lock), r.creds.Username)

	if err := tab.Fill(usernameSelector, r.creds.Username); err != nil {
		return fmt.Errorf("username field: %w", err)
	}
	if err := tab.Fill(passwordSelector, r.creds.Password); err != nil {
		return fmt.Errorf("password field: %w", err)
	}
	if err := tab.Click(loginSubmitSelector, browser.ShortElementTimeout); err != nil {
		return fmt.Errorf("login submit: %w", err)
	}

	// A successful login navigates away from the form.
	location, err := tab.URL()
	if err != nil {
		return err
	}
	if isLMSLoginURL(location) {
		return fmt.Errorf("still on login page after submit, check credentials")
	}

	log.Infof("logged in, landed on %s", location)
	return nil
}
