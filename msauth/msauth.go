// Package msauth drives the Microsoft federated-login challenge to completion:
// credentials, multi-factor approval, and the "Stay signed in?" prompt.
//
// The challenge runs inside an already-redirected tab. It mutates only that tab,
// never persists credentials, and reports failure without aborting the caller:
// a failed challenge just means the subsequent video-resource check will fail too.
package msauth

import (
	"fmt"
	"strings"
	"time"

	"github.com/quizthumb-cli/quizthumb/browser"
	"github.com/quizthumb-cli/quizthumb/color"
	"github.com/quizthumb-cli/quizthumb/icon"
	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/quizthumb-cli/quizthumb/style"
)

// Wait budgets per challenge condition. The multi-factor approval gets the
// longest allowance because a human has to pick up a phone.
const (
	// StaySignedInTimeout bounds the wait for the post-MFA "Stay signed in?" prompt.
	StaySignedInTimeout = 60 * time.Second

	// ApprovalCodeTimeout bounds the wait for the numeric approval code to render.
	ApprovalCodeTimeout = 3 * time.Second
)

// Identity-provider selectors and URL markers.
const (
	loginHostPrimary   = "login.microsoftonline.com"
	loginHostSecondary = "login.windows.net"

	emailSelector        = `input[type="email"], input[name="loginfmt"]`
	passwordSelector     = `input[type="password"], input[name="passwd"]`
	submitSelector       = `input[type="submit"], button[type="submit"]`
	approvalCodeSelector = `#idRichContext_DisplaySign`
	staySignedInYes      = `#idSIButton9`
)

// Stage tracks the progress of one federated-login attempt.
type Stage int

const (
	Unauthenticated Stage = iota
	CredentialsSubmitted
	MfaPending
	StaySignedInPrompted
	Completed
	Failed
)

// String returns the human-readable stage name.
func (s Stage) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case CredentialsSubmitted:
		return "credentials submitted"
	case MfaPending:
		return "mfa pending"
	case StaySignedInPrompted:
		return "stay-signed-in prompted"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsLoginURL reports whether a post-navigation location is the identity provider's login page.
func IsLoginURL(u string) bool {
	return strings.Contains(u, loginHostPrimary) || strings.Contains(u, loginHostSecondary)
}

// Challenge holds the identity and secret submitted per attempt.
// Values are supplied by the caller each time and never cached here.
type Challenge struct {
	Email    string
	Password string
}

// Complete drives the login challenge on the given tab until Completed or Failed.
// The returned error carries the triggering cause when the terminal stage is Failed.
func (c Challenge) Complete(tab *browser.Tab) error {
	stage := Unauthenticated

	fail := func(err error) error {
		failedAt := stage
		stage = Failed
		return fmt.Errorf("auth challenge failed at stage %q: %w", failedAt, err)
	}

	fmt.Printf("  %s Handling Microsoft authentication...\n", icon.Get(icon.Lock))

	// Identity, then secret. Each submit reloads the form.
	if err := tab.Fill(emailSelector, c.Email); err != nil {
		return fail(err)
	}
	if err := tab.Click(submitSelector, browser.ShortElementTimeout); err != nil {
		return fail(err)
	}
	stage = CredentialsSubmitted
	log.Debugf("auth stage: %s", stage)

	if err := tab.Fill(passwordSelector, c.Password); err != nil {
		return fail(err)
	}
	if err := tab.Click(submitSelector, browser.ShortElementTimeout); err != nil {
		return fail(err)
	}
	stage = MfaPending
	log.Debugf("auth stage: %s", stage)

	fmt.Printf("\n%s\n", style.Bold("  MFA REQUIRED: approve the sign-in on your device"))
	c.surfaceApprovalCode(tab)
	fmt.Println(style.Faint("  Waiting for MFA approval and 'Stay signed in?' prompt..."))

	// The prompt is the observable signal that the approval went through.
	if err := tab.WaitVisibleText("Stay signed in?", StaySignedInTimeout); err != nil {
		return fail(fmt.Errorf("stay-signed-in prompt never appeared: %w", err))
	}
	stage = StaySignedInPrompted
	log.Debugf("auth stage: %s", stage)

	// Keep the session cookie so the remaining links reuse this login.
	if err := tab.Click(staySignedInYes, browser.ShortElementTimeout); err != nil {
		return fail(err)
	}

	stage = Completed
	log.Debugf("auth stage: %s", stage)
	fmt.Printf("  %s Microsoft authentication completed\n", icon.Get(icon.Success))
	return nil
}

// surfaceApprovalCode relays the numeric approval code to the operator, who must
// enter it on a separate device. Absence of the code is normal for push-only MFA.
func (c Challenge) surfaceApprovalCode(tab *browser.Tab) {
	code, err := tab.Text(approvalCodeSelector, ApprovalCodeTimeout)
	if err != nil || strings.TrimSpace(code) == "" {
		return
	}

	banner := style.Fg(color.HiYellow)
	fmt.Println(banner("  ============================================"))
	fmt.Println(banner(fmt.Sprintf("  ** APPROVAL NUMBER: %s **", strings.TrimSpace(code))))
	fmt.Println(banner("  Enter this number on your phone/device"))
	fmt.Println(banner("  ============================================"))
}
