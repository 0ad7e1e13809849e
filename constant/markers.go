// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// URL shape markers for the host LMS and the video/identity provider.
const (
	// LMSLoginPath marks the Moodle login page in a post-navigation URL.
	LMSLoginPath = "/login/index.php"

	// QuestionBankPath marks the quiz question-editing screen.
	QuestionBankPath = "/mod/quiz/edit.php"

	// VideoLinkPath is the anchor href shape of an embedded resource link
	// that may resolve to a video.
	VideoLinkPath = "/mod/url/view.php"

	// StreamMarker identifies a resolved SharePoint/Stream video page.
	StreamMarker = "stream.aspx"
)
