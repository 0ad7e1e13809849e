package msauth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStageString(t *testing.T) {
	Convey("Stage String", t, func() {
		So(Unauthenticated.String(), ShouldEqual, "unauthenticated")
		So(CredentialsSubmitted.String(), ShouldEqual, "credentials submitted")
		So(MfaPending.String(), ShouldEqual, "mfa pending")
		So(StaySignedInPrompted.String(), ShouldEqual, "stay-signed-in prompted")
		So(Completed.String(), ShouldEqual, "completed")
		So(Failed.String(), ShouldEqual, "failed")
		So(Stage(42).String(), ShouldEqual, "unknown")
	})
}

func TestIsLoginURL(t *testing.T) {
	Convey("IsLoginURL", t, func() {
		Convey("Should detect identity-provider hosts", func() {
			So(IsLoginURL("https://login.microsoftonline.com/common/oauth2/authorize?x=1"), ShouldBeTrue)
			So(IsLoginURL("https://login.windows.net/tenant/saml2"), ShouldBeTrue)
		})

		Convey("Should pass through ordinary locations", func() {
			So(IsLoginURL("https://example.sharepoint.com/sites/x/stream.aspx?id=1"), ShouldBeFalse)
			So(IsLoginURL("https://moodle.example.edu/mod/quiz/view.php?id=137"), ShouldBeFalse)
		})
	})
}
