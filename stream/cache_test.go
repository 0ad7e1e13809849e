package stream

import (
	"testing"

	"github.com/quizthumb-cli/quizthumb/filesystem"
	"github.com/quizthumb-cli/quizthumb/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestClassificationCache(t *testing.T) {
	Convey("Given classification caching is enabled", t, func() {
		viper.Set(key.FetchCacheClassification, true)

		Convey("A non-video resolution is remembered", func() {
			link := "https://m.edu/mod/url/view.php?id=10"
			resolved := "https://tenant.sharepoint.com/sites/x/handout.pdf"

			markNonVideo(link, resolved)

			cached, known := knownNonVideo(link)
			So(known, ShouldBeTrue)
			So(cached, ShouldEqual, resolved)
		})

		Convey("A link stuck on the login page is never remembered", func() {
			link := "https://m.edu/mod/url/view.php?id=11"

			markNonVideo(link, "https://login.microsoftonline.com/common/oauth2/authorize?x=1")

			_, known := knownNonVideo(link)
			So(known, ShouldBeFalse)
		})
	})

	Convey("Given classification caching is disabled", t, func() {
		viper.Set(key.FetchCacheClassification, false)

		Convey("Nothing is recorded or reported", func() {
			link := "https://m.edu/mod/url/view.php?id=12"

			markNonVideo(link, "https://tenant.sharepoint.com/other.pdf")

			_, known := knownNonVideo(link)
			So(known, ShouldBeFalse)
		})
	})
}
