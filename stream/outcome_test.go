package stream

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIsVideoURL(t *testing.T) {
	Convey("IsVideoURL", t, func() {
		Convey("Should accept resolved streaming locations", func() {
			So(IsVideoURL("https://tenant.sharepoint.com/:v:/stream.aspx?id=abc"), ShouldBeTrue)
			So(IsVideoURL("https://tenant.sharepoint.com/sites/x/_layouts/15/stream.aspx?id=y"), ShouldBeTrue)
		})

		Convey("Should reject everything else", func() {
			So(IsVideoURL("https://moodle.example.edu/mod/url/view.php?id=1"), ShouldBeFalse)
			So(IsVideoURL("https://tenant.sharepoint.com/sites/x/Shared%20Documents/handout.pdf"), ShouldBeFalse)
			So(IsVideoURL(""), ShouldBeFalse)
		})
	})
}

func TestOutcomeConstructors(t *testing.T) {
	Convey("Outcome constructors", t, func() {
		Convey("VideoFound carries the asset", func() {
			asset := Asset{Path: "/tmp/thumbnail_1.png", Duration: mo.Some("9:30"), Link: "https://m.edu/mod/url/view.php?id=1"}
			out := VideoFound(asset)
			So(out.Kind, ShouldEqual, KindVideoFound)
			So(out.Asset, ShouldResemble, asset)
			So(out.Err, ShouldBeNil)
		})

		Convey("NotAVideo carries the resolved location", func() {
			out := NotAVideo("https://tenant.sharepoint.com/handout.pdf")
			So(out.Kind, ShouldEqual, KindNotAVideo)
			So(out.ResolvedURL, ShouldEqual, "https://tenant.sharepoint.com/handout.pdf")
			So(out.Err, ShouldBeNil)
		})

		Convey("FetchFailed carries the error", func() {
			err := errors.New("thumbnail preview: context deadline exceeded")
			out := FetchFailed(err)
			So(out.Kind, ShouldEqual, KindFetchFailed)
			So(out.Err, ShouldEqual, err)
		})
	})
}
