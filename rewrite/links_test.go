package rewrite

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLinks(t *testing.T) {
	Convey("Links", t, func() {
		Convey("Should deduplicate by URL preserving first-seen order", func() {
			markup := `<p>
				<a href="https://m.edu/mod/url/view.php?id=1">one</a>
				<a href="https://m.edu/mod/url/view.php?id=2">two</a>
				<a href="https://m.edu/mod/url/view.php?id=1">one again</a>
				<a href="https://m.edu/mod/url/view.php?id=1">one more</a>
			</p>`

			urls := Links(markup)
			So(urls, ShouldResemble, []string{
				"https://m.edu/mod/url/view.php?id=1",
				"https://m.edu/mod/url/view.php?id=2",
			})
		})

		Convey("Should ignore anchors that are not resource links", func() {
			markup := `<p>
				<a href="https://example.com/plain">plain</a>
				<a href="https://m.edu/mod/quiz/view.php?id=9">quiz</a>
				<a href="https://m.edu/mod/url/view.php?id=3">video</a>
			</p>`

			urls := Links(markup)
			So(urls, ShouldResemble, []string{"https://m.edu/mod/url/view.php?id=3"})
		})

		Convey("Should return nothing for markup without anchors", func() {
			So(Links(`<p>Nothing to see.</p>`), ShouldBeEmpty)
		})
	})
}
