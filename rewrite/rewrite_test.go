package rewrite

import (
	"fmt"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const videoURL = "https://moodle.example.edu/mod/url/view.php?id=42"

// rawImg simulates the image the editor surface inserts at the top of the
// document before the rewrite relocates it.
func rawImg(ref string) string {
	return fmt.Sprintf(`<img src="https://moodle.example.edu/draftfile.php/1/user/draft/77/%s" alt="Thumbnail" width="400" height="225">`, ref)
}

func countFragments(markup, linkURL string) int {
	return len(fragmentPattern(linkURL).FindAllString(markup, -1))
}

func TestRewriteInsertionPoint(t *testing.T) {
	Convey("Given markup with a link followed by a sentence terminator", t, func() {
		markup := rawImg("thumbnail_1.png") +
			`<p>Watch <a href="` + videoURL + `">video</a>. Next sentence here.</p>`

		result, err := Rewrite(markup, videoURL, "thumbnail_1.png", mo.None[string]())
		So(err, ShouldBeNil)

		Convey("The fragment lands after the period and before the next sentence", func() {
			fragPos := strings.Index(result, "<br><a href=")
			nextPos := strings.Index(result, "Next sentence")
			periodPos := strings.Index(result, "</a>.")
			So(fragPos, ShouldBeGreaterThan, periodPos)
			So(fragPos, ShouldBeLessThan, nextPos)
		})

		Convey("The raw image is relocated, not duplicated", func() {
			So(strings.Count(result, "thumbnail_1.png"), ShouldEqual, 1)
			So(strings.HasPrefix(result, "<img"), ShouldBeFalse)
		})

		Convey("The fragment wraps the image with the play icon", func() {
			So(countFragments(result, videoURL), ShouldEqual, 1)
			So(result, ShouldContainSubstring, playIcon)
			So(result, ShouldContainSubstring, `target="_blank"`)
		})
	})
}

func TestRewriteFallbackAppend(t *testing.T) {
	Convey("Given markup with no sentence terminator after the link", t, func() {
		markup := rawImg("thumbnail_2.png") +
			`<p>Watch <a href="` + videoURL + `">video</a></p>`

		result, err := Rewrite(markup, videoURL, "thumbnail_2.png", mo.None[string]())
		So(err, ShouldBeNil)

		Convey("The fragment is appended at the very end", func() {
			So(strings.HasSuffix(result, "<br>"), ShouldBeTrue)
			fragPos := strings.Index(result, "<br><a href=")
			So(fragPos, ShouldBeGreaterThan, strings.Index(result, "</p>"))
		})
	})

	Convey("Given markup that does not contain the link URL at all", t, func() {
		markup := rawImg("thumbnail_3.png") + `<p>No link here.</p>`

		result, err := Rewrite(markup, videoURL, "thumbnail_3.png", mo.None[string]())
		So(err, ShouldBeNil)

		Convey("The fragment is still appended at the end", func() {
			So(countFragments(result, videoURL), ShouldEqual, 1)
			So(strings.HasSuffix(result, "<br>"), ShouldBeTrue)
		})
	})
}

func TestRewriteIdempotence(t *testing.T) {
	Convey("Given a document that already carries a fragment for the link", t, func() {
		markup := rawImg("thumbnail_4.png") +
			`<p>Watch <a href="` + videoURL + `">video</a>. Tail.</p>`

		first, err := Rewrite(markup, videoURL, "thumbnail_4.png", mo.Some("9:30"))
		So(err, ShouldBeNil)
		So(countFragments(first, videoURL), ShouldEqual, 1)

		Convey("A second pass with a fresh image yields exactly one fragment, not two", func() {
			second, err := Rewrite(rawImg("thumbnail_5.png")+first, videoURL, "thumbnail_5.png", mo.Some("9:30"))
			So(err, ShouldBeNil)
			So(countFragments(second, videoURL), ShouldEqual, 1)
			So(second, ShouldContainSubstring, "thumbnail_5.png")
			So(second, ShouldNotContainSubstring, "thumbnail_4.png")
		})
	})
}

func TestRewriteOrderPreservation(t *testing.T) {
	Convey("Given a document with three links in order", t, func() {
		urls := []string{
			"https://moodle.example.edu/mod/url/view.php?id=1",
			"https://moodle.example.edu/mod/url/view.php?id=2",
			"https://moodle.example.edu/mod/url/view.php?id=3",
		}
		markup := fmt.Sprintf(
			`<p>First <a href="%s">a</a>. Second <a href="%s">b</a>. Third <a href="%s">c</a>. End.</p>`,
			urls[0], urls[1], urls[2],
		)

		Convey("Processing in reverse document order keeps fragments in document order", func() {
			for i := len(urls) - 1; i >= 0; i-- {
				ref := fmt.Sprintf("thumbnail_%d.png", i)
				var err error
				markup, err = Rewrite(rawImg(ref)+markup, urls[i], ref, mo.None[string]())
				So(err, ShouldBeNil)
			}

			positions := make([]int, len(urls))
			for i, u := range urls {
				positions[i] = fragmentPattern(u).FindStringIndex(markup)[0]
			}
			So(positions[0], ShouldBeLessThan, positions[1])
			So(positions[1], ShouldBeLessThan, positions[2])
		})
	})
}

func TestRewriteMissingImage(t *testing.T) {
	Convey("Given markup without the inserted image", t, func() {
		markup := `<p>Watch <a href="` + videoURL + `">video</a>. Tail.</p>`

		_, err := Rewrite(markup, videoURL, "thumbnail_nope.png", mo.None[string]())

		Convey("The rewrite fails loudly with ErrImageNotFound", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "inserted image not found")
		})
	})
}

func TestRewriteEscapedAmpersands(t *testing.T) {
	Convey("Given markup whose anchors entity-escape ampersands", t, func() {
		link := "https://moodle.example.edu/mod/url/view.php?id=7&forceview=1"
		escaped := strings.ReplaceAll(link, "&", "&amp;")
		markup := rawImg("thumbnail_6.png") +
			`<p>Watch <a href="` + escaped + `">video</a>. Tail.</p>`

		result, err := Rewrite(markup, link, "thumbnail_6.png", mo.None[string]())
		So(err, ShouldBeNil)

		Convey("The insertion point is still found after the escaped occurrence", func() {
			fragPos := strings.Index(result, "<br><a href=")
			So(fragPos, ShouldBeGreaterThan, strings.Index(result, escaped))
			So(fragPos, ShouldBeLessThan, strings.Index(result, "Tail"))
		})

		Convey("A second pass removes the previous fragment despite the escaping", func() {
			second, err := Rewrite(rawImg("thumbnail_7.png")+result, link, "thumbnail_7.png", mo.None[string]())
			So(err, ShouldBeNil)
			So(countFragments(second, link), ShouldEqual, 1)
		})
	})
}

func TestFragmentComposition(t *testing.T) {
	Convey("Fragment", t, func() {
		img := `<img src="x.png" width="400">`

		Convey("Includes the duration overlay when present", func() {
			frag := Fragment(videoURL, img, mo.Some("12:05"))
			So(frag, ShouldContainSubstring, ">12:05</span>")
			So(frag, ShouldContainSubstring, playIcon)
		})

		Convey("Omits the overlay when absent", func() {
			frag := Fragment(videoURL, img, mo.None[string]())
			So(frag, ShouldNotContainSubstring, "bottom:3px")
		})

		Convey("Opens in a new context and is bracketed by line breaks", func() {
			frag := Fragment(videoURL, img, mo.None[string]())
			So(frag, ShouldContainSubstring, `target="_blank" rel="noopener"`)
			So(strings.HasPrefix(frag, "<br>"), ShouldBeTrue)
			So(strings.HasSuffix(frag, "<br>"), ShouldBeTrue)
		})
	})
}
