package moodle

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/quizthumb-cli/quizthumb/stream"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// stubEditor replays an in-memory question buffer, mimicking the upload
// behavior of the real dialog: the image lands at the start of the document.
type stubEditor struct {
	markup string
	writes int
}

func (e *stubEditor) Content() (string, error) { return e.markup, nil }

func (e *stubEditor) SetContent(markup string) error {
	e.markup = markup
	e.writes++
	return nil
}

func (e *stubEditor) InsertImage(path, altText string) error {
	e.markup = fmt.Sprintf(
		`<img src="https://m.edu/draftfile.php/7/user/draft/3/%s" alt=%q width="400">`,
		filepath.Base(path), altText,
	) + e.markup
	return nil
}

// stubFetcher serves canned outcomes per link.
type stubFetcher struct {
	outcomes map[string]stream.Outcome
}

func (f stubFetcher) Fetch(link string) stream.Outcome { return f.outcomes[link] }

func TestEnhanceLeavesNonVideoQuestionsUntouched(t *testing.T) {
	Convey("Given a question whose links all resolve to non-videos", t, func() {
		first := "https://m.edu/mod/url/view.php?id=1"
		second := "https://m.edu/mod/url/view.php?id=2"

		ed := &stubEditor{markup: fmt.Sprintf(
			`<p>See <a href="%s">slides</a>. And <a href="%s">notes</a>. End.</p>`,
			first, second,
		)}
		r := &Runner{fetcher: stubFetcher{outcomes: map[string]stream.Outcome{
			first:  stream.NotAVideo("https://tenant.sharepoint.com/slides.pdf"),
			second: stream.NotAVideo("https://tenant.sharepoint.com/notes.pdf"),
		}}}

		modified, err := r.enhance(ed)
		So(err, ShouldBeNil)

		Convey("The question is reported unmodified and never written", func() {
			So(modified, ShouldBeFalse)
			So(ed.writes, ShouldEqual, 0)
		})

		Convey("An unmodified question exits through cancel, not save", func() {
			So(leaveSelector(modified), ShouldEqual, cancelButtonSelector)
		})
	})

	Convey("Given a question without any video links", t, func() {
		ed := &stubEditor{markup: `<p>Plain prose and a <a href="https://example.com/x">link</a>.</p>`}
		r := &Runner{fetcher: stubFetcher{}}

		modified, err := r.enhance(ed)
		So(err, ShouldBeNil)
		So(modified, ShouldBeFalse)
		So(ed.writes, ShouldEqual, 0)
	})
}

func TestEnhanceRewritesVideoQuestions(t *testing.T) {
	Convey("Given a question with one link resolving to a video", t, func() {
		link := "https://m.edu/mod/url/view.php?id=3"

		ed := &stubEditor{markup: fmt.Sprintf(
			`<p>Watch <a href="%s">the lecture</a>. Then answer below.</p>`, link,
		)}
		r := &Runner{fetcher: stubFetcher{outcomes: map[string]stream.Outcome{
			link: stream.VideoFound(stream.Asset{
				Path:     "/tmp/thumbnails/thumbnail_99.png",
				Name:     "thumbnail_99.png",
				Duration: mo.Some("9:30"),
				Link:     link,
			}),
		}}}

		modified, err := r.enhance(ed)
		So(err, ShouldBeNil)

		Convey("The question is modified and saved through the save control", func() {
			So(modified, ShouldBeTrue)
			So(ed.writes, ShouldEqual, 1)
			So(leaveSelector(modified), ShouldEqual, saveButtonSelector)
		})

		Convey("The buffer carries the clickable fragment", func() {
			So(ed.markup, ShouldContainSubstring, `target="_blank"`)
			So(ed.markup, ShouldContainSubstring, "thumbnail_99.png")
			So(ed.markup, ShouldContainSubstring, ">9:30</span>")
		})
	})
}
