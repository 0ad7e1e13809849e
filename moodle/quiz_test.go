package moodle

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMatchQuestion(t *testing.T) {
	Convey("matchQuestion", t, func() {
		bank := []question{
			{Name: "Intro video", EditURL: "https://m.edu/question/edit.php?id=1"},
			{Name: "Intro Video", EditURL: "https://m.edu/question/edit.php?id=2"},
			{Name: "Intro video", EditURL: "https://m.edu/question/edit.php?id=3"},
			{Name: "Summary", EditURL: "https://m.edu/question/edit.php?id=4"},
		}

		Convey("Should match names exactly, not case-insensitively", func() {
			q, ok := matchQuestion(bank, "Intro Video")
			So(ok, ShouldBeTrue)
			So(q.EditURL, ShouldEqual, "https://m.edu/question/edit.php?id=2")
		})

		Convey("Should return only the first of duplicate names", func() {
			q, ok := matchQuestion(bank, "Intro video")
			So(ok, ShouldBeTrue)
			So(q.EditURL, ShouldEqual, "https://m.edu/question/edit.php?id=1")
		})

		Convey("Should not match on substrings", func() {
			_, ok := matchQuestion(bank, "Intro")
			So(ok, ShouldBeFalse)
		})

		Convey("Should report a miss on an empty bank", func() {
			_, ok := matchQuestion(nil, "Summary")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestClosestName(t *testing.T) {
	Convey("closestName", t, func() {
		names := []string{"Intro video", "Summary", "Final exam notes"}

		Convey("Should suggest the nearest candidate for a typo", func() {
			suggestion, ok := closestName("Sumary", names)
			So(ok, ShouldBeTrue)
			So(suggestion, ShouldEqual, "Summary")
		})

		Convey("Should report nothing for an empty candidate list", func() {
			_, ok := closestName("anything", nil)
			So(ok, ShouldBeFalse)
		})
	})
}
