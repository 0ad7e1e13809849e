package moodle

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExpandQuizIDs(t *testing.T) {
	Convey("ExpandQuizIDs", t, func() {
		base := "https://moodle.example.edu/mod/quiz/view.php?id=123"

		Convey("Should return only the base URL without extra ids", func() {
			urls, err := ExpandQuizIDs(base, nil)
			So(err, ShouldBeNil)
			So(urls, ShouldResemble, []string{base})
		})

		Convey("Should substitute the id parameter for each extra id", func() {
			urls, err := ExpandQuizIDs(base, []string{"456", "789"})
			So(err, ShouldBeNil)
			So(urls, ShouldResemble, []string{
				base,
				"https://moodle.example.edu/mod/quiz/view.php?id=456",
				"https://moodle.example.edu/mod/quiz/view.php?id=789",
			})
		})

		Convey("Should fail when the base URL has no id parameter", func() {
			_, err := ExpandQuizIDs("https://moodle.example.edu/mod/quiz/view.php", []string{"456"})
			So(err, ShouldNotBeNil)
		})
	})
}
