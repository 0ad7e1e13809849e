package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "question", "questions"), ShouldEqual, "1 question")
		So(Quantify(2, "question", "questions"), ShouldEqual, "2 questions")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMin(t *testing.T) {
	Convey("Min", t, func() {
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Min(7), ShouldEqual, 7)
	})
}

func TestReverse(t *testing.T) {
	Convey("Reverse", t, func() {
		items := []string{"a", "b", "c"}
		Reverse(items)
		So(items, ShouldResemble, []string{"c", "b", "a"})

		single := []int{1}
		Reverse(single)
		So(single, ShouldResemble, []int{1})
	})
}
