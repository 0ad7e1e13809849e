package moodle

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSummaryString(t *testing.T) {
	Convey("Summary", t, func() {
		Convey("Should pluralize counts", func() {
			So(Summary{Questions: 3, Modified: 2}.String(), ShouldEqual, "3 questions inspected, 2 modified")
		})

		Convey("Should handle a single question", func() {
			So(Summary{Questions: 1, Modified: 1}.String(), ShouldEqual, "1 question inspected, 1 modified")
		})

		Convey("Should handle an empty run", func() {
			So(Summary{}.String(), ShouldEqual, "0 questions inspected, 0 modified")
		})
	})
}
