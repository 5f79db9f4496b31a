package settings

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPalette(t *testing.T) {
	Convey("Palette", t, func() {
		colors := Palette()

		Convey("Is bundled and non-trivial", func() {
			So(len(colors), ShouldBeGreaterThan, 100)
		})

		Convey("Has no blank entries", func() {
			for _, color := range colors {
				So(color, ShouldNotBeEmpty)
			}
		})

		Convey("Contains every factory highlight color", func() {
			doc := Defaults()
			for _, color := range []string{
				doc.ExtractBgColor,
				doc.ExtractTextColor,
				doc.HighlightBgColor,
				doc.HighlightTextColor,
			} {
				So(InPalette(color), ShouldBeTrue)
			}
		})

		Convey("InPalette is exact", func() {
			So(InPalette("Green"), ShouldBeTrue)
			So(InPalette("green"), ShouldBeFalse)
			So(InPalette("NotAColor"), ShouldBeFalse)
		})
	})
}
