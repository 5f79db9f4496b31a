package settings

import (
	"strings"
	"testing"

	"github.com/incread/incread/constant"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/exp/slices"
)

func TestDefaults(t *testing.T) {
	Convey("Defaults", t, func() {
		doc := Defaults()

		Convey("Carry the factory values", func() {
			So(doc.BadTags, ShouldResemble, []string{"iframe", "script"})
			So(doc.ExtractBgColor, ShouldEqual, "Green")
			So(doc.ExtractTextColor, ShouldEqual, "White")
			So(doc.HighlightBgColor, ShouldEqual, "Yellow")
			So(doc.HighlightTextColor, ShouldEqual, "Black")
			So(doc.ExtractKey, ShouldEqual, "x")
			So(doc.HighlightKey, ShouldEqual, "h")
			So(doc.RemoveKey, ShouldEqual, "z")
			So(doc.UndoKey, ShouldEqual, "u")
			So(doc.SoonValue, ShouldEqual, 10)
			So(doc.LaterValue, ShouldEqual, 50)
			So(doc.ExtractValue, ShouldEqual, 30)
			So(doc.MaxWidth, ShouldEqual, 600)
			So(doc.SoonMethod, ShouldEqual, MethodPercent)
			So(doc.GeneralZoom, ShouldEqual, 1.0)
			So(doc.ZoomStep, ShouldEqual, 0.1)
			So(doc.LineScrollFactor, ShouldEqual, 0.05)
			So(doc.PageScrollFactor, ShouldEqual, 0.5)
			So(doc.ImportDeck, ShouldEqual, "Default")
			So(doc.ModelName, ShouldEqual, "IR3")
			So(doc.SourceField, ShouldEqual, "Source")
			So(doc.TextField, ShouldEqual, "Text")
			So(doc.TitleField, ShouldEqual, "Title")
		})

		Convey("Extract deck defaults to the current deck", func() {
			So(doc.ExtractDeck, ShouldBeNil)
		})

		Convey("Mappings start out empty but allocated", func() {
			So(doc.QuickKeys, ShouldNotBeNil)
			So(doc.QuickKeys, ShouldBeEmpty)
			So(doc.Zoom, ShouldNotBeNil)
			So(doc.Scroll, ShouldNotBeNil)
			So(doc.FeedLog, ShouldNotBeNil)
		})

		Convey("User agent names the release", func() {
			So(doc.UserAgent, ShouldContainSubstring, constant.Version)
			So(doc.UserAgent, ShouldContainSubstring, constant.ProjectURL)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Schema registry", t, func() {
		Convey("Keys come out sorted", func() {
			keys := Keys()
			So(len(keys), ShouldEqual, 41)
			So(slices.IsSorted(keys), ShouldBeTrue)
			So(keys, ShouldContain, "quickKeys")
		})

		Convey("Every field is described", func() {
			for _, f := range Fields() {
				So(f.Description, ShouldNotBeEmpty)
				So(f.TypeName(), ShouldNotBeEmpty)
			}
		})

		Convey("Lookup distinguishes known from unknown", func() {
			f, ok := Lookup("extractKey")
			So(ok, ShouldBeTrue)
			So(f.Default, ShouldEqual, "x")

			_, ok = Lookup("extractkey")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestParseMethod(t *testing.T) {
	Convey("ParseMethod", t, func() {
		for raw, want := range map[string]Method{
			"percent": MethodPercent,
			"count":   MethodCount,
			"Percent": MethodPercent,
		} {
			m, err := ParseMethod(raw)
			So(err, ShouldBeNil)
			So(m, ShouldEqual, want)
		}

		_, err := ParseMethod("ratio")
		So(err, ShouldNotBeNil)
		So(strings.Contains(err.Error(), "ratio"), ShouldBeTrue)
	})
}
