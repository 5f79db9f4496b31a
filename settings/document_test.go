package settings

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Get", t, func() {
		doc := Defaults()

		Convey("Returns the live value", func() {
			doc.MaxWidth = 720
			So(lo.Must(doc.Get("maxWidth")), ShouldEqual, 720)
		})

		Convey("Rejects unknown fields", func() {
			_, err := doc.Get("maxwidth")
			So(errors.Is(err, ErrUnknownField), ShouldBeTrue)
		})
	})
}

func TestSetFromString(t *testing.T) {
	Convey("SetFromString", t, func() {
		doc := Defaults()

		Convey("Parses by field type", func() {
			So(doc.SetFromString("extractKey", "e"), ShouldBeNil)
			So(doc.ExtractKey, ShouldEqual, "e")

			So(doc.SetFromString("copyTitle", "true"), ShouldBeNil)
			So(doc.CopyTitle, ShouldBeTrue)

			So(doc.SetFromString("maxWidth", "800"), ShouldBeNil)
			So(doc.MaxWidth, ShouldEqual, 800)

			So(doc.SetFromString("zoomStep", "0.25"), ShouldBeNil)
			So(doc.ZoomStep, ShouldEqual, 0.25)

			So(doc.SetFromString("soonMethod", "count"), ShouldBeNil)
			So(doc.SoonMethod, ShouldEqual, MethodCount)

			So(doc.SetFromString("badTags", "iframe, object ,script"), ShouldBeNil)
			So(doc.BadTags, ShouldResemble, []string{"iframe", "object", "script"})
		})

		Convey("An empty extract deck means the current deck", func() {
			So(doc.SetFromString("extractDeck", "Inbox"), ShouldBeNil)
			So(*doc.ExtractDeck, ShouldEqual, "Inbox")

			So(doc.SetFromString("extractDeck", ""), ShouldBeNil)
			So(doc.ExtractDeck, ShouldBeNil)
		})

		Convey("Rejects malformed values", func() {
			So(errors.Is(doc.SetFromString("maxWidth", "wide"), ErrNotInteger), ShouldBeTrue)
			So(doc.SetFromString("copyTitle", "maybe"), ShouldNotBeNil)
			So(errors.Is(doc.SetFromString("soonMethod", "ratio"), ErrBadMethod), ShouldBeTrue)
		})

		Convey("Mappings are not directly settable", func() {
			So(errors.Is(doc.SetFromString("quickKeys", "{}"), ErrNotSettable), ShouldBeTrue)
			So(errors.Is(doc.SetFromString("zoom", "{}"), ErrNotSettable), ShouldBeTrue)
		})

		Convey("Rejects unknown fields", func() {
			So(errors.Is(doc.SetFromString("nope", "1"), ErrUnknownField), ShouldBeTrue)
		})
	})
}

func TestReset(t *testing.T) {
	Convey("Reset", t, func() {
		doc := Defaults()
		doc.MaxWidth = 900

		So(doc.Reset("maxWidth"), ShouldBeNil)
		So(doc.MaxWidth, ShouldEqual, 600)

		So(errors.Is(doc.Reset("nope"), ErrUnknownField), ShouldBeTrue)
	})
}
