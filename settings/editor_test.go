package settings

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSetPrimaryKeys(t *testing.T) {
	Convey("SetPrimaryKeys", t, func() {
		doc := Defaults()

		Convey("Stores accepted keys lowercased", func() {
			So(doc.SetPrimaryKeys("E", "J", "R"), ShouldBeNil)
			So(doc.ExtractKey, ShouldEqual, "e")
			So(doc.HighlightKey, ShouldEqual, "j")
			So(doc.RemoveKey, ShouldEqual, "r")
		})

		Convey("Rejects conflicts without touching the document", func() {
			err := doc.SetPrimaryKeys("x", "x", "z")
			So(err, ShouldEqual, ErrKeyConflict)
			So(doc.ExtractKey, ShouldEqual, "x")
			So(doc.HighlightKey, ShouldEqual, "h")
			So(doc.RemoveKey, ShouldEqual, "z")
		})
	})
}

func TestApplySchedulingEdit(t *testing.T) {
	Convey("ApplySchedulingEdit", t, func() {
		doc := Defaults()

		Convey("Applies when every value parses", func() {
			err := doc.ApplySchedulingEdit(SchedulingEdit{
				SoonValue:    "15",
				LaterValue:   "60",
				ExtractValue: "40",
				MaxWidth:     "800",
			})
			So(err, ShouldBeNil)
			So(doc.SoonValue, ShouldEqual, 15)
			So(doc.LaterValue, ShouldEqual, 60)
			So(doc.ExtractValue, ShouldEqual, 40)
			So(doc.MaxWidth, ShouldEqual, 800)
		})

		Convey("One bad value discards the whole batch", func() {
			err := doc.ApplySchedulingEdit(SchedulingEdit{
				SoonValue:    "15",
				LaterValue:   "60",
				ExtractValue: "forty",
				MaxWidth:     "800",
			})
			So(errors.Is(err, ErrNotInteger), ShouldBeTrue)
			So(doc.SoonValue, ShouldEqual, 10)
			So(doc.LaterValue, ShouldEqual, 50)
			So(doc.ExtractValue, ShouldEqual, 30)
			So(doc.MaxWidth, ShouldEqual, 600)
		})
	})
}

func TestSetHighlightColors(t *testing.T) {
	Convey("SetHighlightColors", t, func() {
		doc := Defaults()

		Convey("Targets the highlight action by its key", func() {
			So(doc.SetHighlightColors("h", "Orange", "Black"), ShouldBeNil)
			So(doc.HighlightBgColor, ShouldEqual, "Orange")
			So(doc.HighlightTextColor, ShouldEqual, "Black")
		})

		Convey("Targets the extract action by its key", func() {
			So(doc.SetHighlightColors("x", "Blue", "White"), ShouldBeNil)
			So(doc.ExtractBgColor, ShouldEqual, "Blue")
			So(doc.ExtractTextColor, ShouldEqual, "White")
		})

		Convey("Targets a quick key by its combo", func() {
			combo := lo.Must(doc.SetQuickKey(QuickKey{
				Ctrl: true, RegularKey: "1",
				DeckName: "Default", ModelName: "Basic",
				BgColor: "Green", TextColor: "White",
			}))

			So(doc.SetHighlightColors(combo, "Pink", "Black"), ShouldBeNil)
			So(doc.QuickKeys[combo].BgColor, ShouldEqual, "Pink")
			So(doc.QuickKeys[combo].TextColor, ShouldEqual, "Black")
		})

		Convey("Rejects unknown targets", func() {
			err := doc.SetHighlightColors("Ctrl+9", "Pink", "Black")
			So(errors.Is(err, ErrUnknownTarget), ShouldBeTrue)
		})
	})
}

func TestHighlightTargets(t *testing.T) {
	Convey("HighlightTargets", t, func() {
		doc := Defaults()
		lo.Must(doc.SetQuickKey(QuickKey{Ctrl: true, RegularKey: "2", DeckName: "D", ModelName: "M"}))
		lo.Must(doc.SetQuickKey(QuickKey{Ctrl: true, RegularKey: "1", DeckName: "D", ModelName: "M"}))

		So(doc.HighlightTargets(), ShouldResemble, []string{"h", "x", "Ctrl+1", "Ctrl+2"})
	})
}

func TestSetQuickKey(t *testing.T) {
	Convey("SetQuickKey", t, func() {
		doc := Defaults()

		Convey("Stores under the derived combo", func() {
			combo, err := doc.SetQuickKey(QuickKey{Ctrl: true, Shift: true, RegularKey: "k", DeckName: "D", ModelName: "M"})
			So(err, ShouldBeNil)
			So(combo, ShouldEqual, "Ctrl+Shift+k")
			So(doc.QuickKeys, ShouldContainKey, combo)
		})

		Convey("Replaces an existing binding on the same combo", func() {
			lo.Must(doc.SetQuickKey(QuickKey{Ctrl: true, RegularKey: "1", DeckName: "Old", ModelName: "M"}))
			lo.Must(doc.SetQuickKey(QuickKey{Ctrl: true, RegularKey: "1", DeckName: "New", ModelName: "M"}))

			So(len(doc.QuickKeys), ShouldEqual, 1)
			So(doc.QuickKeys["Ctrl+1"].DeckName, ShouldEqual, "New")
		})

		Convey("Rejects incomplete bindings without storing them", func() {
			_, err := doc.SetQuickKey(QuickKey{Ctrl: true, RegularKey: "1"})
			So(err, ShouldEqual, ErrIncompleteQuickKey)
			So(doc.QuickKeys, ShouldBeEmpty)
		})
	})
}

func TestRemoveQuickKey(t *testing.T) {
	Convey("RemoveQuickKey", t, func() {
		doc := Defaults()
		combo := lo.Must(doc.SetQuickKey(QuickKey{Ctrl: true, RegularKey: "1", DeckName: "D", ModelName: "M"}))

		So(doc.RemoveQuickKey(combo), ShouldBeTrue)
		So(doc.QuickKeys, ShouldBeEmpty)
		So(doc.RemoveQuickKey(combo), ShouldBeFalse)
	})
}
