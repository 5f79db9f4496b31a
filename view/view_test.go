package view

import (
	"testing"

	"github.com/incread/incread/settings"
	. "github.com/smartystreets/goconvey/convey"
)

func TestZoom(t *testing.T) {
	Convey("Zoom state", t, func() {
		doc := settings.Defaults()
		state := New(doc)

		Convey("Unseen cards start at factor 1", func() {
			So(state.CardZoom("1493"), ShouldEqual, 1.0)
		})

		Convey("Stepping persists into the document", func() {
			So(state.ZoomInCard("1493"), ShouldAlmostEqual, 1.1)
			So(state.ZoomInCard("1493"), ShouldAlmostEqual, 1.2)
			So(doc.Zoom["1493"], ShouldAlmostEqual, 1.2)

			So(state.ZoomOutCard("1493"), ShouldAlmostEqual, 1.1)
		})

		Convey("Steps follow the configured zoomStep", func() {
			doc.ZoomStep = 0.5
			So(state.ZoomInCard("7"), ShouldAlmostEqual, 1.5)
		})

		Convey("Reset forgets the remembered factor", func() {
			state.ZoomInCard("1493")
			state.ResetCardZoom("1493")
			So(state.CardZoom("1493"), ShouldEqual, 1.0)
		})

		Convey("General zoom steps independently", func() {
			So(state.ZoomInGeneral(), ShouldAlmostEqual, 1.1)
			So(state.ZoomOutGeneral(), ShouldAlmostEqual, 1.0)
			So(state.CardZoom("1493"), ShouldEqual, 1.0)
		})
	})
}

func TestScroll(t *testing.T) {
	Convey("Scroll state", t, func() {
		doc := settings.Defaults()
		state := New(doc)

		Convey("Unseen cards start at the top", func() {
			So(state.ScrollPos("1493"), ShouldEqual, 0)
		})

		Convey("Saved offsets come back on the next visit", func() {
			state.SaveScroll("1493", 340)
			So(state.ScrollPos("1493"), ShouldEqual, 340)
			So(doc.Scroll["1493"], ShouldEqual, 340)
		})

		Convey("Step sizes derive from the viewport height", func() {
			So(state.LineStep(800), ShouldAlmostEqual, 40)
			So(state.PageStep(800), ShouldAlmostEqual, 400)
		})
	})
}

func TestWidthLimit(t *testing.T) {
	Convey("WidthLimit", t, func() {
		doc := settings.Defaults()
		state := New(doc)

		Convey("Caps reading cards by default", func() {
			width, limited := state.WidthLimit(true)
			So(limited, ShouldBeTrue)
			So(width, ShouldEqual, 600)
		})

		Convey("Leaves other cards alone by default", func() {
			_, limited := state.WidthLimit(false)
			So(limited, ShouldBeFalse)
		})

		Convey("limitWidthAll extends the cap to every card", func() {
			doc.LimitWidthAll = true
			width, limited := state.WidthLimit(false)
			So(limited, ShouldBeTrue)
			So(width, ShouldEqual, 600)
		})

		Convey("Disabling limitWidth frees reading cards", func() {
			doc.LimitWidth = false
			_, limited := state.WidthLimit(true)
			So(limited, ShouldBeFalse)
		})
	})
}
