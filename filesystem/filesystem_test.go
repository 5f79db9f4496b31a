package filesystem

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestTouch(t *testing.T) {
	Convey("Touch", t, func() {
		SetMemMapFs()

		Convey("Should move a file's mtime forward", func() {
			So(API().WriteFile("media/note.txt", []byte("x"), 0655), ShouldBeNil)
			stale := time.Now().Add(-time.Hour)
			So(API().Chtimes("media/note.txt", stale, stale), ShouldBeNil)

			So(Touch("media/note.txt"), ShouldBeNil)

			info, err := API().Stat("media/note.txt")
			So(err, ShouldBeNil)
			So(info.ModTime().After(stale), ShouldBeTrue)
		})

		Convey("Should fail for a missing path", func() {
			So(Touch("media/absent"), ShouldNotBeNil)
		})
	})
}
