package util

import (
	"testing"

	"github.com/incread/incread/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "key", "keys"), ShouldEqual, "1 key")
		So(Quantify(2, "key", "keys"), ShouldEqual, "2 keys")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("recents"), ShouldEqual, "Recents")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()

		Convey("Should remove a file", func() {
			So(filesystem.API().WriteFile("a.json", []byte("{}"), 0655), ShouldBeNil)
			So(Delete("a.json"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("a.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Should remove a directory recursively", func() {
			So(filesystem.API().MkdirAll("dir/sub", 0755), ShouldBeNil)
			So(filesystem.API().WriteFile("dir/sub/a.json", []byte("{}"), 0655), ShouldBeNil)
			So(Delete("dir"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("dir")
			So(exists, ShouldBeFalse)
		})

		Convey("Should fail for a missing path", func() {
			So(Delete("missing"), ShouldNotBeNil)
		})
	})
}
