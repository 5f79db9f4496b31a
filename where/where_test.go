package where

import (
	"path/filepath"
	"testing"

	"github.com/incread/incread/constant"
	"github.com/incread/incread/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("SettingsFile()", func() {
			path := SettingsFile(filepath.Join("profiles", "User 1", "collection.media"))
			So(filepath.Base(path), ShouldEqual, constant.SettingsFileName)
			So(filepath.Dir(path), ShouldEqual, filepath.Join("profiles", "User 1", "collection.media"))
		})
	})
}
