package recent

import (
	"path/filepath"
	"testing"

	"github.com/incread/incread/filesystem"
	"github.com/incread/incread/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.ProfileRemember, true)
}

func TestRemember(t *testing.T) {
	Convey("Given remembered profiles", t, func() {
		So(Remember(filepath.Join("profiles", "User 1", "collection.media"), 1), ShouldBeNil)
		So(Remember(filepath.Join("profiles", "Work", "collection.media"), 1), ShouldBeNil)
		So(Remember(filepath.Join("profiles", "Work", "collection.media"), 1), ShouldBeNil)

		Convey("List ranks the popular one first", func() {
			dirs := List()
			So(len(dirs), ShouldBeGreaterThanOrEqualTo, 2)
			So(dirs[0], ShouldEqual, filepath.Join("profiles", "Work", "collection.media"))
		})

		Convey("Latest returns the most recently opened", func() {
			So(Remember(filepath.Join("profiles", "User 1", "collection.media"), 1), ShouldBeNil)
			So(Latest().MustGet(), ShouldEqual, filepath.Join("profiles", "User 1", "collection.media"))
		})

		Convey("Suggest matches on the profile name", func() {
			suggestion := Suggest("work")
			So(suggestion.IsPresent(), ShouldBeTrue)
			So(suggestion.MustGet(), ShouldEqual, filepath.Join("profiles", "Work", "collection.media"))
		})

		Convey("Suggest misses on garbage", func() {
			So(Suggest("zzzzzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("Forget removes the record", func() {
			So(Forget(filepath.Join("profiles", "Work", "collection.media")), ShouldBeNil)
			for _, dir := range List() {
				So(dir, ShouldNotEqual, filepath.Join("profiles", "Work", "collection.media"))
			}
		})
	})
}

func TestName(t *testing.T) {
	Convey("Name", t, func() {
		So(Name(filepath.Join("profiles", "User 1", "collection.media")), ShouldEqual, "User 1")
		So(Name("media"), ShouldEqual, "media")
	})
}
