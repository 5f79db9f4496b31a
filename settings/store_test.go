package settings

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/incread/incread/filesystem"
	"github.com/incread/incread/host"
	"github.com/incread/incread/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid touching real profiles
	filesystem.SetMemMapFs()
}

// mediaDir creates a fresh fake profile media directory.
func mediaDir(name string) string {
	dir := filepath.Join("profiles", name, "collection.media")
	lo.Must0(filesystem.API().MkdirAll(dir, 0755))
	return dir
}

func writeSettings(dir, content string) {
	lo.Must0(filesystem.API().WriteFile(where.SettingsFile(dir), []byte(content), 0644))
}

func TestOpen(t *testing.T) {
	Convey("Open", t, func() {
		Convey("Fresh profile without a settings file", func() {
			m, err := Open(mediaDir("fresh"))
			So(err, ShouldBeNil)

			Convey("Yields factory defaults", func() {
				So(m.Document(), ShouldResemble, Defaults())
			})

			Convey("Is not reported as adjusted", func() {
				So(m.Adjusted(), ShouldBeFalse)
			})
		})

		Convey("Partial document", func() {
			dir := mediaDir("partial")
			writeSettings(dir, `{"extractKey": "e", "soonValue": 25}`)

			m, err := Open(dir)
			So(err, ShouldBeNil)

			Convey("Keeps the stored values", func() {
				So(m.Document().ExtractKey, ShouldEqual, "e")
				So(m.Document().SoonValue, ShouldEqual, 25)
			})

			Convey("Fills in everything else", func() {
				So(m.Document().HighlightKey, ShouldEqual, "h")
				So(m.Document().MaxWidth, ShouldEqual, 600)
				So(m.Document().QuickKeys, ShouldNotBeNil)
			})

			Convey("Is reported as adjusted", func() {
				So(m.Adjusted(), ShouldBeTrue)
			})
		})

		Convey("Value of a wrong type", func() {
			dir := mediaDir("wrongtype")
			writeSettings(dir, `{"maxWidth": "wide"}`)

			m, err := Open(dir)
			So(err, ShouldBeNil)

			Convey("Resets the field to its default", func() {
				So(m.Document().MaxWidth, ShouldEqual, 600)
				So(m.Adjusted(), ShouldBeTrue)
			})
		})

		Convey("Corrupt file", func() {
			Convey("Invalid JSON", func() {
				dir := mediaDir("corrupt-syntax")
				writeSettings(dir, `{"extractKey":`)

				_, err := Open(dir)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrCorrupt), ShouldBeTrue)
			})

			Convey("Top level is not an object", func() {
				dir := mediaDir("corrupt-array")
				writeSettings(dir, `["x"]`)

				_, err := Open(dir)
				So(errors.Is(err, ErrCorrupt), ShouldBeTrue)
			})

			Convey("Top level null", func() {
				dir := mediaDir("corrupt-null")
				writeSettings(dir, `null`)

				_, err := Open(dir)
				So(errors.Is(err, ErrCorrupt), ShouldBeTrue)
			})
		})
	})
}

func TestSave(t *testing.T) {
	Convey("Save", t, func() {
		Convey("Reloading a saved document is a no-op", func() {
			dir := mediaDir("roundtrip")
			m := lo.Must(Open(dir))
			m.Document().ExtractKey = "e"
			lo.Must0(m.Save())

			again := lo.Must(Open(dir))
			So(again.Adjusted(), ShouldBeFalse)
			So(again.Document(), ShouldResemble, m.Document())
		})

		Convey("The file carries the complete schema", func() {
			dir := mediaDir("complete")
			m := lo.Must(Open(dir))
			lo.Must0(m.Save())

			data := lo.Must(filesystem.API().ReadFile(m.Path()))
			var stored map[string]json.RawMessage
			So(json.Unmarshal(data, &stored), ShouldBeNil)
			for _, key := range Keys() {
				_, ok := stored[key]
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Unknown keys survive the round trip", func() {
			dir := mediaDir("forward")
			writeSettings(dir, `{"futureFlag": {"a": 1}, "extractKey": "e"}`)

			m := lo.Must(Open(dir))
			lo.Must0(m.Save())

			data := lo.Must(filesystem.API().ReadFile(m.Path()))
			var stored map[string]json.RawMessage
			So(json.Unmarshal(data, &stored), ShouldBeNil)

			var future map[string]int
			So(json.Unmarshal(stored["futureFlag"], &future), ShouldBeNil)
			So(future, ShouldResemble, map[string]int{"a": 1})
			So(string(stored["extractKey"]), ShouldEqual, `"e"`)
		})

		Convey("Touches the media directory", func() {
			dir := mediaDir("touched")
			m := lo.Must(Open(dir))

			var touched []string
			m.touch = func(path string) error {
				touched = append(touched, path)
				return nil
			}

			lo.Must0(m.Save())
			So(touched, ShouldResemble, []string{dir})
		})

		Convey("Propagates touch failures", func() {
			dir := mediaDir("touchfail")
			m := lo.Must(Open(dir))
			m.touch = func(string) error { return errors.New("sync layer down") }

			So(m.Save(), ShouldNotBeNil)
		})
	})
}

type stubHost struct {
	host.Hooks
	dir     string
	touched int
}

func (s *stubHost) MediaDir() (string, error) {
	return s.dir, nil
}

func (s *stubHost) TouchMediaDir(string) error {
	s.touched++
	return nil
}

func TestAttach(t *testing.T) {
	Convey("Attach", t, func() {
		h := &stubHost{dir: mediaDir("attached")}

		m, err := Attach(h)
		So(err, ShouldBeNil)

		Convey("Saves through the host's touch operation", func() {
			lo.Must0(m.Save())
			So(h.touched, ShouldEqual, 1)
		})

		Convey("Saves once when the profile unloads", func() {
			m.Document().HighlightBgColor = "Orange"
			h.FireProfileUnload()
			h.FireProfileUnload()
			So(h.touched, ShouldEqual, 1)

			reloaded := lo.Must(Open(h.dir))
			So(reloaded.Document().HighlightBgColor, ShouldEqual, "Orange")
		})
	})
}
