package where

import (
	"path/filepath"
	"testing"

	"github.com/mdmaestro/mdmaestro/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() lives under Config()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(filepath.Dir(path), ShouldEqual, Config())
		})

		Convey("Recent() is a file inside Cache()", func() {
			So(filepath.Dir(Recent()), ShouldEqual, Cache())
			So(filepath.Base(Recent()), ShouldEqual, "recent.json")
		})

		Convey("Temp()", func() {
			So(lo.Must(filesystem.API().IsDir(Temp())), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/mdmaestro")
			So(Config(), ShouldEqual, "/custom/mdmaestro")
			So(lo.Must(filesystem.API().IsDir("/custom/mdmaestro")), ShouldBeTrue)
		})
	})
}
