package util

import (
	"testing"

	"github.com/mdmaestro/mdmaestro/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		So(SanitizeFilename("my notes?.md"), ShouldEqual, "my_notes_.md")
		So(SanitizeFilename("a__b.md"), ShouldEqual, "a_b.md")
		So(SanitizeFilename("-draft-"), ShouldEqual, "draft")
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "page", "pages"), ShouldEqual, "1 page")
		So(Quantify(3, "page", "pages"), ShouldEqual, "3 pages")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("markdown"), ShouldEqual, "Markdown")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestExtensions(t *testing.T) {
	Convey("Extension helpers", t, func() {
		So(FileStem("docs/readme.md"), ShouldEqual, "readme")
		So(WithExtension("out/readme", ".html"), ShouldEqual, "out/readme.html")
		So(WithExtension("out/readme.htm", ".html"), ShouldEqual, "out/readme.htm")
		So(ReplaceExtension("docs/readme.md", ".pdf"), ShouldEqual, "docs/readme.pdf")
		So(ReplaceExtension("notes", ".md"), ShouldEqual, "notes.md")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		So(filesystem.WriteFile("/tmp/del/a.md", []byte("x")), ShouldBeNil)
		So(Delete("/tmp/del"), ShouldBeNil)

		exists, err := filesystem.API().Exists("/tmp/del/a.md")
		So(err, ShouldBeNil)
		So(exists, ShouldBeFalse)

		So(Delete("/tmp/del"), ShouldNotBeNil)
	})
}
