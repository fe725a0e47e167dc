package export

import (
	"errors"
	"testing"

	"github.com/mdmaestro/mdmaestro/document"
	"github.com/mdmaestro/mdmaestro/filesystem"
	"github.com/mdmaestro/mdmaestro/pdf"
	"github.com/mdmaestro/mdmaestro/snippet"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestFormat(t *testing.T) {
	Convey("Format", t, func() {
		Convey("Parses names and extensions", func() {
			for name, want := range map[string]Format{
				"md": Markdown, "Markdown": Markdown, ".md": Markdown,
				"html": HTML, "htm": HTML, "pdf": PDF, "PDF": PDF,
			} {
				f, err := ParseFormat(name)
				So(err, ShouldBeNil)
				So(f, ShouldEqual, want)
			}

			_, err := ParseFormat("docx")
			So(err, ShouldNotBeNil)
		})

		Convey("Has the default extensions", func() {
			So(Markdown.Extension(), ShouldEqual, ".md")
			So(HTML.Extension(), ShouldEqual, ".html")
			So(PDF.Extension(), ShouldEqual, ".pdf")
		})

		Convey("Target keeps the stem and swaps the extension", func() {
			So(Target("notes/readme.md", HTML), ShouldEqual, "notes/readme.html")
			So(Target("", PDF), ShouldEqual, "untitled.pdf")
		})

		Convey("CopyTarget never points back at the source", func() {
			So(CopyTarget("notes/readme.md", Markdown), ShouldEqual, "notes/readme.export.md")
			So(CopyTarget("notes/readme.md", HTML), ShouldEqual, "notes/readme.html")
			So(CopyTarget("notes/readme.txt", Markdown), ShouldEqual, "notes/readme.md")
		})

		Convey("SameFile compares cleaned paths", func() {
			So(SameFile("notes/readme.md", "notes/./readme.md"), ShouldBeTrue)
			So(SameFile("notes/readme.md", "notes/readme.export.md"), ShouldBeFalse)
			So(SameFile("", ""), ShouldBeFalse)
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given a session with a heading", t, func() {
		s := document.New()
		So(s.InsertSnippet(snippet.Heading1), ShouldBeNil)

		Convey("Markdown is written verbatim with the default extension", func() {
			path, err := Write(s, Markdown, "/out/readme", false)
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/out/readme.md")

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "# Heading 1\n")
		})

		Convey("HTML is the rendered artifact", func() {
			path, err := Write(s, HTML, "/out/page.html", true)
			So(err, ShouldBeNil)

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, s.Rendered())
		})

		Convey("PDF is a valid document", func() {
			path, err := Write(s, PDF, "/out/doc", true)
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/out/doc.pdf")

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			pages, err := pdf.PageCount(data)
			So(err, ShouldBeNil)
			So(pages, ShouldEqual, 1)
		})

		Convey("An existing file is kept unless overwrite is set", func() {
			So(filesystem.WriteFile("/out/keep.md", []byte("old")), ShouldBeNil)

			_, err := Write(s, Markdown, "/out/keep.md", false)
			So(errors.Is(err, ErrExists), ShouldBeTrue)
			data, _ := filesystem.API().ReadFile("/out/keep.md")
			So(string(data), ShouldEqual, "old")

			_, err = Write(s, Markdown, "/out/keep.md", true)
			So(err, ShouldBeNil)
			data, _ = filesystem.API().ReadFile("/out/keep.md")
			So(string(data), ShouldEqual, "# Heading 1\n")
		})

		Convey("An empty session writes nothing", func() {
			s.Clear()
			for _, f := range Formats() {
				_, err := Write(s, f, "/out/empty", true)
				So(errors.Is(err, document.ErrNothingToExport), ShouldBeTrue)
			}
			exists, _ := filesystem.API().Exists("/out/empty.md")
			So(exists, ShouldBeFalse)
		})
	})
}
