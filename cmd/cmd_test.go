package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mdmaestro/mdmaestro/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func execute(stdin string, args ...string) string {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	So(rootCmd.Execute(), ShouldBeNil)
	return out.String()
}

func TestRenderCmd(t *testing.T) {
	Convey("render reads Markdown from stdin", t, func() {
		out := execute("# Hello", "render")
		So(out, ShouldStartWith, "<html>")
		So(out, ShouldContainSubstring, "<h1>Hello</h1>")
	})

	Convey("render writes to the output file", t, func() {
		So(filesystem.API().WriteFile("/docs/in.md", []byte("- item"), 0o644), ShouldBeNil)
		execute("", "render", "/docs/in.md", "-o", "/docs/out.html")

		data, err := filesystem.API().ReadFile("/docs/out.html")
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "<li>item</li>")
	})
}

func TestExportCmd(t *testing.T) {
	Convey("export md leaves the source file alone", t, func() {
		So(filesystem.API().WriteFile("/docs/keep.md", []byte("# Keep\n"), 0o644), ShouldBeNil)
		execute("", "export", "md", "/docs/keep.md")

		data, err := filesystem.API().ReadFile("/docs/keep.export.md")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "# Keep\n")

		data, err = filesystem.API().ReadFile("/docs/keep.md")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "# Keep\n")
	})
}

func TestSnippetsCmd(t *testing.T) {
	Convey("snippets show prints the inserted Markdown", t, func() {
		snippetsCmd.SetOut(nil)
		snippetsShowCmd.SetOut(nil)
		So(execute("", "snippets", "show", "code-block"), ShouldEqual, "```\nBlock of code\n```\n")
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("An unknown config key suggests the closest one", t, func() {
		So(errUnknownKey("render.them").Error(), ShouldContainSubstring, "render.theme")
	})
}
