package document

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mdmaestro/mdmaestro/filesystem"
	"github.com/mdmaestro/mdmaestro/pdf"
	"github.com/mdmaestro/mdmaestro/render"
	"github.com/mdmaestro/mdmaestro/snippet"
	"github.com/mdmaestro/mdmaestro/theme"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
)

func init() {
	filesystem.SetMemMapFs()
}

// switchableMarkdown fails every conversion while broken is set.
type switchableMarkdown struct {
	goldmark.Markdown
	broken bool
}

func (m *switchableMarkdown) Convert(source []byte, w io.Writer, opts ...parser.ParseOption) error {
	if m.broken {
		return errors.New("converter unavailable")
	}
	return m.Markdown.Convert(source, w, opts...)
}

func TestNewSession(t *testing.T) {
	Convey("Given a new session", t, func() {
		s := New()

		Convey("It starts dark, at 14px, with nothing rendered", func() {
			So(s.Theme(), ShouldEqual, theme.Dark)
			So(s.FontSize(), ShouldEqual, 14)
			So(s.Source(), ShouldBeEmpty)
			So(s.Rendered(), ShouldBeEmpty)
		})

		Convey("Exporting the rendered artifact fails before any render", func() {
			_, err := s.ExportRenderedArtifact()
			So(errors.Is(err, ErrNothingToExport), ShouldBeTrue)
		})

		Convey("Options override the defaults", func() {
			s := New(WithTheme(theme.Light), WithFontSize(18))
			So(s.Theme(), ShouldEqual, theme.Light)
			So(s.FontSize(), ShouldEqual, 18)

			So(New(WithFontSize(0)).FontSize(), ShouldEqual, 14)
		})
	})
}

func TestInsertSnippet(t *testing.T) {
	Convey("Given an empty session", t, func() {
		s := New()

		Convey("When inserting a heading then a list item", func() {
			So(s.InsertSnippet(snippet.Heading1), ShouldBeNil)
			So(s.FontSize(), ShouldEqual, 24)
			So(s.InsertSnippet(snippet.ListItem), ShouldBeNil)

			Convey("The source is the concatenation of both snippets", func() {
				So(s.Source(), ShouldEqual, "# Heading 1\n- List item\n")
			})

			Convey("The last insertion decides the font size", func() {
				So(s.FontSize(), ShouldEqual, 14)
			})

			Convey("The rendered output embeds the source at 14px", func() {
				want, err := render.Render("# Heading 1\n- List item\n", theme.Dark, 14)
				So(err, ShouldBeNil)
				So(s.Rendered(), ShouldEqual, want)
				So(s.Rendered(), ShouldContainSubstring, "font-size: 14px;")
				So(s.Rendered(), ShouldContainSubstring, "<h1>Heading 1</h1>")
			})
		})

		Convey("Exporting after any insertion ends with the snippet text", func() {
			for _, id := range snippet.IDs() {
				So(s.InsertSnippet(id), ShouldBeNil)
				raw, err := s.ExportRawMarkup()
				So(err, ShouldBeNil)
				spec, _ := snippet.Lookup(id)
				So(strings.HasSuffix(raw, spec.Text), ShouldBeTrue)
			}
		})

		Convey("An unknown id changes nothing", func() {
			So(s.InsertSnippet("table"), ShouldBeNil)
			So(s.Source(), ShouldBeEmpty)
			So(s.FontSize(), ShouldEqual, 14)
			So(s.Rendered(), ShouldBeEmpty)
		})
	})
}

func TestTheme(t *testing.T) {
	Convey("Given a session with content", t, func() {
		s := New()
		So(s.SetSource("hello"), ShouldBeNil)

		Convey("Switching to light re-renders with light colors", func() {
			So(s.SetTheme(theme.Light), ShouldBeNil)
			So(s.Theme(), ShouldEqual, theme.Light)
			So(s.Rendered(), ShouldContainSubstring, "background-color: #fff; color: #000;")
		})

		Convey("Toggling twice returns to the original output", func() {
			before := s.Rendered()
			So(s.ToggleTheme(), ShouldBeNil)
			So(s.Rendered(), ShouldNotEqual, before)
			So(s.ToggleTheme(), ShouldBeNil)
			So(s.Rendered(), ShouldEqual, before)
		})
	})
}

func TestImport(t *testing.T) {
	Convey("Given a session", t, func() {
		s := New()

		Convey("Import round-trips through ExportRawMarkup untrimmed", func() {
			content := "  \n# Imported\n\ntext  \n"
			So(s.Import(content), ShouldBeNil)
			raw, err := s.ExportRawMarkup()
			So(err, ShouldBeNil)
			So(raw, ShouldEqual, content)
			So(s.Rendered(), ShouldContainSubstring, "<h1>Imported</h1>")
		})

		Convey("Import keeps the font-size hint", func() {
			So(s.InsertSnippet(snippet.Heading2), ShouldBeNil)
			So(s.Import("plain"), ShouldBeNil)
			So(s.FontSize(), ShouldEqual, 20)
		})

		Convey("ImportFile reads Markdown files verbatim", func() {
			So(filesystem.WriteFile("/docs/readme.md", []byte("# Readme\n")), ShouldBeNil)
			So(s.ImportFile("/docs/readme.md"), ShouldBeNil)
			So(s.Source(), ShouldEqual, "# Readme\n")
		})

		Convey("ImportFile converts HTML files to Markdown", func() {
			So(filesystem.WriteFile("/docs/page.html", []byte("<h1>Title</h1><p>Hello <strong>world</strong></p>")), ShouldBeNil)
			So(s.ImportFile("/docs/page.html"), ShouldBeNil)
			So(s.Source(), ShouldContainSubstring, "# Title")
			So(s.Source(), ShouldContainSubstring, "**world**")
		})

		Convey("ImportFile fails for a missing file and leaves the session alone", func() {
			So(s.SetSource("keep me"), ShouldBeNil)
			err := s.ImportFile("/docs/missing.md")
			So(errors.Is(err, ErrImportFailed), ShouldBeTrue)
			So(s.Source(), ShouldEqual, "keep me")
		})

		Convey("ImportFile rejects content that is not UTF-8", func() {
			So(filesystem.WriteFile("/docs/binary.md", []byte{0xff, 0xfe, 0xfd}), ShouldBeNil)
			err := s.ImportFile("/docs/binary.md")
			So(errors.Is(err, ErrImportFailed), ShouldBeTrue)
		})
	})
}

func TestClear(t *testing.T) {
	Convey("Given a session with content in light theme", t, func() {
		s := New()
		So(s.SetTheme(theme.Light), ShouldBeNil)
		So(s.InsertSnippet(snippet.Heading3), ShouldBeNil)

		Convey("Clear empties source and output but keeps theme and font size", func() {
			s.Clear()
			So(s.Source(), ShouldBeEmpty)
			So(s.Rendered(), ShouldBeEmpty)
			So(s.Theme(), ShouldEqual, theme.Light)
			So(s.FontSize(), ShouldEqual, 18)

			Convey("Every export then reports nothing to export", func() {
				_, err := s.ExportRawMarkup()
				So(errors.Is(err, ErrNothingToExport), ShouldBeTrue)

				_, err = s.ExportRenderedArtifact()
				So(errors.Is(err, ErrNothingToExport), ShouldBeTrue)

				_, err = s.ExportSimplifiedDocument()
				So(errors.Is(err, ErrNothingToExport), ShouldBeTrue)
			})
		})
	})
}

func TestExport(t *testing.T) {
	Convey("Given a session with content", t, func() {
		s := New()
		So(s.SetSource("# Title\n\n*emphasis*"), ShouldBeNil)

		Convey("The rendered artifact is the cached render", func() {
			out, err := s.ExportRenderedArtifact()
			So(err, ShouldBeNil)
			So(out, ShouldEqual, s.Rendered())
		})

		Convey("The simplified document is a PDF derived from the source", func() {
			data, err := s.ExportSimplifiedDocument()
			So(err, ShouldBeNil)
			So(bytes.HasPrefix(data, []byte("%PDF-")), ShouldBeTrue)

			pages, err := pdf.PageCount(data)
			So(err, ShouldBeNil)
			So(pages, ShouldEqual, 1)
		})

		Convey("Whitespace-only source is exported exactly as imported", func() {
			So(s.Import("  \n\t\n"), ShouldBeNil)
			raw, err := s.ExportRawMarkup()
			So(err, ShouldBeNil)
			So(raw, ShouldEqual, "  \n\t\n")

			_, err = s.ExportSimplifiedDocument()
			So(errors.Is(err, ErrNothingToExport), ShouldBeTrue)
		})
	})
}

func TestRenderFailure(t *testing.T) {
	Convey("Given a session whose converter starts failing", t, func() {
		md := &switchableMarkdown{Markdown: goldmark.New()}
		s := New(WithRenderer(render.New(render.WithMarkdown(md))))

		So(s.SetSource("# Kept"), ShouldBeNil)
		kept := s.Rendered()
		So(kept, ShouldContainSubstring, "<h1>Kept</h1>")

		md.broken = true

		Convey("A failed edit reports ErrConversionFailed and keeps the last output", func() {
			err := s.SetSource("# Lost")
			So(errors.Is(err, ErrConversionFailed), ShouldBeTrue)
			So(s.Source(), ShouldEqual, "# Lost")
			So(s.Rendered(), ShouldEqual, kept)

			out, err := s.ExportRenderedArtifact()
			So(err, ShouldBeNil)
			So(out, ShouldEqual, kept)
		})

		Convey("A failed theme toggle keeps the last output", func() {
			err := s.ToggleTheme()
			So(errors.Is(err, ErrConversionFailed), ShouldBeTrue)
			So(s.Rendered(), ShouldEqual, kept)
		})
	})
}
