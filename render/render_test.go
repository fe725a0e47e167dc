package render

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mdmaestro/mdmaestro/theme"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"
)

var errBroken = errors.New("broken converter")

// brokenMarkdown rejects every input.
type brokenMarkdown struct {
	goldmark.Markdown
}

func (brokenMarkdown) Convert([]byte, io.Writer, ...parser.ParseOption) error {
	return errBroken
}

func find(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func parse(doc string) *html.Node {
	root, err := html.Parse(strings.NewReader(doc))
	So(err, ShouldBeNil)
	return root
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func TestRender(t *testing.T) {
	Convey("Render", t, func() {
		Convey("Is deterministic", func() {
			src := "# Title\n\nSome *text* with a [link](http://example.com).\n"
			for _, th := range theme.All() {
				a, err := Render(src, th, 18)
				So(err, ShouldBeNil)
				b, err := Render(src, th, 18)
				So(err, ShouldBeNil)
				So(a, ShouldEqual, b)
			}
		})

		Convey("Renders empty input to an envelope with an empty body", func() {
			for _, src := range []string{"", "   \n\t\n"} {
				out, err := Render(src, theme.Dark, 14)
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, `<meta charset="UTF-8">`)
				So(out, ShouldContainSubstring, "font-size: 14px;")

				body := find(parse(out), "body")
				So(body, ShouldNotBeNil)
				for c := body.FirstChild; c != nil; c = c.NextSibling {
					So(c.Type, ShouldEqual, html.TextNode)
					So(strings.TrimSpace(c.Data), ShouldBeEmpty)
				}
			}
		})

		Convey("Selects background and foreground from the theme", func() {
			dark, err := Render("text", theme.Dark, 14)
			So(err, ShouldBeNil)
			So(dark, ShouldContainSubstring, "background-color: #333; color: #eee;")

			light, err := Render("text", theme.Light, 14)
			So(err, ShouldBeNil)
			So(light, ShouldContainSubstring, "background-color: #fff; color: #000;")
		})

		Convey("Heading colors follow the theme", func() {
			light, _ := Render("# a", theme.Light, 14)
			So(light, ShouldContainSubstring, "h1 { color: #333; }")
			So(light, ShouldContainSubstring, "h2 { color: #444; }")
			So(light, ShouldContainSubstring, "h3 { color: #555; }")
			So(light, ShouldNotContainSubstring, " if ")

			dark, _ := Render("# a", theme.Dark, 14)
			So(dark, ShouldContainSubstring, "h1 { color: #eee; }")
		})

		Convey("Every other rule is independent of the theme", func() {
			dark, _ := Render("> quote\n\n`code`", theme.Dark, 14)
			light, _ := Render("> quote\n\n`code`", theme.Light, 14)

			themed := func(line string) bool {
				return strings.HasPrefix(line, "body {") || strings.HasPrefix(line, "h1 {") ||
					strings.HasPrefix(line, "h2 {") || strings.HasPrefix(line, "h3 {")
			}

			darkLines := strings.Split(dark, "\n")
			lightLines := strings.Split(light, "\n")
			So(len(darkLines), ShouldEqual, len(lightLines))
			for i := range darkLines {
				if themed(strings.TrimSpace(darkLines[i])) {
					continue
				}
				So(darkLines[i], ShouldEqual, lightLines[i])
			}
		})

		Convey("Embeds the base font size", func() {
			out, _ := Render("x", theme.Dark, 24)
			So(out, ShouldContainSubstring, "font-size: 24px;")
		})

		Convey("Falls back to the default size for non-positive values", func() {
			out, _ := Render("x", theme.Dark, 0)
			So(out, ShouldContainSubstring, "font-size: 14px;")
		})

		Convey("Converts headings and lists", func() {
			out, err := Render("# Heading 1\n- List item\n", theme.Dark, 14)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "<h1>Heading 1</h1>")
			So(out, ShouldContainSubstring, "<li>List item</li>")
		})

		Convey("Enables fenced code, tables and strikethrough", func() {
			src := "```\nBlock of code\n```\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~\n"
			out, err := Render(src, theme.Dark, 14)
			So(err, ShouldBeNil)

			root := parse(out)
			So(find(root, "pre"), ShouldNotBeNil)
			So(find(root, "code"), ShouldNotBeNil)
			So(find(root, "table"), ShouldNotBeNil)
			So(find(root, "del"), ShouldNotBeNil)
		})

		Convey("Opens links in a new browsing context", func() {
			out, err := Render("[Link text](http://example.com)\n\n<http://example.org>", theme.Dark, 14)
			So(err, ShouldBeNil)

			root := parse(out)
			a := find(root, "a")
			So(a, ShouldNotBeNil)
			So(attr(a, "href"), ShouldEqual, "http://example.com")
			So(attr(a, "target"), ShouldEqual, "_blank")
		})
	})
}

func TestRenderer(t *testing.T) {
	Convey("Given a sanitizing renderer", t, func() {
		r := New(WithSanitize(true))

		Convey("Scripts are removed and link targets kept", func() {
			out, err := r.Render("<script>alert(1)</script>\n\n[x](http://example.com)", theme.Dark, 14)
			So(err, ShouldBeNil)
			So(out, ShouldNotContainSubstring, "<script>")
			So(out, ShouldContainSubstring, `target="_blank"`)
		})
	})

	Convey("Given the default renderer", t, func() {
		Convey("Raw HTML passes through", func() {
			out, err := Render("<span class=\"x\">raw</span>", theme.Dark, 14)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, `<span class="x">raw</span>`)
		})
	})

	Convey("Given a custom font family", t, func() {
		r := New(WithFontFamily("Georgia, serif"))
		out, err := r.Render("x", theme.Light, 14)
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "font-family: Georgia, serif;")

		Convey("A blank family keeps the default", func() {
			out, _ := New(WithFontFamily("  ")).Render("x", theme.Light, 14)
			So(out, ShouldContainSubstring, DefaultFontFamily)
		})
	})
}

func TestConversionFailure(t *testing.T) {
	Convey("Given a renderer whose converter fails", t, func() {
		r := New(WithMarkdown(brokenMarkdown{}))

		Convey("Render reports ErrConversionFailed with the cause", func() {
			out, err := r.Render("# Heading", theme.Dark, 14)
			So(out, ShouldBeEmpty)
			So(errors.Is(err, ErrConversionFailed), ShouldBeTrue)
			So(errors.Is(err, errBroken), ShouldBeTrue)
		})

		Convey("Empty source never reaches the converter", func() {
			out, err := r.Render("  \n", theme.Light, 14)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "<body>")
		})
	})
}
