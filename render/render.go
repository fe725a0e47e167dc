// Package render turns Markdown source into the themed HTML document shown by the preview
// and written by the HTML export.
//
// Rendering is a pure function of its inputs: the same source, theme and base font size
// always produce byte-identical output.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mdmaestro/mdmaestro/theme"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// DefaultFontSize is used when a non-positive base font size is requested.
const DefaultFontSize = 14

// DefaultFontFamily is the CSS font-family of the envelope body.
const DefaultFontFamily = `"Segoe UI Emoji", sans-serif`

// ErrConversionFailed is returned when the Markdown converter rejects its input.
var ErrConversionFailed = errors.New("markdown conversion failed")

// Renderer converts Markdown and wraps the result in the style envelope.
// A Renderer holds no per-call state and may be reused.
type Renderer struct {
	md         goldmark.Markdown
	policy     *bluemonday.Policy
	fontFamily string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSanitize strips scripts, event handlers and other unsafe markup from the converted fragment.
func WithSanitize(sanitize bool) Option {
	return func(r *Renderer) {
		if sanitize {
			r.policy = newPolicy()
		} else {
			r.policy = nil
		}
	}
}

// WithFontFamily overrides the CSS font-family of the body.
func WithFontFamily(family string) Option {
	return func(r *Renderer) {
		if family = strings.TrimSpace(family); family != "" {
			r.fontFamily = family
		}
	}
}

// WithMarkdown replaces the Markdown converter.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(r *Renderer) {
		if md != nil {
			r.md = md
		}
	}
}

// New returns a Renderer configured by opts.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		md:         newMarkdown(),
		fontFamily: DefaultFontFamily,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = New()

// Render renders source with the default Renderer.
func Render(source string, t theme.Theme, baseFontSize int) (string, error) {
	return defaultRenderer.Render(source, t, baseFontSize)
}

// Render trims source, converts it, and embeds the fragment in the envelope for theme t.
// Empty source yields the envelope with an empty body.
func (r *Renderer) Render(source string, t theme.Theme, baseFontSize int) (string, error) {
	var fragment []byte
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		var err error
		if fragment, err = r.convert([]byte(trimmed)); err != nil {
			return "", fmt.Errorf("%w: %w", ErrConversionFailed, err)
		}
	}

	if baseFontSize <= 0 {
		baseFontSize = DefaultFontSize
	}

	colors := theme.Colors(t)
	var out strings.Builder
	err := envelope.Execute(&out, envelopeData{
		FontFamily: r.fontFamily,
		FontSize:   baseFontSize,
		Background: colors.Background,
		Foreground: colors.Foreground,
		Heading1:   colors.Heading1,
		Heading2:   colors.Heading2,
		Heading3:   colors.Heading3,
		Body:       string(fragment),
	})
	if err != nil {
		return "", fmt.Errorf("envelope: %w", err)
	}

	return out.String(), nil
}
