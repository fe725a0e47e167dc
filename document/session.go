// Package document holds the state of one open document and the operations the editor performs on it.
//
// A Session is confined to a single goroutine: every method runs to completion before
// the next one starts, so the rendered output never mixes two edits.
package document

import (
	"fmt"
	"strings"

	"github.com/mdmaestro/mdmaestro/log"
	"github.com/mdmaestro/mdmaestro/pdf"
	"github.com/mdmaestro/mdmaestro/render"
	"github.com/mdmaestro/mdmaestro/snippet"
	"github.com/mdmaestro/mdmaestro/theme"
	"github.com/sirupsen/logrus"
)

// Session is a single-document editing session.
type Session struct {
	renderer *render.Renderer
	layout   pdf.Options

	source   string
	theme    theme.Theme
	fontSize int
	rendered string
}

// Option configures a Session.
type Option func(*Session)

// WithTheme sets the initial theme.
func WithTheme(t theme.Theme) Option {
	return func(s *Session) { s.theme = t }
}

// WithFontSize sets the initial font-size hint.
func WithFontSize(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.fontSize = size
		}
	}
}

// WithRenderer replaces the default renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithLayout sets the page layout of the simplified PDF export.
func WithLayout(o pdf.Options) Option {
	return func(s *Session) { s.layout = o }
}

// New starts an empty session: dark theme, font-size hint 14, nothing rendered.
func New(opts ...Option) *Session {
	s := &Session{
		renderer: render.New(),
		layout:   pdf.DefaultOptions(),
		theme:    theme.Default,
		fontSize: render.DefaultFontSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) logger() *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"theme":     s.theme.String(),
		"font_size": s.fontSize,
		"length":    len(s.source),
	})
}

// Source returns the current Markdown source.
func (s *Session) Source() string { return s.source }

// Rendered returns the output of the last successful render, or "" if there is none.
func (s *Session) Rendered() string { return s.rendered }

// FontSize returns the current font-size hint.
func (s *Session) FontSize() int { return s.fontSize }

// Theme returns the active theme.
func (s *Session) Theme() theme.Theme { return s.theme }

// Render re-renders the source with the current theme and font-size hint.
// On failure the previous output is kept.
func (s *Session) Render() error {
	out, err := s.renderer.Render(s.source, s.theme, s.fontSize)
	if err != nil {
		s.logger().WithError(err).Error("render failed")
		return err
	}

	s.rendered = out
	s.logger().Debug("rendered")
	return nil
}

// SetTheme switches the theme and re-renders.
func (s *Session) SetTheme(t theme.Theme) error {
	s.theme = t
	return s.Render()
}

// ToggleTheme switches to the other theme and re-renders.
func (s *Session) ToggleTheme() error {
	return s.SetTheme(s.theme.Toggle())
}

// SetSource replaces the source after a direct edit and re-renders.
func (s *Session) SetSource(text string) error {
	s.source = text
	return s.Render()
}

// InsertSnippet appends the catalog text for id, makes its font size the current hint,
// and re-renders. Unknown ids are ignored.
func (s *Session) InsertSnippet(id snippet.ID) error {
	spec, ok := snippet.Lookup(id)
	if !ok {
		s.logger().Warnf("ignoring unknown snippet %q", id)
		return nil
	}

	s.source += spec.Text
	s.fontSize = spec.FontSize
	return s.Render()
}

// Import replaces the source with content, untrimmed, and re-renders.
func (s *Session) Import(content string) error {
	s.source = content
	s.logger().Info("imported document")
	return s.Render()
}

// Clear empties the source and the rendered output. Theme and font-size hint are kept.
func (s *Session) Clear() {
	s.source = ""
	s.rendered = ""
	s.logger().Info("cleared document")
}

// ExportRawMarkup returns the source verbatim, whitespace included.
func (s *Session) ExportRawMarkup() (string, error) {
	if s.source == "" {
		return "", fmt.Errorf("%w: document is empty", ErrNothingToExport)
	}
	return s.source, nil
}

// ExportRenderedArtifact returns the output of the last render.
func (s *Session) ExportRenderedArtifact() (string, error) {
	if s.rendered == "" {
		return "", fmt.Errorf("%w: nothing has been rendered", ErrNothingToExport)
	}
	return s.rendered, nil
}

// ExportSimplifiedDocument lays the source out as a paginated PDF without interpreting markup.
func (s *Session) ExportSimplifiedDocument() ([]byte, error) {
	text := strings.TrimSpace(s.source)
	if text == "" {
		return nil, fmt.Errorf("%w: document is empty", ErrNothingToExport)
	}
	return pdf.Layout(text, s.layout)
}
