// Package export writes a session's content to disk in one of the supported formats.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mdmaestro/mdmaestro/constant"
	"github.com/mdmaestro/mdmaestro/document"
	"github.com/mdmaestro/mdmaestro/filesystem"
	"github.com/mdmaestro/mdmaestro/log"
	"github.com/mdmaestro/mdmaestro/util"
	"github.com/sirupsen/logrus"
)

// Format is an export target.
type Format int

const (
	Markdown Format = iota
	HTML
	PDF
)

// ErrExists is returned when the target exists and overwriting was not requested.
var ErrExists = errors.New("file already exists")

// Formats returns every format in menu order.
func Formats() []Format {
	return []Format{Markdown, HTML, PDF}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case PDF:
		return "pdf"
	default:
		return "md"
	}
}

// Extension is the default file extension of f.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return constant.ExtHTML
	case PDF:
		return constant.ExtPDF
	default:
		return constant.ExtMarkdown
	}
}

// ParseFormat resolves a format name such as "md", "markdown", "html" or "pdf".
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "md", "markdown":
		return Markdown, nil
	case "html", "htm":
		return HTML, nil
	case "pdf":
		return PDF, nil
	default:
		return Markdown, fmt.Errorf("unknown export format %q, expected md, html or pdf", name)
	}
}

// Content extracts the bytes s exports as f.
func Content(s *document.Session, f Format) ([]byte, error) {
	switch f {
	case HTML:
		out, err := s.ExportRenderedArtifact()
		return []byte(out), err
	case PDF:
		return s.ExportSimplifiedDocument()
	default:
		out, err := s.ExportRawMarkup()
		return []byte(out), err
	}
}

// Target derives the default output path for source exported as f: same directory and
// stem, the format's extension.
func Target(source string, f Format) string {
	if source == "" {
		source = "untitled"
	}
	return util.ReplaceExtension(source, f.Extension())
}

// ErrSameFile is returned when an export would overwrite the document it was read from.
var ErrSameFile = errors.New("export target is the source file")

// CopyTarget is Target for exporting a file that stays untouched: when the derived
// path would be source itself, ".export" is inserted before the extension.
func CopyTarget(source string, f Format) string {
	target := Target(source, f)
	if SameFile(source, target) {
		return util.ReplaceExtension(source, ".export"+f.Extension())
	}
	return target
}

// SameFile reports whether a and b name the same path.
func SameFile(a, b string) bool {
	return a != "" && filepath.Clean(a) == filepath.Clean(b)
}

// Write exports s as f to path, adding the format's extension when path has none,
// and returns the path written.
func Write(s *document.Session, f Format, path string, overwrite bool) (string, error) {
	path = util.WithExtension(path, f.Extension())

	data, err := Content(s, f)
	if err != nil {
		return "", err
	}

	if !overwrite {
		exists, err := filesystem.API().Exists(path)
		if err != nil {
			return "", err
		}
		if exists {
			return path, fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	if err := filesystem.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{"format": f.String(), "path": path, "bytes": len(data)}).Info("exported document")
	return path, nil
}
