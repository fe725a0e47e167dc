package document

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/mdmaestro/mdmaestro/filesystem"
)

var htmlConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}

// ReadFile reads path as UTF-8 text. HTML files are converted back to Markdown.
func ReadFile(path string) (string, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImportFailed, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrImportFailed, path)
	}

	if !isHTML(path) {
		return string(data), nil
	}

	md, err := htmlConverter.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("%w: convert %s: %w", ErrImportFailed, path, err)
	}
	return md, nil
}

// ImportFile replaces the source with the contents of path and re-renders.
func (s *Session) ImportFile(path string) error {
	content, err := ReadFile(path)
	if err != nil {
		s.logger().WithError(err).Warn("import failed")
		return err
	}
	return s.Import(content)
}
