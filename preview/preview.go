// Package preview shows a document outside the HTML envelope: in the terminal through
// glamour, or in the system browser from a temporary file.
package preview

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/mdmaestro/mdmaestro/document"
	"github.com/mdmaestro/mdmaestro/filesystem"
	"github.com/mdmaestro/mdmaestro/open"
	"github.com/mdmaestro/mdmaestro/theme"
	"github.com/mdmaestro/mdmaestro/util"
	"github.com/mdmaestro/mdmaestro/where"
)

// Terminal renders source as styled terminal text in the glamour style matching t.
// A width of zero disables wrapping.
func Terminal(source string, t theme.Theme, width int) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	options := []glamour.TermRendererOption{glamour.WithStandardStyle(theme.Glamour(t))}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return r.Render(source)
}

const filePrefix = "preview-"

// StaleAfter is the age at which Prune removes a preview file.
const StaleAfter = 24 * time.Hour

// File writes the session's rendered output to a temporary HTML file named after name
// and returns its path.
func File(s *document.Session, name string) (string, error) {
	out, err := s.ExportRenderedArtifact()
	if err != nil {
		return "", err
	}

	stem := util.SanitizeFilename(util.FileStem(name))
	if stem == "" {
		stem = "untitled"
	}

	path := filepath.Join(where.Temp(), filePrefix+stem+".html")
	if err := filesystem.WriteFile(path, []byte(out)); err != nil {
		return "", fmt.Errorf("write preview: %w", err)
	}
	return path, nil
}

// Browser writes the preview file and opens it with the default handler.
func Browser(s *document.Session, name string) (string, error) {
	path, err := File(s, name)
	if err != nil {
		return "", err
	}
	return path, open.Start(path)
}

// Prune removes preview files in the temp directory last written more than maxAge ago.
// Other files and fresh previews are left alone.
func Prune(maxAge time.Duration) error {
	dir := where.Temp()
	infos, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, info := range infos {
		if info.IsDir() || !strings.HasPrefix(info.Name(), filePrefix) || filepath.Ext(info.Name()) != ".html" {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := util.Delete(filepath.Join(dir, info.Name())); err != nil {
			return err
		}
	}
	return nil
}
