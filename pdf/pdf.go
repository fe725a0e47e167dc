// Package pdf lays out plain text as a paginated PDF and inspects the result.
//
// Markup is not interpreted: the text is wrapped to the page width as-is.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Options controls the page layout.
type Options struct {
	// Font is a PDF core font family.
	Font string
	// Size is the font size in points.
	Size float64
	// LineHeight is the height of a wrapped line in millimetres.
	LineHeight float64
	// Margin is the bottom margin in millimetres that triggers a page break.
	Margin float64
}

// DefaultOptions is Helvetica 12pt, 10mm lines, 15mm bottom margin.
func DefaultOptions() Options {
	return Options{
		Font:       "Helvetica",
		Size:       12,
		LineHeight: 10,
		Margin:     15,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if strings.TrimSpace(o.Font) == "" {
		o.Font = d.Font
	}
	if o.Size <= 0 {
		o.Size = d.Size
	}
	if o.LineHeight <= 0 {
		o.LineHeight = d.LineHeight
	}
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	return o
}

// Layout writes text onto A4 portrait pages, wrapping at the page width and
// breaking pages automatically.
func Layout(text string, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, opts.Margin)
	doc.AddPage()
	doc.SetFont(opts.Font, "", opts.Size)

	// Core fonts are cp1252 encoded.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.MultiCell(0, opts.LineHeight, tr(text), "", "", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("layout pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// PageCount validates data as a PDF and returns its number of pages.
func PageCount(data []byte) (int, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	return ctx.PageCount, nil
}
