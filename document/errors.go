package document

import (
	"errors"

	"github.com/mdmaestro/mdmaestro/render"
)

var (
	// ErrNothingToExport is returned when an export finds no content to write.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrImportFailed is returned when external content cannot be read as text.
	ErrImportFailed = errors.New("import failed")

	// ErrConversionFailed is returned when the Markdown converter rejects the document.
	ErrConversionFailed = render.ErrConversionFailed
)
