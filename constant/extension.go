package constant

// Default file extensions for each export target.
const (
	ExtMarkdown = ".md"
	ExtHTML     = ".html"
	ExtPDF      = ".pdf"
)
