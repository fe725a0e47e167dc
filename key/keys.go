// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Rendering - these keys seed every new editing session and shape the HTML envelope.
const (
	RenderTheme      = "render.theme"
	RenderFontSize   = "render.font_size"
	RenderFontFamily = "render.font_family"
	RenderSanitize   = "render.sanitize"
)

// Export - these keys configure the file writers and the simplified PDF layout.
const (
	ExportOverwrite   = "export.overwrite"
	ExportPDFFont     = "export.pdf_font"
	ExportPDFFontSize = "export.pdf_font_size"
	ExportPDFMargin   = "export.pdf_margin"
)

// Editor - these keys define the terminal editor layout.
const (
	EditorPreview         = "editor.preview"
	EditorShowLineNumbers = "editor.show_line_numbers"
)

// Recent documents registry.
const (
	RecentLimit = "recent.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
