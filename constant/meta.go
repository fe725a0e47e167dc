// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "mdmaestro"

	// Name is the human readable product name shown in the editor and in version output.
	Name = "Markdown Maestro"

	// Tagline is the one-line product description.
	Tagline = "A simple tool for writing and previewing Markdown files with style."

	// Version is the current application semantic version string.
	Version = "1.0.0"
)

// Build metadata, overwritten through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
