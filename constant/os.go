package constant

// Platform identifiers compared against runtime.GOOS when launching external programs.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
