// Package theme defines the two visual themes of the preview and the colors each one selects.
package theme

import (
	"fmt"
	"strings"
)

// Theme is the active visual theme of a session. The zero value is Dark.
type Theme int

const (
	Dark Theme = iota
	Light
)

// Default is the theme a new session starts with.
const Default = Dark

// All returns every theme in toggle order.
func All() []Theme {
	return []Theme{Dark, Light}
}

func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	default:
		return "dark"
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t != Light
}

// Parse resolves a theme name, case-insensitively.
func Parse(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, fmt.Errorf("unknown theme %q, expected dark or light", name)
	}
}

// Palette holds the theme-dependent color tokens of the preview envelope.
type Palette struct {
	Background string
	Foreground string
	Heading1   string
	Heading2   string
	Heading3   string
}

// Colors returns the palette for t. It depends on nothing but its argument.
func Colors(t Theme) Palette {
	if t == Light {
		return Palette{
			Background: "#fff",
			Foreground: "#000",
			Heading1:   "#333",
			Heading2:   "#444",
			Heading3:   "#555",
		}
	}
	return Palette{
		Background: "#333",
		Foreground: "#eee",
		Heading1:   "#eee",
		Heading2:   "#eee",
		Heading3:   "#eee",
	}
}

// Glamour returns the standard glamour style name matching t.
func Glamour(t Theme) string {
	return t.String()
}
