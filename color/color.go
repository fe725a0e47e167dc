// Package color provides the terminal color palette.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mdmaestro/mdmaestro/theme"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity ANSI colors.
var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)

// Background returns the document background color of t.
func Background(t theme.Theme) lipgloss.Color {
	return New(theme.Colors(t).Background)
}

// Foreground returns the document foreground color of t.
func Foreground(t theme.Theme) lipgloss.Color {
	return New(theme.Colors(t).Foreground)
}
