package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the cursor blink and draws the first preview.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, b.refreshPreview())
}
