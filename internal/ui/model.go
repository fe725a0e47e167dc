// Package ui holds the ephemeral notification line of the editor.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdmaestro/mdmaestro/color"
	"github.com/mdmaestro/mdmaestro/style"
)

// Lifetime is how long a notice stays on screen.
const Lifetime = 3 * time.Second

// Level classifies a notice.
type Level int

const (
	Info Level = iota
	Success
	Failure
)

// Notice is a message shown on the last line of the view.
type Notice struct {
	Level Level
	Text  string
}

// ClearNotificationMsg resets the notification line. Seq ties it to the notice it expires.
type ClearNotificationMsg struct {
	Seq int
}

// Model keeps the current notice.
type Model struct {
	notice Notice
	seq    int
}

// Notify returns a command delivering a notice.
func Notify(level Level, text string) tea.Cmd {
	return func() tea.Msg {
		return Notice{Level: level, Text: text}
	}
}

// Update consumes Notice and ClearNotificationMsg messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg
		m.seq++
		seq := m.seq
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return ClearNotificationMsg{Seq: seq}
		})
	case ClearNotificationMsg:
		// a newer notice is still alive
		if msg.Seq == m.seq {
			m.notice = Notice{}
		}
	}
	return nil
}

// Current returns the notice on screen, if any.
func (m *Model) Current() (Notice, bool) {
	return m.notice, m.notice.Text != ""
}

// View appends the current notice to the last line of content.
func (m *Model) View(content string) string {
	if m.notice.Text == "" {
		return content
	}

	var render func(string) string
	switch m.notice.Level {
	case Success:
		render = style.Fg(color.Green)
	case Failure:
		render = style.Fg(color.Red)
	default:
		render = style.Faint
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + render(m.notice.Text)
	return strings.Join(lines, "\n")
}
