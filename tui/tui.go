// Package tui is the interactive editor: a Markdown text area, the snippet menu and a
// live terminal preview of the rendered document.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdmaestro/mdmaestro/document"
	"github.com/mdmaestro/mdmaestro/log"
	"github.com/mdmaestro/mdmaestro/recent"
)

// Options configures the editor.
type Options struct {
	// Path of a file to import on start.
	Path string
}

// Run starts the editor on a session seeded from the configuration and blocks until
// the user quits.
func Run(options *Options) error {
	session := document.New(document.FromConfig()...)

	if options.Path != "" {
		if err := session.ImportFile(options.Path); err != nil {
			return err
		}
		if err := recent.Remember(options.Path); err != nil {
			log.Warn(err)
		}
	} else if err := session.Render(); err != nil {
		return err
	}

	bubble := newBubble(session, options.Path)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
