package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdmaestro/mdmaestro/export"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return b, tea.Batch(cmd, b.resize(msg.Width, msg.Height))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var next tea.Cmd
	switch b.state {
	case snippetsState:
		next = b.updateSnippets(msg)
	case importState, exportState:
		next = b.updatePrompt(msg)
	default:
		next = b.updateEdit(msg)
	}

	return b, tea.Batch(cmd, next)
}

func (b *statefulBubble) updateEdit(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.toggleTheme):
			if _, err := b.commit(); err != nil {
				return failure(err)
			}
			return b.toggleTheme()
		case bubblesKey.Matches(msg, b.keymap.exportMarkdown):
			return b.startExport(export.Markdown)
		case bubblesKey.Matches(msg, b.keymap.exportHTML):
			return b.startExport(export.HTML)
		case bubblesKey.Matches(msg, b.keymap.exportPDF):
			return b.startExport(export.PDF)
		case bubblesKey.Matches(msg, b.keymap.importFile):
			b.startImport()
			return nil
		case bubblesKey.Matches(msg, b.keymap.clear):
			return b.clearDocument()
		case bubblesKey.Matches(msg, b.keymap.switchFocus):
			b.setState(snippetsState)
			return nil
		case bubblesKey.Matches(msg, b.keymap.quickInsert):
			if id, ok := quickInsertID(b.keymap.quickInsert, msg.String()); ok {
				return b.insertSnippet(id)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.editorC, cmd = b.editorC.Update(msg)
	return tea.Batch(cmd, b.edited())
}

func (b *statefulBubble) updateSnippets(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.switchFocus), bubblesKey.Matches(msg, b.keymap.back):
			b.setState(editState)
			return nil
		case bubblesKey.Matches(msg, b.keymap.insert):
			item, ok := b.snippetsC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			b.setState(editState)
			return b.insertSnippet(item.spec.ID)
		case bubblesKey.Matches(msg, b.keymap.quickInsert):
			if id, ok := quickInsertID(b.keymap.quickInsert, msg.String()); ok {
				b.setState(editState)
				return b.insertSnippet(id)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.snippetsC, cmd = b.snippetsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updatePrompt(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.setState(editState)
			return nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			value := strings.TrimSpace(b.promptC.Value())
			if value == "" {
				return nil
			}
			if b.state == importState {
				return b.importFile(value)
			}
			return b.exportTo(value)
		}
	}

	var cmd tea.Cmd
	b.promptC, cmd = b.promptC.Update(msg)
	return cmd
}
