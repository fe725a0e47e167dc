package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdmaestro/mdmaestro/icon"
	"github.com/mdmaestro/mdmaestro/style"
	"github.com/mdmaestro/mdmaestro/util"
	"github.com/muesli/reflow/truncate"
)

func (b *statefulBubble) View() string {
	var body string

	switch b.state {
	case importState, exportState:
		body = b.viewPrompt()
	default:
		body = b.viewEditor()
	}

	return b.notifier.View(strings.Join([]string{body, b.viewStatus(), b.helpC.View(b.keymap)}, "\n"))
}

func (b *statefulBubble) viewEditor() string {
	panes := []string{
		style.Pane(b.state == snippetsState).Render(b.snippetsC.View()),
		style.Pane(b.state == editState).Render(b.editorC.View()),
	}
	if b.showPreview {
		panes = append(panes, style.Pane(false).Render(b.previewC.View()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func (b *statefulBubble) viewPrompt() string {
	lines := []string{
		style.Title("Markdown Maestro"),
		"",
		b.promptC.View(),
	}

	if target, ok := b.pendingOverwrite.Get(); ok && b.state == exportState {
		lines = append(lines, "", style.Fg(style.WarningColor)(fmt.Sprintf("%s will be overwritten", target)))
	}

	body := strings.Join(lines, "\n")
	if h := b.height - len(lines) - 2; h > 0 {
		body += strings.Repeat("\n", h)
	}
	return body
}

func (b *statefulBubble) viewStatus() string {
	name := "untitled"
	if b.path != "" {
		name = filepath.Base(b.path)
	}

	lineCount := 0
	if source := b.session.Source(); source != "" {
		lineCount = strings.Count(source, "\n") + 1
	}

	status := strings.Join([]string{
		style.ThemeBadge(b.session.Theme()),
		fmt.Sprintf("%s %s", icon.Get(icon.Document), name),
		style.Faint(util.Quantify(lineCount, "line", "lines")),
		style.Faint(fmt.Sprintf("%dpx", b.session.FontSize())),
	}, "  ")

	return truncate.String(status, uint(util.Max(b.width, 0)))
}
