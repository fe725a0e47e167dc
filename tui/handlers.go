package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdmaestro/mdmaestro/export"
	"github.com/mdmaestro/mdmaestro/icon"
	"github.com/mdmaestro/mdmaestro/internal/ui"
	"github.com/mdmaestro/mdmaestro/key"
	"github.com/mdmaestro/mdmaestro/log"
	"github.com/mdmaestro/mdmaestro/recent"
	"github.com/mdmaestro/mdmaestro/snippet"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func failure(err error) tea.Cmd {
	log.Error(err)
	return ui.Notify(ui.Failure, fmt.Sprintf("%s %s", icon.Get(icon.Fail), err))
}

func success(format string, args ...any) tea.Cmd {
	return ui.Notify(ui.Success, fmt.Sprintf("%s %s", icon.Get(icon.Success), fmt.Sprintf(format, args...)))
}

// commit pushes the text area content into the session when it changed.
func (b *statefulBubble) commit() (changed bool, err error) {
	value := b.editorC.Value()
	if value == b.session.Source() {
		return false, nil
	}
	return true, b.session.SetSource(value)
}

func (b *statefulBubble) edited() tea.Cmd {
	changed, err := b.commit()
	if err != nil {
		return failure(err)
	}
	if !changed {
		return nil
	}
	return b.refreshPreview()
}

func (b *statefulBubble) insertSnippet(id snippet.ID) tea.Cmd {
	if _, err := b.commit(); err != nil {
		return failure(err)
	}
	if err := b.session.InsertSnippet(id); err != nil {
		return failure(err)
	}
	return b.syncEditor()
}

func (b *statefulBubble) toggleTheme() tea.Cmd {
	if err := b.session.ToggleTheme(); err != nil {
		return failure(err)
	}
	return tea.Batch(
		b.refreshPreview(),
		ui.Notify(ui.Info, fmt.Sprintf("%s %s theme", icon.Get(icon.Theme), b.session.Theme())),
	)
}

func (b *statefulBubble) clearDocument() tea.Cmd {
	b.session.Clear()
	b.editorC.Reset()
	return b.refreshPreview()
}

func (b *statefulBubble) startImport() {
	b.promptC.Prompt = icon.Get(icon.Import) + " Import: "
	b.promptC.Placeholder = "path to a .md, .txt or .html file"
	b.promptC.SetValue("")
	b.promptC.SetSuggestions(recent.Suggest(""))
	b.setState(importState)
}

func (b *statefulBubble) importFile(path string) tea.Cmd {
	if err := b.session.ImportFile(path); err != nil {
		return failure(err)
	}

	b.path = path
	if err := recent.Remember(path); err != nil {
		log.Warn(err)
	}

	b.setState(editState)
	return tea.Batch(b.syncEditor(), success("imported %s", path))
}

func (b *statefulBubble) startExport(f export.Format) tea.Cmd {
	if _, err := b.commit(); err != nil {
		return failure(err)
	}

	// an empty document fails before the user picks a target
	if _, err := export.Content(b.session, f); err != nil {
		return failure(err)
	}

	b.exportFormat = f
	b.pendingOverwrite = mo.None[string]()
	b.promptC.Prompt = fmt.Sprintf("%s Export %s: ", icon.Get(icon.Export), f)
	b.promptC.Placeholder = "target file"
	b.promptC.SetSuggestions(nil)
	b.promptC.SetValue(export.Target(b.path, f))
	b.promptC.CursorEnd()
	b.setState(exportState)
	return nil
}

func (b *statefulBubble) exportTo(path string) tea.Cmd {
	confirmed, ok := b.pendingOverwrite.Get()
	overwrite := viper.GetBool(key.ExportOverwrite) || (ok && confirmed == path)

	written, err := export.Write(b.session, b.exportFormat, path, overwrite)
	if errors.Is(err, export.ErrExists) {
		b.pendingOverwrite = mo.Some(written)
		b.promptC.SetValue(written)
		return ui.Notify(ui.Info, fmt.Sprintf("%s %s exists, press enter again to overwrite", icon.Get(icon.Question), written))
	}
	if err != nil {
		return failure(err)
	}

	b.pendingOverwrite = mo.None[string]()
	b.setState(editState)
	return success("saved %s", written)
}
