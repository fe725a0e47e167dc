package tui

import (
	"fmt"

	"github.com/mdmaestro/mdmaestro/icon"
	"github.com/mdmaestro/mdmaestro/snippet"
	"github.com/mdmaestro/mdmaestro/style"
)

// listItem wraps a catalog entry for the snippet menu.
type listItem struct {
	index int
	spec  snippet.Spec
}

func (t *listItem) Title() string {
	return fmt.Sprintf("%s %s", icon.Get(icon.Snippet), t.spec.Label)
}

func (t *listItem) Description() string {
	return style.Faint(fmt.Sprintf("alt+%d · %dpx", t.index+1, t.spec.FontSize))
}

func (t *listItem) FilterValue() string {
	return t.spec.Label
}
