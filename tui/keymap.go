package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/mdmaestro/mdmaestro/color"
	"github.com/mdmaestro/mdmaestro/style"
)

type statefulKeymap struct {
	state state

	forceQuit,
	toggleTheme,
	exportMarkdown, exportHTML, exportPDF,
	importFile, clear,
	switchFocus, insert, quickInsert,
	confirm, back,
	up, down, top, bottom key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		toggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		exportMarkdown: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save md"),
		),
		exportHTML: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "export html"),
		),
		exportPDF: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "export pdf"),
		),
		importFile: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "import"),
		),
		clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		switchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "snippets"),
		),
		insert: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("insert")),
		),
		quickInsert: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8"),
			key.WithHelp("alt+1…8", "insert snippet"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case snippetsState:
		return h(k.insert, withDescription(k.switchFocus, "editor"), k.forceQuit),
			h(k.insert, k.up, k.down, k.top, k.bottom, withDescription(k.switchFocus, "editor"), k.back, k.forceQuit)
	case importState, exportState:
		return h(k.confirm, k.back), h(k.confirm, k.back, k.forceQuit)
	default:
		return h(k.toggleTheme, k.exportMarkdown, k.exportHTML, k.exportPDF, k.importFile, k.switchFocus, k.forceQuit),
			h(k.toggleTheme, k.exportMarkdown, k.exportHTML, k.exportPDF, k.importFile, k.clear, k.switchFocus, k.quickInsert, k.forceQuit)
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:   k.up,
		CursorDown: k.down,
		GoToStart:  k.top,
		GoToEnd:    k.bottom,
		ForceQuit:  k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
