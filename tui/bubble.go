package tui

import (
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mdmaestro/mdmaestro/document"
	"github.com/mdmaestro/mdmaestro/export"
	"github.com/mdmaestro/mdmaestro/internal/ui"
	"github.com/mdmaestro/mdmaestro/key"
	"github.com/mdmaestro/mdmaestro/preview"
	"github.com/mdmaestro/mdmaestro/snippet"
	"github.com/mdmaestro/mdmaestro/style"
	"github.com/mdmaestro/mdmaestro/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const sidebarWidth = 28

type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	session *document.Session
	// path of the imported document, empty for a new one
	path string

	editorC   textarea.Model
	previewC  viewport.Model
	snippetsC list.Model
	promptC   textinput.Model
	helpC     help.Model
	notifier  *ui.Model

	// format being exported while in exportState
	exportFormat export.Format
	// target already reported as existing; a second confirm overwrites it
	pendingOverwrite mo.Option[string]

	showPreview   bool
	width, height int
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)

	switch s {
	case editState:
		b.promptC.Blur()
		b.editorC.Focus()
	case snippetsState:
		b.editorC.Blur()
	case importState, exportState:
		b.editorC.Blur()
		b.promptC.Focus()
	}
}

func (b *statefulBubble) resize(width, height int) tea.Cmd {
	b.width, b.height = width, height

	frameX, frameY := style.Pane(false).GetFrameSize()
	// status line and help
	bodyHeight := util.Max(height-frameY-2, 1)

	// narrow terminals give the sidebar at most a third of the width
	sidebar := util.Min(sidebarWidth, width/3)
	b.snippetsC.SetSize(sidebar, bodyHeight)

	rest := util.Max(width-sidebar-frameX, 2)
	editorWidth := rest
	if b.showPreview {
		editorWidth = rest / 2
		b.previewC.Width = rest - editorWidth - frameX
		b.previewC.Height = bodyHeight
	}

	b.editorC.SetWidth(util.Max(editorWidth-frameX, 1))
	b.editorC.SetHeight(bodyHeight)
	b.promptC.Width = util.Max(width-frameX-20, 10)
	b.helpC.Width = width

	return b.refreshPreview()
}

// refreshPreview re-renders the terminal preview from the session source.
func (b *statefulBubble) refreshPreview() tea.Cmd {
	if !b.showPreview {
		return nil
	}

	out, err := preview.Terminal(b.session.Source(), b.session.Theme(), b.previewC.Width)
	if err != nil {
		return ui.Notify(ui.Failure, err.Error())
	}
	b.previewC.SetContent(out)
	return nil
}

// syncEditor copies the session source into the text area after an operation replaced it.
func (b *statefulBubble) syncEditor() tea.Cmd {
	b.editorC.SetValue(b.session.Source())
	return b.refreshPreview()
}

func newBubble(session *document.Session, path string) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		keymap:      keymap,
		session:     session,
		path:        path,
		notifier:    &ui.Model{},
		showPreview: viper.GetBool(key.EditorPreview),
	}

	bubble.helpC = help.New()

	bubble.editorC = textarea.New()
	bubble.editorC.Placeholder = "Write Markdown here..."
	bubble.editorC.ShowLineNumbers = viper.GetBool(key.EditorShowLineNumbers)
	bubble.editorC.CharLimit = 0
	bubble.editorC.MaxHeight = 0
	bubble.editorC.SetValue(session.Source())

	bubble.previewC = viewport.New(0, 0)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	items := lo.Map(snippet.All(), func(s snippet.Spec, i int) list.Item {
		return &listItem{index: i, spec: s}
	})
	bubble.snippetsC = list.New(items, delegate, sidebarWidth, 0)
	bubble.snippetsC.Title = "Snippets"
	bubble.snippetsC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	bubble.snippetsC.KeyMap = keymap.forList()
	bubble.snippetsC.SetShowHelp(false)
	bubble.snippetsC.SetShowStatusBar(false)
	bubble.snippetsC.SetShowPagination(false)
	bubble.snippetsC.SetFilteringEnabled(false)

	bubble.promptC = textinput.New()
	bubble.promptC.ShowSuggestions = true

	w, h, err := util.TerminalSize()
	if err != nil {
		w, h = 120, 40
	}
	bubble.resize(w, h)
	bubble.setState(editState)

	return &bubble
}

// quickInsertID resolves an alt+N key to the Nth catalog entry.
func quickInsertID(binding bubblesKey.Binding, pressed string) (snippet.ID, bool) {
	ids := snippet.IDs()
	for i, k := range binding.Keys() {
		if k == pressed && i < len(ids) {
			return ids[i], true
		}
	}
	return "", false
}
