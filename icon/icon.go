// Package icon renders UI symbols in the variant chosen by the icons.variant setting.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/mdmaestro/mdmaestro/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported icon variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Question
	Theme
	Snippet
	Export
	Import
	Document
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "▣"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", kaomoji: "(╥﹏╥)", squares: "▨"},
	Progress: {emoji: "⏳", nerd: "", plain: "~", kaomoji: "(•_•)", squares: "▧"},
	Question: {emoji: "🤔", nerd: "", plain: "?", kaomoji: "(・_・ヾ", squares: "◩"},
	Theme:    {emoji: "🌗", nerd: "", plain: "◐", kaomoji: "(◐‿◑)", squares: "◧"},
	Snippet:  {emoji: "🧩", nerd: "", plain: "+", kaomoji: "(｡•̀ᴗ-)", squares: "▤"},
	Export:   {emoji: "💾", nerd: "", plain: ">", kaomoji: "(ง •̀_•́)ง", squares: "▥"},
	Import:   {emoji: "📥", nerd: "", plain: "<", kaomoji: "(っ˘ω˘ς)", squares: "▦"},
	Document: {emoji: "📝", nerd: "", plain: "#", kaomoji: "(￣▽￣)ノ", squares: "□"},
}

// Get returns the symbol for the configured variant, or an empty string for an unknown variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered symbol for i.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
