// Package snippet is the fixed catalog of Markdown fragments the editor can insert,
// each paired with the display font size it implies.
package snippet

import (
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// ID identifies a catalog entry.
type ID string

const (
	Heading1     ID = "heading1"
	Heading2     ID = "heading2"
	Heading3     ID = "heading3"
	ListItem     ID = "list-item"
	NumberedItem ID = "numbered-item"
	Link         ID = "link"
	InlineCode   ID = "inline-code"
	CodeBlock    ID = "code-block"
)

// Spec is an immutable catalog entry.
type Spec struct {
	ID       ID     `json:"id" jsonschema:"description=Stable identifier used by insert commands."`
	Label    string `json:"label" jsonschema:"description=Menu label."`
	Text     string `json:"text" jsonschema:"description=Markdown appended to the document."`
	FontSize int    `json:"font_size" jsonschema:"description=Base font size (px) the preview switches to after insertion."`
}

// ErrUnknown is returned by Parse for names outside the catalog.
var ErrUnknown = errors.New("unknown snippet")

// catalog is kept in menu order.
var catalog = []Spec{
	{Heading1, "Heading 1", "# Heading 1\n", 24},
	{Heading2, "Heading 2", "## Heading 2\n", 20},
	{Heading3, "Heading 3", "### Heading 3\n", 18},
	{ListItem, "List item", "- List item\n", 14},
	{NumberedItem, "Numbered item", "1. Numbered item\n", 14},
	{Link, "Link", "[Link text](http://example.com)\n", 14},
	{InlineCode, "Inline code", "`Inline code`\n", 14},
	{CodeBlock, "Code block", "```\nBlock of code\n```\n", 14},
}

var byID = lo.KeyBy(catalog, func(s Spec) ID { return s.ID })

// Lookup returns the entry for id.
func Lookup(id ID) (Spec, bool) {
	s, ok := byID[id]
	return s, ok
}

// All returns every entry in menu order.
func All() []Spec {
	return append([]Spec(nil), catalog...)
}

// IDs returns every identifier in menu order.
func IDs() []ID {
	return lo.Map(catalog, func(s Spec, _ int) ID { return s.ID })
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
}

// Parse resolves an identifier or a menu label, ignoring case, spaces, dashes and underscores.
func Parse(name string) (ID, error) {
	want := normalize(name)
	for _, s := range catalog {
		if normalize(string(s.ID)) == want || normalize(s.Label) == want {
			return s.ID, nil
		}
	}

	closest := lo.MinBy(IDs(), func(a, b ID) bool {
		return levenshtein.Distance(want, normalize(string(a))) < levenshtein.Distance(want, normalize(string(b)))
	})
	return "", fmt.Errorf("%w %q, did you mean %s?", ErrUnknown, name, closest)
}

// Suggest returns the identifiers whose id or label fuzzily matches query, in menu order.
func Suggest(query string) []ID {
	query = strings.TrimSpace(query)
	if query == "" {
		return IDs()
	}

	var ids []ID
	for _, s := range catalog {
		if fuzzy.MatchFold(query, string(s.ID)) || fuzzy.MatchFold(query, s.Label) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
