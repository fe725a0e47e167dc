// Package recent remembers which documents were opened most recently.
package recent

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mdmaestro/mdmaestro/filesystem"
	"github.com/mdmaestro/mdmaestro/key"
	"github.com/mdmaestro/mdmaestro/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Entry is a remembered document.
type Entry struct {
	Path     string    `json:"path"`
	OpenedAt time.Time `json:"opened_at"`
}

var (
	once   sync.Once
	cacher *gache.Cache[map[string]*Entry]
)

func registry() *gache.Cache[map[string]*Entry] {
	once.Do(func() {
		cacher = gache.New[map[string]*Entry](&gache.Options{
			Path:       where.Recent(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

func load() (map[string]*Entry, error) {
	cached, expired, err := registry().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Remember records path as opened now, evicting the oldest entries beyond recent.limit.
func Remember(path string) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	entries, err := load()
	if err != nil {
		return err
	}
	entries[path] = &Entry{Path: path, OpenedAt: time.Now()}

	if limit := viper.GetInt(key.RecentLimit); limit > 0 && len(entries) > limit {
		for _, e := range sorted(entries)[limit:] {
			delete(entries, e.Path)
		}
	}

	return registry().Set(entries)
}

func sorted(entries map[string]*Entry) []*Entry {
	list := lo.Values(entries)
	sort.Slice(list, func(i, j int) bool {
		if list[i].OpenedAt.Equal(list[j].OpenedAt) {
			return list[i].Path < list[j].Path
		}
		return list[i].OpenedAt.After(list[j].OpenedAt)
	})
	return list
}

// List returns remembered documents, most recent first.
func List() ([]*Entry, error) {
	entries, err := load()
	if err != nil {
		return nil, err
	}
	return sorted(entries), nil
}

// Suggest returns remembered paths fuzzily matching query, most recent first.
func Suggest(query string) []string {
	entries, err := List()
	if err != nil {
		return nil
	}

	query = strings.TrimSpace(query)
	return lo.FilterMap(entries, func(e *Entry, _ int) (string, bool) {
		return e.Path, query == "" || fuzzy.MatchFold(query, e.Path)
	})
}

// Forget removes every remembered document.
func Forget() error {
	return registry().Set(make(map[string]*Entry))
}
