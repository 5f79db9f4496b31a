// Package recent manages the persistence and retrieval of recently opened profiles.
package recent

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/incread/incread/filesystem"
	"github.com/incread/incread/key"
	"github.com/incread/incread/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type profileRecord struct {
	Rank int       `json:"rank"`
	Dir  string    `json:"dir"`
	Seen time.Time `json:"seen"`
}

// cacher provides an abstracted, disk-backed registry of opened profiles.
var cacher = gache.New[map[string]*profileRecord](
	&gache.Options{
		Path:       where.Recents(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Remember records a profile media directory in the persistent registry or
// increments its popularity rank. A no-op when profile.remember is off.
func Remember(dir string, weight int) error {
	if !viper.GetBool(key.ProfileRemember) {
		return nil
	}

	dir = sanitize(dir)
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*profileRecord)
	}

	if record, ok := cached[dir]; ok {
		record.Rank += weight
		record.Seen = time.Now()
	} else {
		cached[dir] = &profileRecord{Rank: weight, Dir: dir, Seen: time.Now()}
	}

	return cacher.Set(cached)
}

// Latest returns the most recently opened profile media directory.
func Latest() mo.Option[string] {
	cached, expired, err := cacher.Get()
	if err != nil || expired || len(cached) == 0 {
		return mo.None[string]()
	}

	records := lo.Values(cached)
	slices.SortFunc(records, func(a, b *profileRecord) int {
		return b.Seen.Compare(a.Seen)
	})
	return mo.Some(records[0].Dir)
}

// List returns every remembered profile media directory, most popular first.
func List() []string {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return []string{}
	}

	records := lo.Values(cached)
	slices.SortFunc(records, func(a, b *profileRecord) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank // Descending rank
		}
		return b.Seen.Compare(a.Seen)
	})

	return lo.Map(records, func(r *profileRecord, _ int) string {
		return r.Dir
	})
}

// Suggest returns the most relevant remembered directory for a partial input.
func Suggest(partial string) mo.Option[string] {
	partial = sanitize(partial)
	matches := lo.Filter(List(), func(dir string, _ int) bool {
		return fuzzy.MatchFold(partial, dir) || fuzzy.MatchFold(partial, Name(dir))
	})

	if len(matches) == 0 {
		return mo.None[string]()
	}
	return mo.Some(matches[0])
}

// Forget removes a profile media directory from the registry.
func Forget(dir string) error {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return nil
	}

	delete(cached, sanitize(dir))
	return cacher.Set(cached)
}

// Name derives a display name for a profile from its media directory layout,
// which conventionally is <profile>/<media dir>.
func Name(dir string) string {
	parent := filepath.Dir(sanitize(dir))
	if parent == "." || parent == string(filepath.Separator) {
		return sanitize(dir)
	}
	return filepath.Base(parent)
}

func sanitize(dir string) string {
	return filepath.Clean(strings.TrimSpace(dir))
}
