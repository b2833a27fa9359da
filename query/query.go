// Package query manages the persistent history of completed searches and the
// suggestions derived from it. The history is bounded and most-recent-first:
// repeating an old query moves it back to the front instead of duplicating it.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/where"
)

type queryRecord struct {
	Query string `json:"query"`
}

var cacher = gache.New[[]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]string)

// Remember records a completed search at the front of the history, evicting
// the oldest entry once the configured size is exceeded. Blank queries and
// duplicates of the current front are absorbed silently.
func Remember(q string) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	records := load()

	records = lo.Filter(records, func(r *queryRecord, _ int) bool {
		return r.Query != q
	})
	records = append([]*queryRecord{{Query: q}}, records...)

	if limit := historySize(); len(records) > limit {
		records = records[:limit]
	}

	suggestionCache = make(map[string][]string)
	return cacher.Set(records)
}

// Recent returns the remembered queries, most recent first.
func Recent() []string {
	return lo.Map(load(), func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// Clear wipes the search history.
func Clear() error {
	suggestionCache = make(map[string][]string)
	return cacher.Set(nil)
}

// Suggest returns the most relevant historical suggestion for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns the historical queries fuzzy-matching the partial input,
// preserving recency order. Disabled entirely by configuration.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	if prev, ok := suggestionCache[q]; ok {
		return prev
	}

	suggestions := lo.FilterMap(load(), func(r *queryRecord, _ int) (string, bool) {
		return r.Query, fuzzy.Match(q, r.Query)
	})

	suggestionCache[q] = suggestions
	return suggestions
}

// load reads the history, treating a missing or expired cache as empty.
func load() []*queryRecord {
	cached, expired, err := cacher.Get()
	if expired || err != nil {
		return nil
	}
	return cached
}

func historySize() int {
	if size := viper.GetInt(key.SearchHistorySize); size > 0 {
		return size
	}
	return 5
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
