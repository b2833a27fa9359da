// Package search implements weighted fuzzy search over the catalog.
// Matches are scored per field, with the title counting the most and the raw
// id the least, then re-ranked so exact title prefixes surface first.
package search

import (
	"strings"
	"sync"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/key"
)

const (
	maxResults    = 15
	cacheDuration = time.Minute
	minQueryLen   = 2
)

// Field weights, title first.
const (
	weightTitle    = 0.4
	weightAuthor   = 0.3
	weightCategory = 0.2
	weightID       = 0.1
)

type cacheEntry struct {
	results []*catalog.Item
	stamp   time.Time
}

type scored struct {
	item  *catalog.Item
	score float64
}

// Engine searches a fixed item list, memoizing results per query for a short
// window so retyping the same input does not re-rank the whole catalog.
type Engine struct {
	mu    sync.Mutex
	items []*catalog.Item
	cache map[string]cacheEntry
	limit int

	// now is swapped out in tests to age the cache by hand.
	now func() time.Time
}

// New builds an engine over the given items. The result cap comes from
// configuration, falling back to the builtin limit.
func New(items []*catalog.Item) *Engine {
	limit := viper.GetInt(key.SearchResultLimit)
	if limit <= 0 {
		limit = maxResults
	}

	return &Engine{
		items: items,
		cache: make(map[string]cacheEntry),
		limit: limit,
		now:   time.Now,
	}
}

// Search returns the ranked matches for a query, capped at the result limit.
// A blank query previews the head of the catalog; a single character is too
// short to rank and returns nothing.
func (e *Engine) Search(query string) []*catalog.Item {
	normalized := strings.TrimSpace(strings.ToLower(query))

	if normalized == "" {
		return e.items[:lo.Min([]int{e.limit, len(e.items)})]
	}

	if len([]rune(normalized)) < minQueryLen {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if entry, ok := e.cache[normalized]; ok && e.now().Sub(entry.stamp) <= cacheDuration {
		return entry.results
	}

	matches := lo.FilterMap(e.items, func(item *catalog.Item, _ int) (scored, bool) {
		score := scoreItem(normalized, item)
		return scored{item: item, score: score}, score > 0
	})

	// Exact title prefixes outrank everything, then score decides.
	slices.SortStableFunc(matches, func(a, b scored) int {
		aPrefix := strings.HasPrefix(strings.ToLower(a.item.Title), normalized)
		bPrefix := strings.HasPrefix(strings.ToLower(b.item.Title), normalized)

		if aPrefix != bPrefix {
			if aPrefix {
				return -1
			}
			return 1
		}

		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	results := lo.Map(matches, func(s scored, _ int) *catalog.Item {
		return s.item
	})
	if len(results) > e.limit {
		results = results[:e.limit]
	}

	e.cache[normalized] = cacheEntry{results: results, stamp: e.now()}
	e.sweepExpired()

	return results
}

// ClearCache drops every memoized result.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]cacheEntry)
}

// sweepExpired evicts stale cache entries. Callers must hold the lock.
func (e *Engine) sweepExpired() {
	now := e.now()
	for query, entry := range e.cache {
		if now.Sub(entry.stamp) > cacheDuration {
			delete(e.cache, query)
		}
	}
}

// scoreItem sums the weighted proximity of every matching field.
func scoreItem(query string, item *catalog.Item) float64 {
	var score float64

	score += fieldScore(query, item.Title, weightTitle)
	score += fieldScore(query, item.Author, weightAuthor)
	score += fieldScore(query, strings.Join(item.Categories, " "), weightCategory)
	score += fieldScore(query, item.ID, weightID)

	return score
}

// fieldScore rates one field: zero unless the query fuzzy-matches, otherwise
// the weight scaled by Levenshtein proximity so closer spellings rank higher.
func fieldScore(query, field string, weight float64) float64 {
	field = strings.ToLower(field)
	if field == "" || !fuzzy.Match(query, field) {
		return 0
	}

	return weight / float64(1+levenshtein.Distance(query, field))
}
