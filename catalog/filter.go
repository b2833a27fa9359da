// Package catalog defines the domain models for the remote media library and its filtering surface.
package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Filters holds the artist/category multi-select state applied over a catalog.
type Filters struct {
	Artists    []string
	Categories []string
}

// Empty reports whether no filter is active.
func (f *Filters) Empty() bool {
	return len(f.Artists) == 0 && len(f.Categories) == 0
}

// AddArtist appends an artist to the selection if not already present.
func (f *Filters) AddArtist(artist string) {
	if artist != "" && !lo.Contains(f.Artists, artist) {
		f.Artists = append(f.Artists, artist)
	}
}

// AddCategory appends a category to the selection if not already present.
func (f *Filters) AddCategory(category string) {
	if category != "" && !lo.Contains(f.Categories, category) {
		f.Categories = append(f.Categories, category)
	}
}

// AddFromItem folds an item's artist and categories into the selection.
func (f *Filters) AddFromItem(item *Item) {
	f.AddArtist(item.Author)
	for _, c := range item.Categories {
		f.AddCategory(c)
	}
}

// RemoveArtist drops an artist from the selection.
func (f *Filters) RemoveArtist(artist string) {
	f.Artists = lo.Filter(f.Artists, func(a string, _ int) bool { return a != artist })
}

// RemoveCategory drops a category from the selection.
func (f *Filters) RemoveCategory(category string) {
	f.Categories = lo.Filter(f.Categories, func(c string, _ int) bool { return c != category })
}

// Clear resets the selection to its empty state.
func (f *Filters) Clear() {
	f.Artists = nil
	f.Categories = nil
}

// Apply returns the subset of items matching the selection.
// An empty artist or category selection matches everything for that axis;
// the category axis matches when the item shares at least one selected category.
func (f *Filters) Apply(items []*Item) []*Item {
	if f.Empty() {
		return items
	}

	return lo.Filter(items, func(item *Item, _ int) bool {
		artistMatch := len(f.Artists) == 0 || lo.Contains(f.Artists, item.Author)
		categoryMatch := len(f.Categories) == 0 || lo.Some(f.Categories, item.Categories)
		return artistMatch && categoryMatch
	})
}

// Authors returns the sorted set of distinct artists in the catalog.
func Authors(items []*Item) []string {
	authors := lo.Uniq(lo.FilterMap(items, func(item *Item, _ int) (string, bool) {
		return item.Author, item.Author != ""
	}))
	sort.Strings(authors)
	return authors
}

// Categories returns the sorted set of distinct categories in the catalog.
func Categories(items []*Item) []string {
	var categories []string
	for _, item := range items {
		categories = append(categories, item.Categories...)
	}
	categories = lo.Uniq(lo.Filter(categories, func(c string, _ int) bool { return c != "" }))
	sort.Strings(categories)
	return categories
}

// Suggest narrows a candidate list to entries containing the input,
// excluding already-selected values. An empty input returns all unselected candidates.
func Suggest(candidates, selected []string, input string) []string {
	input = strings.ToLower(input)
	return lo.Filter(candidates, func(c string, _ int) bool {
		if lo.Contains(selected, c) {
			return false
		}
		return input == "" || strings.Contains(strings.ToLower(c), input)
	})
}

// Related returns up to limit items recommended for the given item:
// entries by the same author or sharing a category, the item itself excluded.
func Related(items []*Item, item *Item, limit int) []*Item {
	var related []*Item
	for _, candidate := range items {
		if candidate.ID == item.ID {
			continue
		}
		if candidate.Author == item.Author || lo.Some(candidate.Categories, item.Categories) {
			related = append(related, candidate)
		}
		if len(related) == limit {
			break
		}
	}
	return related
}

// FindByID locates an item by identifier, returning its index or -1.
func FindByID(items []*Item, id string) int {
	if id == "" {
		return -1
	}
	_, index, _ := lo.FindIndexOf(items, func(item *Item) bool { return item.ID == id })
	return index
}
