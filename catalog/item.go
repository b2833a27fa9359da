// Package catalog defines the domain models for the remote media library and its filtering surface.
package catalog

import (
	"encoding/json"
	"strings"
)

// Part represents a single fragment of a segmented upload.
type Part struct {
	URL string `json:"url"`
}

// Item represents one playable media entry (video or audio) from the remote catalog.
type Item struct {
	ID           string  `json:"id"`
	URL          string  `json:"url,omitempty"`
	Parts        []Part  `json:"parts,omitempty"`
	Author       string  `json:"autor"`
	Categories   Strings `json:"categoria"`
	Title        string  `json:"title,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
}

// Strings decodes the catalog's category field, which historically is either
// a single JSON string or an array of strings.
type Strings []string

// UnmarshalJSON accepts both the scalar and array wire shapes.
func (s *Strings) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = nil
		} else {
			*s = Strings{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = Strings(many)
	return nil
}

// MarshalJSON always emits the array shape.
func (s Strings) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(s))
}

func (i *Item) String() string {
	if i.Title != "" {
		return i.Title
	}
	return i.DisplayName()
}

// ResolveSource returns the single playable URL for the item.
// Segmented parts take precedence over the legacy flat URL field.
func (i *Item) ResolveSource() string {
	if len(i.Parts) > 0 {
		return i.Parts[0].URL
	}
	return i.URL
}

// HasSource reports whether the item resolves to a non-empty playable URL.
func (i *Item) HasSource() bool {
	return i.ResolveSource() != ""
}

// DisplayName derives a human-readable name from the source filename when no title is present.
func (i *Item) DisplayName() string {
	raw := i.ResolveSource()
	if raw == "" {
		return i.ID
	}

	name := raw
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[:idx]
	}
	if name == "" {
		return i.ID
	}
	return name
}

// HasCategory reports whether any of the item's categories contains the given
// fragment, compared case-insensitively.
func (i *Item) HasCategory(fragment string) bool {
	fragment = strings.ToLower(fragment)
	for _, c := range i.Categories {
		if strings.Contains(strings.ToLower(c), fragment) {
			return true
		}
	}
	return false
}
