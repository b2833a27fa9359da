package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/icon"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/style"
)

// filterEntry is a toggleable artist or category in the filter view.
type filterEntry struct {
	kind  string // "artist" or "category"
	value string
}

// listItem implements the list.Item interface, wrapping the domain models
// shown in the gallery, filter, and history views.
type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) toggleMark() {
	t.marked = !t.marked
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case *filterEntry:
		return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
	case string:
		return icon.Get(icon.Search)
	default:
		return ""
	}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *catalog.Item:
		var sb = strings.Builder{}

		if e.HasCategory("music") {
			sb.WriteString(icon.Get(icon.Audio))
		} else {
			sb.WriteString(icon.Get(icon.Video))
		}
		sb.WriteString(" ")
		sb.WriteString(e.DisplayName())

		title = sb.String()
	case *filterEntry:
		title = e.value
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *catalog.Item:
		var parts []string

		if e.Author != "" {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.AccentColor).Render(e.Author))
		}

		if len(e.Categories) > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(strings.Join(e.Categories, ", ")))
		}

		if viper.GetBool(key.TUIShowURLs) && e.HasSource() {
			parts = append(parts, style.Faint(e.ResolveSource()))
		}

		description = strings.Join(parts, " • ")
	case *filterEntry:
		description = e.kind
	case string:
		description = ""
	}

	return
}

// FilterValue returns the string used for real-time list filtering.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *catalog.Item:
		return e.DisplayName()
	case *filterEntry:
		return e.value
	case string:
		return e
	default:
		return ""
	}
}
