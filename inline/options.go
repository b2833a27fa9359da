// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/mo"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/util"
)

// ItemPicker narrows a result list down to a single item, or nil for no match.
type ItemPicker func([]*catalog.Item) *catalog.Item

type Options struct {
	Out io.Writer

	// Query ranks the catalog before filtering; empty keeps catalog order.
	Query string

	// Artists and Categories restrict the catalog the same way the
	// interactive filter view does.
	Artists    []string
	Categories []string

	ItemPicker mo.Option[ItemPicker]

	Json bool

	// URLs prints resolved playback URLs instead of display names.
	URLs bool
}

// ParseItemPicker parses the CLI description of an item picker.
// Supported kinds: "first", "last", "exact" (by display name) and "index".
func ParseItemPicker(kind, value string) (ItemPicker, error) {
	switch kind {
	case "first":
		return func(items []*catalog.Item) *catalog.Item {
			if len(items) == 0 {
				return nil
			}
			return items[0]
		}, nil
	case "last":
		return func(items []*catalog.Item) *catalog.Item {
			if len(items) == 0 {
				return nil
			}
			return items[len(items)-1]
		}, nil
	case "exact":
		return func(items []*catalog.Item) *catalog.Item {
			for _, item := range items {
				if item.DisplayName() == value || item.ID == value {
					return item
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(items []*catalog.Item) *catalog.Item {
			if len(items) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(items)-1))
			return items[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
