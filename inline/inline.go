// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/search"
	"github.com/vidsan-cli/vidsan/util"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	items, err := catalog.Fetch(viper.GetString(key.CatalogURL))
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	log.Infof("catalog loaded: %s", util.Quantify(len(items), "item", "items"))

	filters := catalog.Filters{
		Artists:    options.Artists,
		Categories: options.Categories,
	}
	items = filters.Apply(items)

	if options.Query != "" {
		items = search.New(items).Search(options.Query)
	}

	if picker, ok := options.ItemPicker.Get(); ok {
		if choice := picker(items); choice != nil {
			items = []*catalog.Item{choice}
		} else {
			items = nil
		}
	}

	if options.Json {
		return writeJson(options.Out, items, options)
	}

	for _, item := range items {
		if options.URLs {
			fmt.Fprintln(options.Out, item.ResolveSource())
		} else {
			fmt.Fprintln(options.Out, item.DisplayName())
		}
	}

	return nil
}
