// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/vidsan-cli/vidsan/catalog"
)

type Output struct {
	Query  string          `json:"query"`
	Result []*catalog.Item `json:"result"`
}

func writeJson(out io.Writer, items []*catalog.Item, options *Options) error {
	if items == nil {
		items = []*catalog.Item{}
	}

	data, err := json.Marshal(&Output{
		Query:  options.Query,
		Result: items,
	})
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
