// Package catalog defines the domain models for the remote media library and its filtering surface.
package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vidsan-cli/vidsan/constant"
	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/network"
)

// Fetch retrieves and decodes the remote JSON catalog.
// It is called once per session; a decode failure surfaces as a plain error
// and the caller renders an empty library instead of retrying.
func Fetch(url string) ([]*Item, error) {
	if url == "" {
		return nil, fmt.Errorf("catalog url is not set")
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: unexpected status %s", resp.Status)
	}

	var items []*Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}

	log.Infof("catalog loaded: %d items from %s", len(items), url)
	return items, nil
}
