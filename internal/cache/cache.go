// Package cache prunes expired entries from the localized cache directory.
package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/where"
)

// TTL bounds the lifetime of any cached artifact. Entries carry their own
// expiration inside the file; this is the backstop for files that were
// abandoned mid-write or whose format changed between releases.
const TTL = 7 * 24 * time.Hour

// CollectGarbage walks the cache directory and removes entries older than TTL.
// Intended to run in the background on startup.
func CollectGarbage() {
	fs := filesystem.API()
	dir := where.Cache()

	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > TTL {
			if err := fs.Remove(path); err != nil {
				log.Warnf("cache gc: remove %s: %v", filepath.Base(path), err)
			}
		}

		return nil
	})
	if err != nil {
		log.Warnf("cache gc: %v", err)
	}
}
