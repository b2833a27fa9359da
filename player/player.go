// Package player hosts the external media backends that satisfy the
// playback.Element contract. The primary backend drives mpv over its JSON-IPC
// socket and mirrors mpv's observed properties back into the engine; IINA is
// available on macOS as a degraded fallback without an event stream.
package player

import (
	"github.com/spf13/viper"

	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/playback"
)

// Backend extends playback.Element with the process-level surface the display
// layer needs to supervise an external player.
type Backend interface {
	playback.Element

	// OnEvent registers the sink for backend property changes. It must be set
	// before the first Load; events arrive on a background goroutine.
	OnEvent(handler func(playback.Event, any))

	// SetTitle sets the window title applied to subsequently loaded media.
	SetTitle(title string)

	// Wait returns a channel closed when the backend process exits.
	Wait() <-chan struct{}

	// IsRunning reports whether the backend is alive and answering commands.
	IsRunning() bool
}

// New returns the backend selected by configuration, defaulting to mpv.
func New() Backend {
	switch viper.GetString(key.Player) {
	case "iina":
		return NewIINA()
	default:
		return NewMPV()
	}
}
