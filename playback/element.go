// Package playback implements the playback and navigation engine: queue ordering,
// transport state, controls visibility, and keyboard routing.
//
// The engine never talks to a media backend directly. The surrounding platform
// layer implements Element and feeds property changes back through
// Transport.HandleEvent, mirroring an observed-property event stream.
package playback

// Element encapsulates the imperative surface of a single underlying media backend.
type Element interface {
	// Load binds the element to a new playable source and starts playback.
	Load(url string) error

	// Play resumes playback. Restating an already-playing state is a no-op.
	Play() error

	// Pause suspends playback. Restating an already-paused state is a no-op.
	Pause() error

	// SeekAbsolute transitions the playback position to an absolute timestamp in seconds.
	SeekAbsolute(seconds float64) error

	// SetVolume sets the output volume in the range 0.0-1.0.
	SetVolume(level float64) error

	// SetMuted sets the muted flag without touching the stored volume level.
	SetMuted(muted bool) error

	// SetLoop makes the element repeat its current source indefinitely on end.
	SetLoop(enabled bool) error

	// Close terminates the backend and releases all associated resources.
	Close() error
}

// Event identifies a named property change emitted by the media backend.
type Event string

// Observed backend properties. The platform layer must deliver these through
// Transport.HandleEvent; the engine derives all progress state from them.
const (
	// EventTimeUpdate carries the current playback position in seconds (float64).
	EventTimeUpdate Event = "time-pos"

	// EventDuration carries the total media duration in seconds (float64).
	// Unknown durations may arrive as NaN and are treated as zero.
	EventDuration Event = "duration"

	// EventPause carries the suspension flag (bool, true when paused).
	EventPause Event = "pause"

	// EventEnded signals end-of-media (bool, true when reached). It is never
	// consumed by the transport itself; the session decides advance-or-loop.
	EventEnded Event = "eof-reached"
)
