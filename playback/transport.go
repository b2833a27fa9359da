package playback

import (
	"math"
	"sync"

	"github.com/vidsan-cli/vidsan/log"
)

// State is a snapshot of the transport's derived playback state.
type State struct {
	Source      string
	CurrentTime float64
	Duration    float64
	Playing     bool
	Muted       bool
	Volume      float64
	LoopSingle  bool
}

// Transport wraps a single Element behind a command/query API.
//
// Commands are fire-and-forget: progress state (position, duration, playing)
// is refreshed exclusively from backend events via HandleEvent, so Playing may
// lag a command by one event-loop turn. Volume and mute are tracked on the
// command path since they are owned by the caller, not the pipeline.
type Transport struct {
	mu sync.Mutex
	el Element

	source      string
	currentTime float64
	duration    float64
	playing     bool
	muted       bool
	volume      float64
	loop        bool

	onEnded func()
}

// NewTransport returns a transport bound to the given element, at full volume
// with no source loaded.
func NewTransport(el Element) *Transport {
	return &Transport{el: el, volume: 1}
}

// OnEnded registers the callback invoked when the backend reports end-of-media.
// The advance-or-loop decision lives with the session, which has queue context.
func (t *Transport) OnEnded(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEnded = fn
}

// Bind associates the transport with a new playable source and starts playback.
// Position and duration are reset; fresh values arrive asynchronously once the
// backend loads metadata. A playback rejection (e.g. the backend refusing to
// autoplay) degrades to "not playing" rather than an error.
func (t *Transport) Bind(sourceURL string) {
	t.mu.Lock()
	t.source = sourceURL
	t.currentTime = 0
	t.duration = 0
	el := t.el
	t.mu.Unlock()

	if err := el.Load(sourceURL); err != nil {
		log.Warnf("transport: load %s: %v", sourceURL, err)
	}
}

// TogglePlayPause issues play when paused and pause when playing.
// The Playing flag itself only changes once the backend confirms via an event.
func (t *Transport) TogglePlayPause() {
	t.mu.Lock()
	playing := t.playing
	el := t.el
	t.mu.Unlock()

	var err error
	if playing {
		err = el.Pause()
	} else {
		err = el.Play()
	}
	if err != nil {
		log.Warnf("transport: toggle play/pause: %v", err)
	}
}

// Play resumes playback. Idempotent when already playing.
func (t *Transport) Play() {
	if err := t.el.Play(); err != nil {
		log.Warnf("transport: play: %v", err)
	}
}

// Pause suspends playback. Idempotent when already paused.
func (t *Transport) Pause() {
	if err := t.el.Pause(); err != nil {
		log.Warnf("transport: pause: %v", err)
	}
}

// SeekTo seeks to a position expressed as a ratio of the total duration.
// The ratio is clamped to [0,1]; an unknown duration resolves to position 0.
func (t *Transport) SeekTo(ratio float64) {
	t.mu.Lock()
	duration := t.duration
	el := t.el
	t.mu.Unlock()

	target := clamp(ratio, 0, 1) * duration
	if err := el.SeekAbsolute(target); err != nil {
		log.Warnf("transport: seek: %v", err)
	}
}

// SeekRelative adds a delta to the current position, clamped to [0, duration].
func (t *Transport) SeekRelative(deltaSeconds float64) {
	t.mu.Lock()
	target := clamp(t.currentTime+deltaSeconds, 0, t.duration)
	el := t.el
	t.mu.Unlock()

	if err := el.SeekAbsolute(target); err != nil {
		log.Warnf("transport: seek: %v", err)
	}
}

// SetVolume sets the output level in [0,1]. Volume and mute are coupled:
// dragging the level to zero mutes, any nonzero level un-mutes.
func (t *Transport) SetVolume(level float64) {
	level = clamp(level, 0, 1)

	t.mu.Lock()
	t.volume = level
	t.muted = level == 0
	muted := t.muted
	el := t.el
	t.mu.Unlock()

	if err := el.SetVolume(level); err != nil {
		log.Warnf("transport: set volume: %v", err)
	}
	if err := el.SetMuted(muted); err != nil {
		log.Warnf("transport: set muted: %v", err)
	}
}

// ToggleMute flips the muted flag. The stored volume level is preserved so
// un-muting restores the prior level.
func (t *Transport) ToggleMute() {
	t.mu.Lock()
	t.muted = !t.muted
	muted := t.muted
	el := t.el
	t.mu.Unlock()

	if err := el.SetMuted(muted); err != nil {
		log.Warnf("transport: toggle mute: %v", err)
	}
}

// SetLoopSingle makes the current source repeat indefinitely on end,
// suppressing the advance that would otherwise fire.
func (t *Transport) SetLoopSingle(enabled bool) {
	t.mu.Lock()
	t.loop = enabled
	el := t.el
	t.mu.Unlock()

	if err := el.SetLoop(enabled); err != nil {
		log.Warnf("transport: set loop: %v", err)
	}
}

// LoopSingle reports whether single-item looping is active.
func (t *Transport) LoopSingle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loop
}

// Restart rewinds the current source to zero and resumes playback.
func (t *Transport) Restart() {
	if err := t.el.SeekAbsolute(0); err != nil {
		log.Warnf("transport: restart: %v", err)
	}
	t.Play()
}

// HandleEvent consumes a named property change from the backend and refreshes
// the derived state fields. Unknown events are ignored.
func (t *Transport) HandleEvent(event Event, data any) {
	var ended func()

	t.mu.Lock()
	switch event {
	case EventTimeUpdate:
		if v, ok := data.(float64); ok {
			t.currentTime = orZero(v)
		}
	case EventDuration:
		if v, ok := data.(float64); ok {
			t.duration = orZero(v)
		}
	case EventPause:
		if paused, ok := data.(bool); ok {
			t.playing = !paused
		}
	case EventEnded:
		if reached, ok := data.(bool); ok && reached {
			ended = t.onEnded
		}
	}
	t.mu.Unlock()

	if ended != nil {
		ended()
	}
}

// State returns a consistent snapshot of the derived playback state.
func (t *Transport) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return State{
		Source:      t.source,
		CurrentTime: t.currentTime,
		Duration:    t.duration,
		Playing:     t.playing,
		Muted:       t.muted,
		Volume:      t.volume,
		LoopSingle:  t.loop,
	}
}

// Progress returns the playback completion ratio in [0,1].
// An unknown duration yields 0, never NaN.
func (t *Transport) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.duration <= 0 {
		return 0
	}
	return clamp(t.currentTime/t.duration, 0, 1)
}

// Close shuts the underlying element down.
func (t *Transport) Close() error {
	return t.el.Close()
}

// clamp constrains v to the inclusive range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// orZero normalizes NaN and negative backend values to zero.
func orZero(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
