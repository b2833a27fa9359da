package playback

import (
	"sync"
	"time"
)

// hideControlsDelay is how long the transport controls stay visible after the
// last pointer activity while media is playing.
const hideControlsDelay = 3000 * time.Millisecond

// Controls tracks pointer, scrub, and fullscreen activity to decide when the
// on-screen transport controls are visible versus auto-hidden.
//
// At most one hide timer is live per instance: scheduling always cancels the
// pending timer first. Close tears the timer down deterministically so
// repeated mount/unmount cycles cannot leak.
type Controls struct {
	mu sync.Mutex

	visible       bool
	scrubbing     bool
	fullscreen    bool
	pointerInside bool
	closed        bool

	timer   *time.Timer
	playing func() bool

	// afterFunc is swapped out in tests to drive the timer by hand.
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewControls returns a visible controls machine. The playing callback reports
// whether media is currently playing; paused media keeps controls visible
// indefinitely.
func NewControls(playing func() bool) *Controls {
	return &Controls{
		visible:   true,
		playing:   playing,
		afterFunc: time.AfterFunc,
	}
}

// PointerMoved records pointer movement inside the playback surface:
// controls become visible and the hide timer restarts.
func (c *Controls) PointerMoved() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = true
	c.reschedule()
}

// PointerEntered records the pointer crossing into the playback surface.
func (c *Controls) PointerEntered() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointerInside = true
	c.visible = true
	c.reschedule()
}

// PointerLeft records the pointer exiting the playback surface. While playing
// this hides the controls immediately rather than waiting for the timer, so a
// fast exit cannot leave a stuck overlay.
func (c *Controls) PointerLeft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointerInside = false
	if c.playing() {
		c.visible = false
		c.stopTimer()
	}
}

// BeginScrub pins the controls visible for the duration of a timeline drag.
func (c *Controls) BeginScrub() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrubbing = true
	c.visible = true
	c.stopTimer()
}

// EndScrub finishes a timeline drag and re-arms the normal hide logic.
func (c *Controls) EndScrub() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrubbing = false
	c.reschedule()
}

// PlaybackStateChanged reconciles the hide logic with a play/pause transition:
// pausing pins the controls visible, resuming re-arms the timer.
func (c *Controls) PlaybackStateChanged(playing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if playing {
		c.reschedule()
		return
	}
	c.visible = true
	c.stopTimer()
}

// SetFullscreen reconciles the fullscreen flag from the platform's
// fullscreen-change notification. The machine never assumes its own request
// succeeded; this is the only way the flag changes.
func (c *Controls) SetFullscreen(fullscreen bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fullscreen = fullscreen
}

// Visible reports whether the controls overlay should be rendered.
func (c *Controls) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Scrubbing reports whether a timeline drag is in progress.
func (c *Controls) Scrubbing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scrubbing
}

// Fullscreen reports the reconciled fullscreen state.
func (c *Controls) Fullscreen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fullscreen
}

// Close cancels any pending timer and inertly absorbs all later transitions.
func (c *Controls) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimer()
}

// reschedule restarts the hide timer, cancelling the pending one first so at
// most one timer is ever live. Callers must hold the lock.
func (c *Controls) reschedule() {
	if c.closed {
		return
	}
	c.stopTimer()
	c.timer = c.afterFunc(hideControlsDelay, c.onHideTimeout)
}

// stopTimer cancels the pending hide timer if any. Callers must hold the lock.
func (c *Controls) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// onHideTimeout fires when the hide delay elapses. Controls hide only while
// media is playing and the pointer is still inside the surface; a scrub in
// progress always wins.
func (c *Controls) onHideTimeout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.scrubbing {
		return
	}
	if c.playing() && c.pointerInside {
		c.visible = false
	}
}
