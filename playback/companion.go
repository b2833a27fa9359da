package playback

import (
	"sync"

	"github.com/samber/lo"

	"github.com/vidsan-cli/vidsan/catalog"
)

// Companion yields an audio rail session to the main video session. Whenever
// the foreground item carries any of the configured pause categories, the
// audio session pauses; when the foreground item no longer does, the audio
// session resumes only if it was playing when it got displaced.
type Companion struct {
	mu sync.Mutex

	audio           *Session
	pauseCategories []string

	suppressed bool
	wasPlaying bool
}

// NewCompanion wraps an audio session with an auto-pause policy.
func NewCompanion(audio *Session, pauseCategories []string) *Companion {
	return &Companion{
		audio:           audio,
		pauseCategories: pauseCategories,
	}
}

// ItemChanged reconciles the audio session against the foreground item.
// A nil item counts as non-suppressing, e.g. leaving the player view.
func (c *Companion) ItemChanged(item *catalog.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	suppress := item != nil && lo.SomeBy(c.pauseCategories, item.HasCategory)

	switch {
	case suppress && !c.suppressed:
		c.wasPlaying = c.audio.Transport().State().Playing
		c.audio.Transport().Pause()
	case !suppress && c.suppressed:
		if c.wasPlaying {
			c.audio.Transport().Play()
		}
		c.wasPlaying = false
	}

	c.suppressed = suppress
}

// Suppressed reports whether the audio rail is currently held paused.
func (c *Companion) Suppressed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suppressed
}

// Session exposes the underlying audio session.
func (c *Companion) Session() *Session {
	return c.audio
}
