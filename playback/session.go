package playback

import (
	"sync"
	"time"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/log"
)

const (
	// seekStepSeconds is the distance of a single rewind/forward press.
	seekStepSeconds = 5

	// doublePressWindow is how long a first press waits for a second one
	// before it settles for a seek instead of a queue navigation.
	doublePressWindow = 300 * time.Millisecond
)

// Options configures a session's initial transport and queue policy.
type Options struct {
	Shuffle                bool
	Loop                   bool
	ExcludeCurrentOnRefill bool
	Volume                 float64
}

// Session composes a queue, a transport, and a controls machine into one
// player instance and is the single surface the display layer consumes.
type Session struct {
	mu sync.Mutex

	queue     *Queue
	transport *Transport
	controls  *Controls

	rewindPresses  int
	forwardPresses int
	rewindTimer    *time.Timer
	forwardTimer   *time.Timer

	onItemChanged func(*catalog.Item)

	// afterFunc is swapped out in tests to drive the press timers by hand.
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewSession assembles a player instance around the given media element.
func NewSession(el Element, options Options) *Session {
	s := &Session{
		queue:     NewQueue(),
		transport: NewTransport(el),
		afterFunc: time.AfterFunc,
	}

	s.queue.ExcludeCurrentOnRefill = options.ExcludeCurrentOnRefill
	if options.Shuffle {
		s.queue.SetMode(Shuffled)
	}
	if options.Loop {
		s.transport.SetLoopSingle(true)
	}
	if options.Volume > 0 {
		s.transport.SetVolume(options.Volume)
	}

	s.controls = NewControls(func() bool {
		return s.transport.State().Playing
	})
	s.transport.OnEnded(s.HandleEnded)

	return s
}

// OnItemChanged registers the callback fired whenever the current item
// changes, including to nil when the list empties.
func (s *Session) OnItemChanged(fn func(*catalog.Item)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onItemChanged = fn
}

// SetItems replaces the upstream item list, e.g. after a filter change.
// The queue resets to index 0 first; a deep-link id found in the new list then
// overrides the reset, in that order, so the reset can never clobber the jump.
func (s *Session) SetItems(items []*catalog.Item, deepLinkID string) {
	s.queue.Reset(items)

	if index := catalog.FindByID(items, deepLinkID); index >= 0 {
		s.queue.GoTo(index)
	}

	s.load(true)
}

// Next advances the queue under its active policy and rebinds the transport.
// Explicit user skips and natural end-of-media share this path.
func (s *Session) Next() {
	s.queue.Next()
	s.load(true)
}

// Previous steps the queue back and rebinds only if the position changed,
// so a boundary no-op does not restart the current item.
func (s *Session) Previous() {
	before := s.queue.Current()
	s.queue.Previous()
	if s.queue.Current() != before {
		s.load(true)
	}
}

// GoTo jumps to a specific index, rebinding on change.
func (s *Session) GoTo(index int) {
	before := s.queue.Current()
	s.queue.GoTo(index)
	if s.queue.Current() != before {
		s.load(true)
	}
}

// HandleEnded reacts to end-of-media: single-loop restarts the same item and
// takes precedence over the queue advance.
func (s *Session) HandleEnded() {
	if s.transport.LoopSingle() {
		s.transport.Restart()
		return
	}
	s.Next()
}

// PressRewind registers one press of the rewind affordance. A lone press seeks
// back five seconds once the window closes; a second press within the window
// cancels the pending seek and navigates to the previous item instead.
func (s *Session) PressRewind() {
	s.mu.Lock()
	s.rewindPresses++
	if s.rewindPresses == 1 {
		s.rewindTimer = s.afterFunc(doublePressWindow, s.rewindExpired)
		s.mu.Unlock()
		return
	}

	s.stopTimer(&s.rewindTimer)
	s.rewindPresses = 0
	s.mu.Unlock()

	s.Previous()
}

// PressForward mirrors PressRewind for the forward direction.
func (s *Session) PressForward() {
	s.mu.Lock()
	s.forwardPresses++
	if s.forwardPresses == 1 {
		s.forwardTimer = s.afterFunc(doublePressWindow, s.forwardExpired)
		s.mu.Unlock()
		return
	}

	s.stopTimer(&s.forwardTimer)
	s.forwardPresses = 0
	s.mu.Unlock()

	s.Next()
}

// rewindExpired settles a lone rewind press as a seek.
func (s *Session) rewindExpired() {
	s.mu.Lock()
	fire := s.rewindPresses == 1
	s.rewindPresses = 0
	s.rewindTimer = nil
	s.mu.Unlock()

	if fire {
		s.transport.SeekRelative(-seekStepSeconds)
	}
}

// forwardExpired settles a lone forward press as a seek.
func (s *Session) forwardExpired() {
	s.mu.Lock()
	fire := s.forwardPresses == 1
	s.forwardPresses = 0
	s.forwardTimer = nil
	s.mu.Unlock()

	if fire {
		s.transport.SeekRelative(seekStepSeconds)
	}
}

// stopTimer cancels a pending press timer. Callers must hold the lock.
func (s *Session) stopTimer(timer **time.Timer) {
	if *timer != nil {
		(*timer).Stop()
		*timer = nil
	}
}

// load points the transport at the current item's resolved source and
// notifies the display layer. Items without a valid source are surfaced as a
// nil bind: the transport keeps its previous source untouched and the caller
// renders a fallback instead.
func (s *Session) load(notify bool) {
	item := s.queue.CurrentItem()

	if item != nil && item.HasSource() {
		s.transport.Bind(item.ResolveSource())
	} else if item != nil {
		log.Warnf("session: item %s has no playable source", item.ID)
	}

	s.mu.Lock()
	fn := s.onItemChanged
	s.mu.Unlock()

	if notify && fn != nil {
		fn(item)
	}
}

// CurrentItem returns the item the session is positioned on, or nil.
func (s *Session) CurrentItem() *catalog.Item {
	return s.queue.CurrentItem()
}

// Queue exposes the session's queue.
func (s *Session) Queue() *Queue {
	return s.queue
}

// Transport exposes the session's transport.
func (s *Session) Transport() *Transport {
	return s.transport
}

// Controls exposes the session's controls-visibility machine.
func (s *Session) Controls() *Controls {
	return s.controls
}

// Close tears down timers, the controls machine, and the media element.
func (s *Session) Close() error {
	s.mu.Lock()
	s.stopTimer(&s.rewindTimer)
	s.stopTimer(&s.forwardTimer)
	s.mu.Unlock()

	s.controls.Close()
	return s.transport.Close()
}
