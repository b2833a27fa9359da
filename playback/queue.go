package playback

import (
	"math/rand"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/util"
)

// Mode selects the traversal policy over the current item list.
type Mode int

const (
	// Sequential advances in list order, wrapping forward and clamping backward.
	Sequential Mode = iota

	// Shuffled draws uniformly from a pool of not-yet-played indices,
	// guaranteeing every item is visited once per cycle before any repeats.
	Shuffled
)

// Queue owns the ordering policy and back-navigation history over the current
// filtered item list. It performs no I/O; every operation is a total function
// and out-of-range requests are silently ignored.
type Queue struct {
	// ExcludeCurrentOnRefill drops the just-played index when the shuffle pool
	// is refilled, so it cannot be redrawn immediately. Off by default: a fresh
	// pool contains every index.
	ExcludeCurrentOnRefill bool

	items   []*catalog.Item
	current int
	mode    Mode
	pool    []int
	history util.Stack[int]
}

// NewQueue returns an empty Sequential queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Reset replaces the item list wholesale, moving to index 0 and clearing the
// shuffle pool and history. An empty list is valid; callers must check before rendering.
func (q *Queue) Reset(items []*catalog.Item) {
	q.items = items
	q.current = 0
	q.pool = nil
	q.history.Clear()
}

// GoTo moves directly to index if it is in range, otherwise does nothing.
func (q *Queue) GoTo(index int) {
	if index < 0 || index >= len(q.items) {
		return
	}
	q.current = index
	if q.mode == Shuffled {
		q.history.Clear()
		q.history.Push(index)
	}
}

// Next advances to the following item under the active mode.
// Sequential wraps past the end back to 0. Shuffled refills the pool when
// exhausted, draws uniformly, and records the draw in the back history.
func (q *Queue) Next() {
	if len(q.items) == 0 {
		return
	}

	if q.mode == Sequential {
		q.current = (q.current + 1) % len(q.items)
		return
	}

	if len(q.pool) == 0 {
		q.refillPool()
	}

	drawn := rand.Intn(len(q.pool))
	next := q.pool[drawn]
	q.pool = append(q.pool[:drawn], q.pool[drawn+1:]...)

	q.history.Push(next)
	q.current = next
}

// Previous steps back under the active mode.
// Sequential clamps at 0 without wrapping; Shuffled pops the history twice,
// discarding the current entry to reveal the prior one, and does nothing when
// there is no earlier pick to return to.
func (q *Queue) Previous() {
	if len(q.items) == 0 {
		return
	}

	if q.mode == Sequential {
		if q.current > 0 {
			q.current--
		}
		return
	}

	if q.history.Len() <= 1 {
		return
	}

	q.history.Pop()
	q.current = q.history.Peek()
}

// ToggleMode flips between Sequential and Shuffled. The history collapses to
// the current index and the pool is rebuilt lazily on the next draw.
func (q *Queue) ToggleMode() {
	if q.mode == Sequential {
		q.mode = Shuffled
	} else {
		q.mode = Sequential
	}

	q.history.Clear()
	q.history.Push(q.current)
	q.pool = nil
}

// SetMode forces a specific traversal mode, keeping ToggleMode's reset semantics.
func (q *Queue) SetMode(mode Mode) {
	if q.mode != mode {
		q.ToggleMode()
	}
}

// refillPool rebuilds the shuffle pool with every valid index.
// The current index is only excluded when the policy asks for it and more than
// one item exists, so a single-item queue can still draw.
func (q *Queue) refillPool() {
	q.pool = make([]int, 0, len(q.items))
	for i := range q.items {
		if q.ExcludeCurrentOnRefill && len(q.items) > 1 && i == q.current {
			continue
		}
		q.pool = append(q.pool, i)
	}
}

// Mode returns the active traversal mode.
func (q *Queue) Mode() Mode {
	return q.mode
}

// Len returns the number of items in the queue.
func (q *Queue) Len() int {
	return len(q.items)
}

// Items returns the backing item list.
func (q *Queue) Items() []*catalog.Item {
	return q.items
}

// Current returns the active index. It is meaningless while the queue is empty.
func (q *Queue) Current() int {
	return q.current
}

// CurrentItem returns the active item, or nil when the queue is empty.
func (q *Queue) CurrentItem() *catalog.Item {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[q.current]
}
