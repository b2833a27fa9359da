package playback

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vidsan-cli/vidsan/catalog"
)

func testItems(count int) []*catalog.Item {
	items := make([]*catalog.Item, count)
	for i := range items {
		items[i] = &catalog.Item{
			ID:  fmt.Sprintf("item-%d", i),
			URL: fmt.Sprintf("https://cdn.example.com/%d.mp4", i),
		}
	}
	return items
}

func TestQueueSequential(t *testing.T) {
	Convey("Sequential queue", t, func() {
		q := NewQueue()
		q.Reset(testItems(3))

		Convey("Should start at the first item", func() {
			So(q.Current(), ShouldEqual, 0)
			So(q.CurrentItem().ID, ShouldEqual, "item-0")
		})

		Convey("Next should wrap past the end", func() {
			q.Next()
			q.Next()
			So(q.Current(), ShouldEqual, 2)
			q.Next()
			So(q.Current(), ShouldEqual, 0)
		})

		Convey("Previous should clamp at the start", func() {
			q.Previous()
			So(q.Current(), ShouldEqual, 0)

			q.Next()
			q.Previous()
			So(q.Current(), ShouldEqual, 0)
		})

		Convey("GoTo should ignore out-of-range indices", func() {
			q.GoTo(2)
			So(q.Current(), ShouldEqual, 2)

			q.GoTo(-1)
			So(q.Current(), ShouldEqual, 2)

			q.GoTo(3)
			So(q.Current(), ShouldEqual, 2)
		})
	})
}

func TestQueueEmpty(t *testing.T) {
	Convey("Empty queue", t, func() {
		q := NewQueue()

		Convey("Should absorb every operation", func() {
			q.Next()
			q.Previous()
			q.GoTo(0)
			q.ToggleMode()
			q.Next()

			So(q.Len(), ShouldEqual, 0)
			So(q.CurrentItem(), ShouldBeNil)
		})
	})
}

func TestQueueShuffled(t *testing.T) {
	Convey("Shuffled queue", t, func() {
		q := NewQueue()
		q.Reset(testItems(5))
		q.SetMode(Shuffled)

		Convey("Should visit every item once per cycle", func() {
			seen := make(map[int]bool)
			for i := 0; i < 5; i++ {
				q.Next()
				seen[q.Current()] = true
			}
			So(len(seen), ShouldEqual, 5)
		})

		Convey("Previous should retrace the drawn order", func() {
			q.Next()
			first := q.Current()
			q.Next()

			q.Previous()
			So(q.Current(), ShouldEqual, first)

			q.Previous()
			So(q.Current(), ShouldEqual, 0)

			Convey("And stop at the bottom of the history", func() {
				q.Previous()
				So(q.Current(), ShouldEqual, 0)
			})
		})

		Convey("GoTo should restart the history at the target", func() {
			q.Next()
			q.Next()
			q.GoTo(3)
			So(q.Current(), ShouldEqual, 3)

			q.Previous()
			So(q.Current(), ShouldEqual, 3)
		})

		Convey("A single-item queue should keep drawing the only index", func() {
			q.Reset(testItems(1))
			q.SetMode(Shuffled)
			q.Next()
			q.Next()
			So(q.Current(), ShouldEqual, 0)
		})
	})
}

func TestQueueShuffleRefill(t *testing.T) {
	Convey("Shuffle pool refill", t, func() {
		Convey("By default a new cycle may redraw the last item", func() {
			q := NewQueue()
			q.Reset(testItems(2))
			q.SetMode(Shuffled)

			// Two cycles over two items exhaust and refill the pool; every
			// draw must still land in range.
			for i := 0; i < 4; i++ {
				q.Next()
				So(q.Current(), ShouldBeBetweenOrEqual, 0, 1)
			}
		})

		Convey("ExcludeCurrentOnRefill should bar an immediate repeat", func() {
			q := NewQueue()
			q.ExcludeCurrentOnRefill = true
			q.Reset(testItems(3))
			q.SetMode(Shuffled)

			previous := q.Current()
			for i := 0; i < 9; i++ {
				q.Next()
				So(q.Current(), ShouldNotEqual, previous)
				previous = q.Current()
			}
		})
	})
}

func TestQueueToggleMode(t *testing.T) {
	Convey("ToggleMode", t, func() {
		q := NewQueue()
		q.Reset(testItems(4))

		Convey("Should flip between modes", func() {
			So(q.Mode(), ShouldEqual, Sequential)
			q.ToggleMode()
			So(q.Mode(), ShouldEqual, Shuffled)
			q.ToggleMode()
			So(q.Mode(), ShouldEqual, Sequential)
		})

		Convey("Should keep the current position", func() {
			q.GoTo(2)
			q.ToggleMode()
			So(q.Current(), ShouldEqual, 2)
		})

		Convey("Should collapse the shuffle history", func() {
			q.SetMode(Shuffled)
			q.Next()
			q.Next()
			q.SetMode(Sequential)
			q.SetMode(Shuffled)

			position := q.Current()
			q.Previous()
			So(q.Current(), ShouldEqual, position)
		})

		Convey("SetMode with the active mode should be a no-op", func() {
			q.SetMode(Shuffled)
			q.Next()
			first := q.Current()
			q.Next()
			q.SetMode(Shuffled)

			q.Previous()
			So(q.Current(), ShouldEqual, first)
		})
	})
}

func TestQueueReset(t *testing.T) {
	Convey("Reset", t, func() {
		q := NewQueue()
		q.Reset(testItems(3))
		q.SetMode(Shuffled)
		q.Next()

		Convey("Should return to the first item and clear history", func() {
			q.Reset(testItems(5))
			So(q.Current(), ShouldEqual, 0)
			So(q.Len(), ShouldEqual, 5)

			q.Previous()
			So(q.Current(), ShouldEqual, 0)
		})

		Convey("Should accept an empty list", func() {
			q.Reset(nil)
			So(q.Len(), ShouldEqual, 0)
			So(q.CurrentItem(), ShouldBeNil)
		})
	})
}
