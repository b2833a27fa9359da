package playback

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vidsan-cli/vidsan/catalog"
)

func newTestSession(options Options) (*Session, *fakeElement, *manualTimer) {
	el := &fakeElement{}
	timer := &manualTimer{}
	s := NewSession(el, options)
	el.transport = s.Transport()
	s.afterFunc = timer.afterFunc
	return s, el, timer
}

func TestSessionOptions(t *testing.T) {
	Convey("NewSession", t, func() {
		Convey("Should apply the startup options", func() {
			s, el, _ := newTestSession(Options{Shuffle: true, Loop: true, Volume: 0.5})

			So(s.Queue().Mode(), ShouldEqual, Shuffled)
			So(s.Transport().LoopSingle(), ShouldBeTrue)
			So(s.Transport().State().Volume, ShouldEqual, 0.5)
			So(el.volume, ShouldEqual, 0.5)
		})

		Convey("Should default to sequential playback at full volume", func() {
			s, _, _ := newTestSession(Options{})

			So(s.Queue().Mode(), ShouldEqual, Sequential)
			So(s.Transport().State().Volume, ShouldEqual, 1)
		})
	})
}

func TestSessionSetItems(t *testing.T) {
	Convey("SetItems", t, func() {
		s, el, _ := newTestSession(Options{})
		items := testItems(3)

		Convey("Should bind the first item", func() {
			s.SetItems(items, "")

			So(s.CurrentItem().ID, ShouldEqual, "item-0")
			So(el.loaded, ShouldResemble, []string{"https://cdn.example.com/0.mp4"})
		})

		Convey("A deep link should override the initial position", func() {
			s.SetItems(items, "item-2")

			So(s.CurrentItem().ID, ShouldEqual, "item-2")
			So(el.loaded, ShouldResemble, []string{"https://cdn.example.com/2.mp4"})
		})

		Convey("An unknown deep link should fall back to the first item", func() {
			s.SetItems(items, "no-such-id")
			So(s.CurrentItem().ID, ShouldEqual, "item-0")
		})

		Convey("Should notify the display layer", func() {
			var got *catalog.Item
			s.OnItemChanged(func(item *catalog.Item) { got = item })

			s.SetItems(items, "item-1")
			So(got, ShouldNotBeNil)
			So(got.ID, ShouldEqual, "item-1")
		})

		Convey("An empty list should notify with nil", func() {
			notified := false
			var got *catalog.Item
			s.OnItemChanged(func(item *catalog.Item) {
				notified = true
				got = item
			})

			s.SetItems(nil, "")
			So(notified, ShouldBeTrue)
			So(got, ShouldBeNil)
		})

		Convey("An item without a playable source should not rebind", func() {
			s.SetItems(items, "")
			s.SetItems([]*catalog.Item{{ID: "broken"}}, "")

			So(len(el.loaded), ShouldEqual, 1)
			So(s.Transport().State().Source, ShouldEqual, "https://cdn.example.com/0.mp4")
		})
	})
}

func TestSessionNavigation(t *testing.T) {
	Convey("Navigation", t, func() {
		s, el, _ := newTestSession(Options{})
		s.SetItems(testItems(3), "")

		Convey("Next should rebind the following item", func() {
			s.Next()

			So(s.CurrentItem().ID, ShouldEqual, "item-1")
			So(el.loaded, ShouldHaveLength, 2)
		})

		Convey("Previous at the start should not restart the item", func() {
			s.Previous()

			So(s.CurrentItem().ID, ShouldEqual, "item-0")
			So(el.loaded, ShouldHaveLength, 1)
		})

		Convey("GoTo the current index should not restart the item", func() {
			s.GoTo(0)
			So(el.loaded, ShouldHaveLength, 1)

			s.GoTo(2)
			So(el.loaded, ShouldHaveLength, 2)
			So(s.CurrentItem().ID, ShouldEqual, "item-2")
		})
	})
}

func TestSessionEnded(t *testing.T) {
	Convey("End of media", t, func() {
		Convey("Should advance the queue by default", func() {
			s, el, _ := newTestSession(Options{})
			s.SetItems(testItems(3), "")

			s.Transport().HandleEvent(EventEnded, true)

			So(s.CurrentItem().ID, ShouldEqual, "item-1")
			So(el.loaded, ShouldHaveLength, 2)
		})

		Convey("Single-loop should restart the same item instead", func() {
			s, el, _ := newTestSession(Options{Loop: true})
			s.SetItems(testItems(3), "")

			s.Transport().HandleEvent(EventEnded, true)

			So(s.CurrentItem().ID, ShouldEqual, "item-0")
			So(el.loaded, ShouldHaveLength, 1)
			So(el.lastSeek(), ShouldEqual, 0)
		})
	})
}

func TestSessionDoublePress(t *testing.T) {
	Convey("Rewind and forward presses", t, func() {
		s, el, timer := newTestSession(Options{})
		s.SetItems(testItems(3), "")
		s.Transport().HandleEvent(EventDuration, 100.0)
		s.Transport().HandleEvent(EventTimeUpdate, 50.0)

		Convey("A lone forward press should settle for a short seek", func() {
			s.PressForward()
			So(timer.delay, ShouldEqual, 300*time.Millisecond)
			So(el.seeks, ShouldBeEmpty)

			timer.fire()
			So(el.lastSeek(), ShouldEqual, 55)
			So(s.CurrentItem().ID, ShouldEqual, "item-0")
		})

		Convey("A lone rewind press should settle for a short seek back", func() {
			s.PressRewind()
			timer.fire()

			So(el.lastSeek(), ShouldEqual, 45)
			So(s.CurrentItem().ID, ShouldEqual, "item-0")
		})

		Convey("A quick second forward press should skip to the next item", func() {
			s.PressForward()
			s.PressForward()

			So(s.CurrentItem().ID, ShouldEqual, "item-1")
			So(el.loaded, ShouldHaveLength, 2)

			Convey("And the cancelled seek must never fire", func() {
				seeks := len(el.seeks)
				timer.fire()
				So(el.seeks, ShouldHaveLength, seeks)
			})
		})

		Convey("A quick second rewind press should return to the previous item", func() {
			s.Next()
			s.PressRewind()
			s.PressRewind()

			So(s.CurrentItem().ID, ShouldEqual, "item-0")

			Convey("And the cancelled seek must never fire", func() {
				seeks := len(el.seeks)
				timer.fire()
				So(el.seeks, ShouldHaveLength, seeks)
			})
		})

		Convey("Press counting should reset after the window closes", func() {
			s.PressForward()
			timer.fire()
			So(s.CurrentItem().ID, ShouldEqual, "item-0")

			s.PressForward()
			s.PressForward()
			So(s.CurrentItem().ID, ShouldEqual, "item-1")
		})
	})
}

func TestSessionClose(t *testing.T) {
	Convey("Close", t, func() {
		s, el, _ := newTestSession(Options{})
		s.SetItems(testItems(1), "")

		So(s.Close(), ShouldBeNil)
		So(el.closed, ShouldBeTrue)
	})
}
