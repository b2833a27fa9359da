package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestShortcutRouter(t *testing.T) {
	Convey("ShortcutRouter", t, func() {
		s, el, _ := newTestSession(Options{})
		s.SetItems(testItems(2), "")
		s.Transport().HandleEvent(EventDuration, 100.0)
		s.Transport().HandleEvent(EventTimeUpdate, 50.0)

		fullscreenRequests := 0
		r := NewShortcutRouter(s, func() { fullscreenRequests++ })

		Convey("Space and k should toggle play/pause", func() {
			playing := s.Transport().State().Playing

			So(r.Route(" ", false), ShouldBeTrue)
			So(s.Transport().State().Playing, ShouldEqual, !playing)

			So(r.Route("k", false), ShouldBeTrue)
			So(s.Transport().State().Playing, ShouldEqual, playing)
		})

		Convey("f should request fullscreen without flipping state itself", func() {
			So(r.Route("f", false), ShouldBeTrue)
			So(fullscreenRequests, ShouldEqual, 1)
			So(s.Controls().Fullscreen(), ShouldBeFalse)
		})

		Convey("m should toggle mute", func() {
			So(r.Route("m", false), ShouldBeTrue)
			So(s.Transport().State().Muted, ShouldBeTrue)

			So(r.Route("M", false), ShouldBeTrue)
			So(s.Transport().State().Muted, ShouldBeFalse)
		})

		Convey("Arrows and j/l should seek by the short step", func() {
			So(r.Route("right", false), ShouldBeTrue)
			So(el.lastSeek(), ShouldEqual, 55)

			So(r.Route("left", false), ShouldBeTrue)
			So(el.lastSeek(), ShouldEqual, 50)

			So(r.Route("l", false), ShouldBeTrue)
			So(el.lastSeek(), ShouldEqual, 55)

			So(r.Route("j", false), ShouldBeTrue)
			So(el.lastSeek(), ShouldEqual, 50)
		})

		Convey("Unmapped keys should pass through", func() {
			So(r.Route("q", false), ShouldBeFalse)
			So(r.Route("enter", false), ShouldBeFalse)
		})

		Convey("Text input focus should suppress every shortcut", func() {
			So(r.Route(" ", true), ShouldBeFalse)
			So(r.Route("f", true), ShouldBeFalse)
			So(r.Route("m", true), ShouldBeFalse)

			So(fullscreenRequests, ShouldEqual, 0)
			So(s.Transport().State().Muted, ShouldBeFalse)
		})
	})
}
