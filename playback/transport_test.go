package playback

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func newTestTransport() (*Transport, *fakeElement) {
	el := &fakeElement{}
	tr := NewTransport(el)
	el.transport = tr
	return tr, el
}

func TestTransportBind(t *testing.T) {
	Convey("Bind", t, func() {
		tr, el := newTestTransport()

		Convey("Should load the source and reset progress", func() {
			tr.HandleEvent(EventTimeUpdate, 42.0)
			tr.HandleEvent(EventDuration, 120.0)

			tr.Bind("https://cdn.example.com/a.mp4")

			state := tr.State()
			So(state.Source, ShouldEqual, "https://cdn.example.com/a.mp4")
			So(state.CurrentTime, ShouldEqual, 0)
			So(state.Duration, ShouldEqual, 0)
			So(el.loaded, ShouldResemble, []string{"https://cdn.example.com/a.mp4"})
		})

		Convey("Should degrade when the backend rejects the load", func() {
			el.loadErr = errBackend
			tr.Bind("https://cdn.example.com/b.mp4")

			state := tr.State()
			So(state.Source, ShouldEqual, "https://cdn.example.com/b.mp4")
			So(state.Playing, ShouldBeFalse)
		})
	})
}

func TestTransportEvents(t *testing.T) {
	Convey("HandleEvent", t, func() {
		tr, _ := newTestTransport()

		Convey("Should derive position and duration from events", func() {
			tr.HandleEvent(EventDuration, 200.0)
			tr.HandleEvent(EventTimeUpdate, 50.0)

			state := tr.State()
			So(state.Duration, ShouldEqual, 200)
			So(state.CurrentTime, ShouldEqual, 50)
		})

		Convey("Should derive the playing flag from pause events", func() {
			So(tr.State().Playing, ShouldBeFalse)

			tr.HandleEvent(EventPause, false)
			So(tr.State().Playing, ShouldBeTrue)

			tr.HandleEvent(EventPause, true)
			So(tr.State().Playing, ShouldBeFalse)
		})

		Convey("Should normalize NaN and negative values to zero", func() {
			tr.HandleEvent(EventTimeUpdate, math.NaN())
			tr.HandleEvent(EventDuration, -1.0)

			state := tr.State()
			So(state.CurrentTime, ShouldEqual, 0)
			So(state.Duration, ShouldEqual, 0)
		})

		Convey("Should ignore unknown events and wrong payload types", func() {
			tr.HandleEvent(Event("chapter"), 3.0)
			tr.HandleEvent(EventTimeUpdate, "nonsense")

			So(tr.State().CurrentTime, ShouldEqual, 0)
		})

		Convey("Should invoke the ended callback once the backend reports it", func() {
			var ended int
			tr.OnEnded(func() { ended++ })

			tr.HandleEvent(EventEnded, false)
			So(ended, ShouldEqual, 0)

			tr.HandleEvent(EventEnded, true)
			So(ended, ShouldEqual, 1)
		})
	})
}

func TestTransportPlayPause(t *testing.T) {
	Convey("TogglePlayPause", t, func() {
		tr, _ := newTestTransport()

		Convey("Should play when paused and pause when playing", func() {
			tr.TogglePlayPause()
			So(tr.State().Playing, ShouldBeTrue)

			tr.TogglePlayPause()
			So(tr.State().Playing, ShouldBeFalse)
		})

		Convey("Should leave the flag untouched when the backend refuses", func() {
			tr2, el2 := newTestTransport()
			el2.playErr = errBackend

			tr2.TogglePlayPause()
			So(tr2.State().Playing, ShouldBeFalse)
		})
	})
}

func TestTransportSeek(t *testing.T) {
	Convey("Seeking", t, func() {
		tr, el := newTestTransport()
		tr.HandleEvent(EventDuration, 200.0)
		tr.HandleEvent(EventTimeUpdate, 50.0)

		Convey("SeekTo should map a ratio onto the duration", func() {
			tr.SeekTo(0.5)
			So(el.lastSeek(), ShouldEqual, 100)
		})

		Convey("SeekTo should clamp the ratio to [0,1]", func() {
			tr.SeekTo(1.5)
			So(el.lastSeek(), ShouldEqual, 200)

			tr.SeekTo(-0.5)
			So(el.lastSeek(), ShouldEqual, 0)
		})

		Convey("SeekTo should resolve to zero while duration is unknown", func() {
			tr2, el2 := newTestTransport()
			tr2.SeekTo(0.5)
			So(el2.lastSeek(), ShouldEqual, 0)
		})

		Convey("SeekRelative should clamp to the media bounds", func() {
			tr.SeekRelative(30)
			So(el.lastSeek(), ShouldEqual, 80)

			tr.SeekRelative(1000)
			So(el.lastSeek(), ShouldEqual, 200)

			tr.SeekRelative(-1000)
			So(el.lastSeek(), ShouldEqual, 0)
		})
	})
}

func TestTransportVolume(t *testing.T) {
	Convey("Volume and mute", t, func() {
		tr, el := newTestTransport()

		Convey("Should start at full volume, unmuted", func() {
			state := tr.State()
			So(state.Volume, ShouldEqual, 1)
			So(state.Muted, ShouldBeFalse)
		})

		Convey("SetVolume should clamp and forward the level", func() {
			tr.SetVolume(0.4)
			So(tr.State().Volume, ShouldEqual, 0.4)
			So(el.volume, ShouldEqual, 0.4)

			tr.SetVolume(1.5)
			So(tr.State().Volume, ShouldEqual, 1)
		})

		Convey("Dragging the level to zero should mute", func() {
			tr.SetVolume(0)

			state := tr.State()
			So(state.Muted, ShouldBeTrue)
			So(el.muted, ShouldBeTrue)
		})

		Convey("Any nonzero level should unmute", func() {
			tr.SetVolume(0)
			tr.SetVolume(0.2)

			So(tr.State().Muted, ShouldBeFalse)
		})

		Convey("ToggleMute should preserve the stored level", func() {
			tr.SetVolume(0.7)
			tr.ToggleMute()

			state := tr.State()
			So(state.Muted, ShouldBeTrue)
			So(state.Volume, ShouldEqual, 0.7)

			tr.ToggleMute()
			So(tr.State().Muted, ShouldBeFalse)
			So(tr.State().Volume, ShouldEqual, 0.7)
		})
	})
}

func TestTransportProgress(t *testing.T) {
	Convey("Progress", t, func() {
		tr, _ := newTestTransport()

		Convey("Should be zero while duration is unknown", func() {
			tr.HandleEvent(EventTimeUpdate, 10.0)
			So(tr.Progress(), ShouldEqual, 0)
		})

		Convey("Should be the completion ratio otherwise", func() {
			tr.HandleEvent(EventDuration, 200.0)
			tr.HandleEvent(EventTimeUpdate, 50.0)
			So(tr.Progress(), ShouldEqual, 0.25)
		})
	})
}

func TestTransportLoopAndRestart(t *testing.T) {
	Convey("Loop and restart", t, func() {
		tr, el := newTestTransport()

		Convey("SetLoopSingle should forward to the backend", func() {
			tr.SetLoopSingle(true)
			So(tr.LoopSingle(), ShouldBeTrue)
			So(el.loop, ShouldBeTrue)
		})

		Convey("Restart should rewind and resume", func() {
			tr.HandleEvent(EventDuration, 100.0)
			tr.HandleEvent(EventTimeUpdate, 90.0)

			tr.Restart()

			So(el.lastSeek(), ShouldEqual, 0)
			So(tr.State().Playing, ShouldBeTrue)
		})
	})
}

func TestTransportClose(t *testing.T) {
	Convey("Close", t, func() {
		tr, el := newTestTransport()
		So(tr.Close(), ShouldBeNil)
		So(el.closed, ShouldBeTrue)
	})
}
