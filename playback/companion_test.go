package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vidsan-cli/vidsan/catalog"
)

func TestCompanion(t *testing.T) {
	Convey("Companion audio session", t, func() {
		audio, _, _ := newTestSession(Options{})
		audio.SetItems(testItems(1), "")
		c := NewCompanion(audio, []string{"pmv"})

		pmv := &catalog.Item{ID: "clip", Categories: catalog.Strings{"PMV"}}
		plain := &catalog.Item{ID: "talk", Categories: catalog.Strings{"interview"}}

		Convey("Should pause the audio rail on a pause category", func() {
			audio.Transport().Play()
			c.ItemChanged(pmv)

			So(c.Suppressed(), ShouldBeTrue)
			So(audio.Transport().State().Playing, ShouldBeFalse)
		})

		Convey("Should resume only if the rail was playing before", func() {
			audio.Transport().Play()
			c.ItemChanged(pmv)
			c.ItemChanged(plain)

			So(c.Suppressed(), ShouldBeFalse)
			So(audio.Transport().State().Playing, ShouldBeTrue)
		})

		Convey("Should stay paused if the rail was already paused", func() {
			c.ItemChanged(pmv)
			c.ItemChanged(plain)

			So(audio.Transport().State().Playing, ShouldBeFalse)
		})

		Convey("Category matching should ignore case", func() {
			audio.Transport().Play()
			c.ItemChanged(&catalog.Item{ID: "x", Categories: catalog.Strings{"Best PMV 2024"}})

			So(c.Suppressed(), ShouldBeTrue)
		})

		Convey("A nil item should lift the suppression", func() {
			audio.Transport().Play()
			c.ItemChanged(pmv)
			c.ItemChanged(nil)

			So(c.Suppressed(), ShouldBeFalse)
			So(audio.Transport().State().Playing, ShouldBeTrue)
		})

		Convey("Repeated suppressing items should not clobber the restore state", func() {
			audio.Transport().Play()
			c.ItemChanged(pmv)
			c.ItemChanged(&catalog.Item{ID: "clip-2", Categories: catalog.Strings{"pmv"}})
			c.ItemChanged(plain)

			So(audio.Transport().State().Playing, ShouldBeTrue)
		})
	})
}
