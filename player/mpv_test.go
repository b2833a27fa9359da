package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Should accept http and https URLs", func() {
			url, err := sanitizeMediaTarget("https://cdn.example.com/a.mp4")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://cdn.example.com/a.mp4")
		})

		Convey("Should clean local file paths", func() {
			path, err := sanitizeMediaTarget("videos/../clips/a.mp4")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "clips/a.mp4")
		})

		Convey("Should reject empty targets", func() {
			_, err := sanitizeMediaTarget("  ")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject flag-shaped targets", func() {
			_, err := sanitizeMediaTarget("--script=evil.lua")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject control characters", func() {
			_, err := sanitizeMediaTarget("https://a.example/b\n--script=evil")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject non-media schemes", func() {
			_, err := sanitizeMediaTarget("ftp://example.com/a.mp4")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("sanitizeTitle", t, func() {
		So(sanitizeTitle("a\nb\tc\x00"), ShouldEqual, "a b c")
		So(sanitizeTitle("  plain  "), ShouldEqual, "plain")
	})
}
