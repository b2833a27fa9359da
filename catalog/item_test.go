package catalog

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestItemDecode(t *testing.T) {
	Convey("Item decoding", t, func() {
		Convey("Scalar category", func() {
			var item Item
			err := json.Unmarshal([]byte(`{"id":"1","url":"a.mp4","autor":"x","categoria":"pop"}`), &item)
			So(err, ShouldBeNil)
			So(item.Categories, ShouldResemble, Strings{"pop"})
		})

		Convey("Array category", func() {
			var item Item
			err := json.Unmarshal([]byte(`{"id":"1","url":"a.mp4","autor":"x","categoria":["pop","rock"]}`), &item)
			So(err, ShouldBeNil)
			So(item.Categories, ShouldResemble, Strings{"pop", "rock"})
		})

		Convey("Empty scalar category yields no categories", func() {
			var item Item
			err := json.Unmarshal([]byte(`{"id":"1","categoria":""}`), &item)
			So(err, ShouldBeNil)
			So(item.Categories, ShouldBeNil)
		})
	})
}

func TestResolveSource(t *testing.T) {
	Convey("ResolveSource", t, func() {
		Convey("Parts take precedence over the flat URL", func() {
			item := &Item{URL: "flat.mp4", Parts: []Part{{URL: "part1.mp4"}, {URL: "part2.mp4"}}}
			So(item.ResolveSource(), ShouldEqual, "part1.mp4")
		})

		Convey("Flat URL is the fallback", func() {
			item := &Item{URL: "flat.mp4"}
			So(item.ResolveSource(), ShouldEqual, "flat.mp4")
		})

		Convey("No source at all", func() {
			item := &Item{ID: "7"}
			So(item.ResolveSource(), ShouldBeEmpty)
			So(item.HasSource(), ShouldBeFalse)
		})
	})
}

func TestDisplayName(t *testing.T) {
	Convey("DisplayName", t, func() {
		Convey("Derives the stem of the source filename", func() {
			item := &Item{URL: "https://cdn.example.com/media/clip-42.mp4"}
			So(item.DisplayName(), ShouldEqual, "clip-42")
		})

		Convey("Falls back to the ID without a source", func() {
			item := &Item{ID: "42"}
			So(item.DisplayName(), ShouldEqual, "42")
		})
	})
}

func TestHasCategory(t *testing.T) {
	Convey("HasCategory", t, func() {
		item := &Item{Categories: Strings{"Electro PMV", "pop"}}

		So(item.HasCategory("pmv"), ShouldBeTrue)
		So(item.HasCategory("POP"), ShouldBeTrue)
		So(item.HasCategory("jazz"), ShouldBeFalse)
	})
}
