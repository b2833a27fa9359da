package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vidsan-cli/vidsan/catalog"
)

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty result", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}

func TestParseItemPicker(t *testing.T) {
	Convey("ParseItemPicker", t, func() {
		items := []*catalog.Item{
			{ID: "a", Title: "Alpha"},
			{ID: "b", Title: "Beta"},
			{ID: "c", Title: "Gamma"},
		}

		Convey("first picks the head of the list", func() {
			picker, err := ParseItemPicker("first", "")
			So(err, ShouldBeNil)
			So(picker(items).ID, ShouldEqual, "a")
			So(picker(nil), ShouldBeNil)
		})

		Convey("last picks the tail of the list", func() {
			picker, err := ParseItemPicker("last", "")
			So(err, ShouldBeNil)
			So(picker(items).ID, ShouldEqual, "c")
		})

		Convey("exact matches by display name or id", func() {
			picker, err := ParseItemPicker("exact", "Beta")
			So(err, ShouldBeNil)
			So(picker(items).ID, ShouldEqual, "b")

			picker, err = ParseItemPicker("exact", "c")
			So(err, ShouldBeNil)
			So(picker(items).ID, ShouldEqual, "c")

			picker, err = ParseItemPicker("exact", "missing")
			So(err, ShouldBeNil)
			So(picker(items), ShouldBeNil)
		})

		Convey("index clamps to the list bounds", func() {
			picker, err := ParseItemPicker("index", "1")
			So(err, ShouldBeNil)
			So(picker(items).ID, ShouldEqual, "b")

			picker, err = ParseItemPicker("index", "99")
			So(err, ShouldBeNil)
			So(picker(items).ID, ShouldEqual, "c")
		})

		Convey("rejects malformed descriptions", func() {
			_, err := ParseItemPicker("index", "not-a-number")
			So(err, ShouldNotBeNil)

			_, err = ParseItemPicker("nonsense", "")
			So(err, ShouldNotBeNil)
		})
	})
}
