package search

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/key"
)

func galleryItems() []*catalog.Item {
	return []*catalog.Item{
		{ID: "v1", Title: "Sunset Beach Run", Author: "mira", Categories: catalog.Strings{"travel"}},
		{ID: "v2", Title: "Beach Volleyball Finals", Author: "koji", Categories: catalog.Strings{"sports"}},
		{ID: "v3", Title: "Night Drive", Author: "mira", Categories: catalog.Strings{"travel", "cars"}},
		{ID: "v4", Title: "Cooking With Fire", Author: "ane", Categories: catalog.Strings{"food"}},
	}
}

func TestSearch(t *testing.T) {
	Convey("Given a search engine", t, func() {
		e := New(galleryItems())

		Convey("A blank query should preview the catalog head", func() {
			So(e.Search("  "), ShouldHaveLength, 4)
		})

		Convey("A single character is too short to rank", func() {
			So(e.Search("b"), ShouldBeEmpty)
		})

		Convey("Should match across fields", func() {
			results := e.Search("mira")
			So(results, ShouldHaveLength, 2)

			results = e.Search("travel")
			So(results, ShouldHaveLength, 2)

			results = e.Search("v4")
			So(results, ShouldHaveLength, 1)
			So(results[0].ID, ShouldEqual, "v4")
		})

		Convey("An exact title prefix should outrank a mid-title match", func() {
			results := e.Search("beach")
			So(len(results), ShouldBeGreaterThanOrEqualTo, 2)
			So(results[0].ID, ShouldEqual, "v2")
		})

		Convey("Unmatched queries should return nothing", func() {
			So(e.Search("zzzzzz"), ShouldBeEmpty)
		})

		Convey("Matching should ignore case", func() {
			So(e.Search("NIGHT"), ShouldHaveLength, 1)
		})
	})
}

func TestSearchLimit(t *testing.T) {
	Convey("Result limit", t, func() {
		items := make([]*catalog.Item, 30)
		for i := range items {
			items[i] = &catalog.Item{ID: "x", Title: "common title"}
		}

		Convey("Should default to the builtin cap", func() {
			e := New(items)
			So(e.Search("common"), ShouldHaveLength, 15)
		})

		Convey("Should follow the configured cap", func() {
			viper.Set(key.SearchResultLimit, 3)
			defer viper.Set(key.SearchResultLimit, 0)

			e := New(items)
			So(e.Search("common"), ShouldHaveLength, 3)
			So(e.Search(""), ShouldHaveLength, 3)
		})
	})
}

func TestSearchCache(t *testing.T) {
	Convey("Result cache", t, func() {
		e := New(galleryItems())

		current := time.Now()
		e.now = func() time.Time { return current }

		first := e.Search("beach")
		So(first, ShouldNotBeEmpty)

		Convey("Should reuse results within the window", func() {
			e.items = nil
			So(e.Search("beach"), ShouldResemble, first)
		})

		Convey("Should expire results past the window", func() {
			e.items = nil
			current = current.Add(2 * time.Minute)
			So(e.Search("beach"), ShouldBeEmpty)
		})

		Convey("ClearCache should drop memoized results immediately", func() {
			e.items = nil
			e.ClearCache()
			So(e.Search("beach"), ShouldBeEmpty)
		})
	})
}
