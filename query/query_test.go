package query

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
	viper.Set(key.SearchHistorySize, 5)
}

func TestHistory(t *testing.T) {
	Convey("Given a search history", t, func() {
		So(Clear(), ShouldBeNil)

		Convey("Remember should keep queries most recent first", func() {
			So(Remember("sunset"), ShouldBeNil)
			So(Remember("beach"), ShouldBeNil)

			So(Recent(), ShouldResemble, []string{"beach", "sunset"})
		})

		Convey("Remember should move a repeated query to the front", func() {
			So(Remember("sunset"), ShouldBeNil)
			So(Remember("beach"), ShouldBeNil)
			So(Remember("sunset"), ShouldBeNil)

			So(Recent(), ShouldResemble, []string{"sunset", "beach"})
		})

		Convey("Remember should normalize case and whitespace", func() {
			So(Remember("  SUNSET  "), ShouldBeNil)
			So(Recent(), ShouldResemble, []string{"sunset"})
		})

		Convey("Remember should absorb blank queries", func() {
			So(Remember("   "), ShouldBeNil)
			So(Recent(), ShouldBeEmpty)
		})

		Convey("The history should evict the oldest entry past its size", func() {
			for i := 0; i < 7; i++ {
				So(Remember(fmt.Sprintf("query-%d", i)), ShouldBeNil)
			}

			recent := Recent()
			So(recent, ShouldHaveLength, 5)
			So(recent[0], ShouldEqual, "query-6")
			So(recent[4], ShouldEqual, "query-2")
		})

		Convey("Clear should wipe everything", func() {
			So(Remember("sunset"), ShouldBeNil)
			So(Clear(), ShouldBeNil)
			So(Recent(), ShouldBeEmpty)
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Given remembered queries", t, func() {
		So(Clear(), ShouldBeNil)
		So(Remember("interview"), ShouldBeNil)
		So(Remember("sunset beach"), ShouldBeNil)

		Convey("SuggestMany should fuzzy match in recency order", func() {
			So(SuggestMany("sun"), ShouldResemble, []string{"sunset beach"})
			So(SuggestMany("xyz"), ShouldBeEmpty)
		})

		Convey("Suggest should return the best match", func() {
			So(Suggest("inter").MustGet(), ShouldEqual, "interview")
			So(Suggest("zzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("An empty input should match everything", func() {
			So(SuggestMany(""), ShouldResemble, []string{"sunset beach", "interview"})
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			So(SuggestMany("sun"), ShouldBeEmpty)
		})
	})
}
