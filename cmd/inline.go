// Package cmd implements the command-line interface for vidsan.
package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/inline"
	"github.com/vidsan-cli/vidsan/query"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to rank the catalog with")
	inlineCmd.Flags().StringP("item", "i", "", "Criteria for selecting a single item from the results")
	inlineCmd.Flags().StringSliceP("artist", "a", []string{}, "Restrict the catalog to these artists")
	inlineCmd.Flags().StringSliceP("category", "c", []string{}, "Restrict the catalog to these categories")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("urls", "u", false, "Print resolved playback URLs instead of display names")

	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Item selectors:
  first - first item in the results
  last - last item in the results
  [number] - select item by index (starting from 0)
  any other value - exact match on display name or id

When using the json flag the item selector can be omitted. That way, all results are emitted`,

	Example: "https://github.com/vidsan-cli/vidsan/wiki/Inline-mode",
	Run: func(cmd *cobra.Command, args []string) {
		var err error

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		itemFlag := lo.Must(cmd.Flags().GetString("item"))
		itemPicker := mo.None[inline.ItemPicker]()
		if itemFlag != "" {
			fn, err := parseItemSelector(itemFlag)
			handleErr(err)
			itemPicker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:        writer,
			Query:      lo.Must(cmd.Flags().GetString("query")),
			Artists:    lo.Must(cmd.Flags().GetStringSlice("artist")),
			Categories: lo.Must(cmd.Flags().GetStringSlice("category")),
			ItemPicker: itemPicker,
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			URLs:       lo.Must(cmd.Flags().GetBool("urls")),
		}

		handleErr(inline.Run(options))
	},
}

// parseItemSelector maps the single CLI selector string onto the picker kinds.
func parseItemSelector(selector string) (inline.ItemPicker, error) {
	switch {
	case selector == "first" || selector == "last":
		return inline.ParseItemPicker(selector, "")
	case strings.IndexFunc(selector, func(r rune) bool { return r < '0' || r > '9' }) == -1:
		return inline.ParseItemPicker("index", selector)
	default:
		return inline.ParseItemPicker("exact", selector)
	}
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "item", "part", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
