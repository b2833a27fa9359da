// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vidsan-cli/vidsan/key"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// Get retrieves the visual representation for the receiver Def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a single renderable UI symbol in the global registry.
type Icon int

const (
	Play Icon = iota
	Pause
	Shuffle
	Loop
	VolumeHigh
	VolumeMuted
	Video
	Audio
	Mark
	Link
	Search
	Progress
	Success
	Fail
)

// icons maps every Icon identifier to its multi-variant visual definitions.
var icons = map[Icon]*iconDef{
	Play:        {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(play)", squares: "▶"},
	Pause:       {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(pause)", squares: "▮▮"},
	Shuffle:     {emoji: "🔀", nerd: "", plain: "~", kaomoji: "(¬‿¬)", squares: "⤨"},
	Loop:        {emoji: "🔁", nerd: "", plain: "@", kaomoji: "(loop)", squares: "⟳"},
	VolumeHigh:  {emoji: "🔊", nerd: "", plain: "v+", kaomoji: "(loud)", squares: "◀))"},
	VolumeMuted: {emoji: "🔇", nerd: "", plain: "v0", kaomoji: "(shh)", squares: "◀x"},
	Video:       {emoji: "🎬", nerd: "", plain: "#", kaomoji: "(o_o)", squares: "▣"},
	Audio:       {emoji: "🎵", nerd: "", plain: "&", kaomoji: "(♪)", squares: "♫"},
	Mark:        {emoji: "✅", nerd: "", plain: "*", kaomoji: "(･ω･)b", squares: "☑"},
	Link:        {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(c _ c)", squares: "⛓"},
	Search:      {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(o.O)?", squares: "🔎"},
	Progress:    {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(-_-)zzz", squares: "▱▱▱"},
	Success:     {emoji: "🎉", nerd: "", plain: "+", kaomoji: "(ᗒᗨᗕ)/", squares: "■"},
	Fail:        {emoji: "💥", nerd: "", plain: "-", kaomoji: "(╥﹏╥)", squares: "☒"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
