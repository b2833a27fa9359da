// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 21

// Catalog Endpoints - these keys configure the remote JSON datasets the application consumes.
const (
	CatalogURL      = "catalog.url"
	CatalogMusicURL = "catalog.music_url"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchResultLimit          = "search.result_limit"
	SearchHistorySize          = "search.history_size"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
	TUIGalleryPageSize    = "tui.gallery_page_size"
)

// Media Playback - these keys maintain the state and configuration for the playback engine.
const (
	Player                      = "player.default"
	PlayerShuffle               = "player.shuffle"
	PlayerLoop                  = "player.loop"
	PlayerVolume                = "player.volume"
	PlayerPauseCategories       = "player.pause_categories"
	PlayerShuffleExcludeCurrent = "player.shuffle_exclude_current"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
