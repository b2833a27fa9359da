package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/color"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/playback"
	"github.com/vidsan-cli/vidsan/player"
	"github.com/vidsan-cli/vidsan/query"
	"github.com/vidsan-cli/vidsan/style"
	"github.com/vidsan-cli/vidsan/util"
)

// playerTickMsg drives the periodic refresh of the player view.
type playerTickMsg time.Time

const playerTickInterval = 500 * time.Millisecond

// loadCatalog fetches the remote catalog in the background.
func (b *statefulBubble) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		url := viper.GetString(key.CatalogURL)
		b.progressStatus = "Fetching catalog"

		items, err := catalog.Fetch(url)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		b.itemsChannel <- items
		return nil
	}
}

func (b *statefulBubble) waitForCatalog() tea.Cmd {
	return func() tea.Msg {
		select {
		case items := <-b.itemsChannel:
			return items
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

// setVisible replaces the gallery's backing subset and refreshes the list.
func (b *statefulBubble) setVisible(items []*catalog.Item) tea.Cmd {
	b.visible = items
	return b.galleryC.SetItems(lo.Map(items, func(item *catalog.Item, _ int) list.Item {
		return &listItem{internal: item}
	}))
}

// applyFilters recomputes the gallery subset from the active filter selection.
func (b *statefulBubble) applyFilters() tea.Cmd {
	return b.setVisible(b.filters.Apply(b.items))
}

// performSearch ranks the catalog against the query and shows the results.
// Completed searches are remembered for the history view.
func (b *statefulBubble) performSearch(q string) tea.Cmd {
	if err := query.Remember(q); err != nil {
		log.Warnf("remember query: %v", err)
	}

	results := b.engine.Search(q)
	b.galleryC.Title = fmt.Sprintf("Results for %s", style.Fg(color.Purple)(q))
	return b.setVisible(results)
}

// loadHistory fills the history list with the remembered queries, most recent first.
func (b *statefulBubble) loadHistory() tea.Cmd {
	return b.historyC.SetItems(lo.Map(query.Recent(), func(q string, _ int) list.Item {
		return &listItem{internal: q}
	}))
}

// loadFilterEntries fills the filter list with every artist and category of the
// catalog, marking the ones already selected.
func (b *statefulBubble) loadFilterEntries() tea.Cmd {
	var items []list.Item

	for _, author := range catalog.Authors(b.items) {
		items = append(items, &listItem{
			internal: &filterEntry{kind: "artist", value: author},
			marked:   lo.Contains(b.filters.Artists, author),
		})
	}

	for _, category := range catalog.Categories(b.items) {
		items = append(items, &listItem{
			internal: &filterEntry{kind: "category", value: category},
			marked:   lo.Contains(b.filters.Categories, category),
		})
	}

	return b.filterC.SetItems(items)
}

// loadRelated fills the detail view's recommendation list.
func (b *statefulBubble) loadRelated(item *catalog.Item) tea.Cmd {
	related := catalog.Related(b.items, item, 10)
	return b.relatedC.SetItems(lo.Map(related, func(r *catalog.Item, _ int) list.Item {
		return &listItem{internal: r}
	}))
}

// startPlayback assembles the playback session over the current gallery subset
// and enters the player view. The deep link id, when found, overrides the
// starting position.
func (b *statefulBubble) startPlayback(deepLinkID string) tea.Cmd {
	if len(b.visible) == 0 {
		return nil
	}

	if b.session == nil {
		b.backend = player.New()
		b.session = playback.NewSession(b.backend, playback.Options{
			Shuffle:                b.options.Shuffle || viper.GetBool(key.PlayerShuffle),
			Loop:                   b.options.Loop || viper.GetBool(key.PlayerLoop),
			ExcludeCurrentOnRefill: viper.GetBool(key.PlayerShuffleExcludeCurrent),
			Volume:                 float64(viper.GetInt(key.PlayerVolume)) / 100,
		})

		b.backend.OnEvent(b.session.Transport().HandleEvent)

		b.router = playback.NewShortcutRouter(b.session, func() {
			controls := b.session.Controls()
			controls.SetFullscreen(!controls.Fullscreen())
		})

		b.session.OnItemChanged(func(item *catalog.Item) {
			if item != nil {
				b.backend.SetTitle(item.DisplayName())
			}
			if b.companion != nil {
				b.companion.ItemChanged(item)
			}
		})

		b.session.Controls().PointerEntered()
	}

	b.lastPlaying = false
	b.session.SetItems(b.visible, deepLinkID)
	b.newState(playerState)

	return b.playerTick()
}

// stopPlayback tears the session down, killing the backend process. The
// companion rail goes with it.
func (b *statefulBubble) stopPlayback() {
	if b.companion != nil {
		if err := b.companion.Session().Close(); err != nil {
			log.Warnf("close music rail: %v", err)
		}
		b.companion = nil
	}

	if b.session == nil {
		return
	}

	if err := b.session.Close(); err != nil {
		log.Warnf("close session: %v", err)
	}

	b.session = nil
	b.backend = nil
	b.router = nil
}

// playerTick schedules the next player view refresh.
func (b *statefulBubble) playerTick() tea.Cmd {
	return tea.Tick(playerTickInterval, func(t time.Time) tea.Msg {
		return playerTickMsg(t)
	})
}

// syncControls reconciles the controls machine with play/pause transitions
// observed since the last tick.
func (b *statefulBubble) syncControls() {
	if b.session == nil {
		return
	}

	playing := b.session.Transport().State().Playing
	if playing != b.lastPlaying {
		b.session.Controls().PlaybackStateChanged(playing)
		b.lastPlaying = playing
	}
}

// toggleMusicRail starts or stops the companion audio session fed by the
// configured music catalog.
func (b *statefulBubble) toggleMusicRail() tea.Cmd {
	if b.companion != nil {
		audio := b.companion.Session()
		if err := audio.Close(); err != nil {
			log.Warnf("close music rail: %v", err)
		}
		b.companion = nil
		return nil
	}

	url := viper.GetString(key.CatalogMusicURL)
	if url == "" {
		return nil
	}

	return func() tea.Msg {
		tracks, err := catalog.Fetch(url)
		if err != nil {
			log.Warnf("music catalog: %v", err)
			return fmt.Sprintf("Music rail unavailable: %v", err)
		}

		if len(tracks) == 0 {
			return "Music catalog is empty"
		}

		backend := player.New()
		audio := playback.NewSession(backend, playback.Options{
			Loop:   false,
			Volume: float64(viper.GetInt(key.PlayerVolume)) / 100,
		})
		backend.OnEvent(audio.Transport().HandleEvent)
		audio.SetItems(tracks, "")

		b.companion = playback.NewCompanion(audio, viper.GetStringSlice(key.PlayerPauseCategories))
		if b.session != nil {
			b.companion.ItemChanged(b.session.CurrentItem())
		}

		return fmt.Sprintf("Music rail started (%s)", util.Quantify(len(tracks), "track", "tracks"))
	}
}
