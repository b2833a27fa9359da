package tui

import (
	"strconv"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"

	"github.com/vidsan-cli/vidsan/catalog"
	"github.com/vidsan-cli/vidsan/open"
	"github.com/vidsan-cli/vidsan/query"
	"github.com/vidsan-cli/vidsan/search"
)

// backendExitMsg arrives when the external player process terminates on its
// own, e.g. the user closing the mpv window.
type backendExitMsg struct{}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process ephemeral UI notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case []*catalog.Item:
		b.items = msg
		b.engine = search.New(msg)
		b.stopLoading()
		cmd = tea.Batch(cmd, b.applyFilters())

		if id := b.options.DeepLinkID; id != "" {
			b.options.DeepLinkID = ""
			b.setState(browseState)
			return b, tea.Batch(cmd, b.startPlayback(id), b.waitForBackendExit())
		}

		b.newState(browseState)
		return b, cmd
	case playerTickMsg:
		if b.state == playerState && b.session != nil {
			b.syncControls()
			return b, tea.Batch(cmd, b.playerTick())
		}
		return b, cmd
	case backendExitMsg:
		if b.session != nil {
			b.stopPlayback()
			b.setState(browseState)
		}
		return b, cmd
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			b.stopPlayback()
			return b, tea.Quit
		}

		// Input guard: ignore non-priority keys during asynchronous operations.
		if b.busy && b.state != playerState && b.state != errorState {
			return b, nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			onListBack := func(l *list.Model) tea.Cmd {
				l.ResetSelected()
				l.ResetFilter()
				return tea.Batch(cmd, l.NewStatusMessage(""))
			}

			switch b.state {
			case searchState:
				b.inputC.SetValue("")
				b.searchSuggestion = mo.None[string]()
			case playerState:
				b.stopPlayback()
				b.setState(browseState)
				return b, cmd
			case historyState:
				cmd = onListBack(&b.historyC)
			case filterState:
				cmd = onListBack(&b.filterC)
			case detailState:
				cmd = onListBack(&b.relatedC)
			}

			b.previousState()
			b.stopLoading()
			return b, cmd
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case historyState:
		return b.updateHistory(msg)
	case browseState:
		return b.updateBrowse(msg)
	case searchState:
		return b.updateSearch(msg)
	case filterState:
		return b.updateFilter(msg)
	case detailState:
		return b.updateDetail(msg)
	case playerState:
		return b.updatePlayer(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.play):
			if item := b.selectedGalleryItem(); item != nil {
				return b, tea.Batch(b.startPlayback(item.ID), b.waitForBackendExit())
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.detail):
			if item := b.selectedGalleryItem(); item != nil {
				b.selectedItem = item
				b.newState(detailState)
				return b, b.loadRelated(item)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.search):
			b.inputC.Focus()
			b.newState(searchState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.filter):
			b.newState(filterState)
			return b, b.loadFilterEntries()
		case bubblesKey.Matches(msg, b.keymap.history):
			b.newState(historyState)
			return b, b.loadHistory()
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if item := b.selectedGalleryItem(); item != nil && item.HasSource() {
				if err := open.Start(item.ResolveSource()); err != nil {
					b.raiseError(err)
				}
			}
			return b, nil
		}
	}

	b.galleryC, cmd = b.galleryC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			cmd = b.performSearch(b.inputC.Value())
			b.newState(browseState)
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.toggleOne):
			if item, ok := b.filterC.SelectedItem().(*listItem); ok {
				if entry, ok := item.internal.(*filterEntry); ok {
					item.toggleMark()
					if entry.kind == "artist" {
						if item.marked {
							b.filters.AddArtist(entry.value)
						} else {
							b.filters.RemoveArtist(entry.value)
						}
					} else {
						if item.marked {
							b.filters.AddCategory(entry.value)
						} else {
							b.filters.RemoveCategory(entry.value)
						}
					}
				}
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.clearSelection):
			b.filters.Clear()
			return b, b.loadFilterEntries()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			cmd = b.applyFilters()
			b.galleryC.Title = "Gallery"
			b.newState(browseState)
			return b, cmd
		}
	}

	b.filterC, cmd = b.filterC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.historyC.SelectedItem().(*listItem); ok {
				if q, ok := item.internal.(string); ok {
					cmd = b.performSearch(q)
					b.newState(browseState)
					return b, cmd
				}
			}
			return b, nil
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.play):
			item := b.selectedItem
			if related := b.selectedRelatedItem(); related != nil {
				item = related
			}
			if item == nil {
				return b, nil
			}

			// The detail view can recommend items outside the active filter
			// subset; widen the queue to the full catalog in that case.
			if catalog.FindByID(b.visible, item.ID) < 0 {
				cmd = b.setVisible(b.items)
			}

			return b, tea.Batch(cmd, b.startPlayback(item.ID), b.waitForBackendExit())
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if related := b.selectedRelatedItem(); related != nil {
				b.selectedItem = related
				return b, b.loadRelated(related)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.selectedItem != nil && b.selectedItem.HasSource() {
				if err := open.Start(b.selectedItem.ResolveSource()); err != nil {
					b.raiseError(err)
				}
			}
			return b, nil
		}
	}

	b.relatedC, cmd = b.relatedC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if b.session == nil {
		return b, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Any key in the player view counts as activity for the auto-hide logic.
		b.session.Controls().PointerMoved()

		switch {
		case bubblesKey.Matches(msg, b.keymap.playPause):
			b.router.Route("space", false)
		case bubblesKey.Matches(msg, b.keymap.mute):
			b.router.Route("m", false)
		case bubblesKey.Matches(msg, b.keymap.fullscreen):
			b.router.Route("f", false)
		case bubblesKey.Matches(msg, b.keymap.seekBack):
			b.session.PressRewind()
		case bubblesKey.Matches(msg, b.keymap.seekForward):
			b.session.PressForward()
		case bubblesKey.Matches(msg, b.keymap.nextItem):
			b.session.Next()
		case bubblesKey.Matches(msg, b.keymap.prevItem):
			b.session.Previous()
		case bubblesKey.Matches(msg, b.keymap.replay):
			b.session.Transport().Restart()
		case bubblesKey.Matches(msg, b.keymap.shuffle):
			b.session.Queue().ToggleMode()
		case bubblesKey.Matches(msg, b.keymap.loop):
			b.session.Transport().SetLoopSingle(!b.session.Transport().LoopSingle())
		case bubblesKey.Matches(msg, b.keymap.volumeUp):
			b.session.Transport().SetVolume(b.session.Transport().State().Volume + 0.05)
		case bubblesKey.Matches(msg, b.keymap.volumeDown):
			b.session.Transport().SetVolume(b.session.Transport().State().Volume - 0.05)
		case bubblesKey.Matches(msg, b.keymap.musicRail):
			return b, b.toggleMusicRail()
		default:
			// Number row scrubs to a fraction of the timeline.
			if digit, err := strconv.Atoi(msg.String()); err == nil {
				controls := b.session.Controls()
				controls.BeginScrub()
				b.session.Transport().SeekTo(float64(digit) / 10)
				controls.EndScrub()
			}
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

// waitForBackendExit resolves once the external player process dies.
func (b *statefulBubble) waitForBackendExit() tea.Cmd {
	backend := b.backend
	if backend == nil {
		return nil
	}

	return func() tea.Msg {
		<-backend.Wait()
		return backendExitMsg{}
	}
}

func (b *statefulBubble) selectedGalleryItem() *catalog.Item {
	item, ok := b.galleryC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	internal, ok := item.internal.(*catalog.Item)
	if !ok {
		return nil
	}

	return internal
}

func (b *statefulBubble) selectedRelatedItem() *catalog.Item {
	item, ok := b.relatedC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	internal, ok := item.internal.(*catalog.Item)
	if !ok {
		return nil
	}

	return internal
}
