package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"github.com/vidsan-cli/vidsan/color"
	"github.com/vidsan-cli/vidsan/icon"
	"github.com/vidsan-cli/vidsan/playback"
	"github.com/vidsan-cli/vidsan/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case historyState:
		output = b.viewHistory()
	case browseState:
		output = b.viewBrowse()
	case searchState:
		output = b.viewSearch()
	case filterState:
		output = b.viewFilter()
	case detailState:
		output = b.viewDetail()
	case playerState:
		output = b.viewPlayer()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewHistory() string {
	return listExtraPaddingStyle.Render(b.historyC.View())
}

func (b *statefulBubble) viewBrowse() string {
	return listExtraPaddingStyle.Render(b.galleryC.View())
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Videos"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s (tab to accept)", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewFilter() string {
	return listExtraPaddingStyle.Render(b.filterC.View())
}

func (b *statefulBubble) viewDetail() string {
	item := b.selectedItem
	if item == nil {
		return b.renderLines(true, []string{style.Title("Details")})
	}

	kind := icon.Get(icon.Video)
	if item.HasCategory("music") {
		kind = icon.Get(icon.Audio)
	}

	lines := []string{
		style.Title("Details"),
		"",
		style.Truncate(b.width)(kind + " " + style.Fg(color.Purple)(item.DisplayName())),
	}

	if item.Author != "" {
		lines = append(lines, style.Truncate(b.width)("by "+style.Fg(style.AccentColor)(item.Author)))
	}

	if len(item.Categories) > 0 {
		lines = append(lines, style.Truncate(b.width)(style.Faint(strings.Join(item.Categories, " • "))))
	}

	if item.HasSource() {
		lines = append(lines, style.Truncate(b.width)(style.Faint(icon.Get(icon.Link)+" "+item.ResolveSource())))
	}

	lines = append(lines, "", b.relatedC.View())

	return b.renderLines(false, lines)
}

func (b *statefulBubble) viewPlayer() string {
	if b.session == nil {
		return b.renderLines(true, []string{style.Title("Now Playing")})
	}

	transport := b.session.Transport()
	current := transport.State()
	queue := b.session.Queue()

	var title string
	if item := b.session.CurrentItem(); item != nil {
		title = item.DisplayName()
	}

	position := fmt.Sprintf("%d/%d", queue.Current()+1, queue.Len())

	lines := []string{
		style.Title("Now Playing") + " " + style.Faint(position),
		"",
		style.Truncate(b.width)(icon.Get(icon.Play) + " " + style.Fg(color.Purple)(title)),
		"",
		b.progressC.ViewAs(transport.Progress()),
		style.Faint(fmt.Sprintf("%s / %s", formatPlaybackTime(current.CurrentTime), formatPlaybackTime(current.Duration))),
		"",
	}

	if b.session.Controls().Visible() {
		lines = append(lines, b.renderControlsLine(current, queue.Mode(), transport.LoopSingle()))
	} else {
		lines = append(lines, style.Faint("press any key to show controls"))
	}

	if b.companion != nil {
		lines = append(lines, "", b.renderMusicRailLine())
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) renderControlsLine(state playback.State, mode playback.Mode, loopSingle bool) string {
	var segments []string

	if state.Playing {
		segments = append(segments, icon.Get(icon.Pause)+" playing")
	} else {
		segments = append(segments, icon.Get(icon.Play)+" paused")
	}

	if state.Muted {
		segments = append(segments, icon.Get(icon.VolumeMuted)+" muted")
	} else {
		segments = append(segments, fmt.Sprintf("%s %d%%", icon.Get(icon.VolumeHigh), int(state.Volume*100+0.5)))
	}

	if mode == playback.Shuffled {
		segments = append(segments, icon.Get(icon.Shuffle)+" shuffle")
	}

	if loopSingle {
		segments = append(segments, icon.Get(icon.Loop)+" loop")
	}

	if b.session.Controls().Fullscreen() {
		segments = append(segments, "fullscreen")
	}

	return style.Truncate(b.width)(strings.Join(segments, "  "))
}

func (b *statefulBubble) renderMusicRailLine() string {
	audio := b.companion.Session()

	var title string
	if item := audio.CurrentItem(); item != nil {
		title = item.DisplayName()
	}

	status := "playing"
	if b.companion.Suppressed() {
		status = "paused for this video"
	} else if !audio.Transport().State().Playing {
		status = "paused"
	}

	return style.Truncate(b.width)(icon.Get(icon.Audio) + " " + title + " " + style.Faint("("+status+")"))
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Critical Failure: %v", b.lastError.Error()))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

func formatPlaybackTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, total%3600/60, total%60)
	}

	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
