package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the catalog fetch that every other state depends on.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		b.spinnerC.Tick,
		b.startLoading(),
		b.loadCatalog(),
		b.waitForCatalog(),
	)
}
