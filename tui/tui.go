package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// DeepLinkID starts playback on the matching catalog item as soon as the
	// catalog arrives, skipping the gallery.
	DeepLinkID string

	Shuffle bool
	Loop    bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	bubble.setState(loadingState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()

	// The external player outlives the program loop unless told otherwise.
	bubble.stopPlayback()

	return err
}
