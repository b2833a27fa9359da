package tui

type state int

const (
	loadingState state = iota
	errorState
	historyState
	browseState
	searchState
	filterState
	detailState
	playerState
)
