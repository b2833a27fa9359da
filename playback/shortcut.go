package playback

import "strings"

// ShortcutRouter maps raw key identifiers to transport and fullscreen
// commands. Routing is suppressed entirely while a text input has focus.
type ShortcutRouter struct {
	session *Session

	// requestFullscreen asks the platform layer to toggle fullscreen. The
	// result is observed later through Controls.SetFullscreen, never assumed.
	requestFullscreen func()
}

// NewShortcutRouter wires a router to a session and a fullscreen requester.
func NewShortcutRouter(session *Session, requestFullscreen func()) *ShortcutRouter {
	return &ShortcutRouter{
		session:           session,
		requestFullscreen: requestFullscreen,
	}
}

// Route dispatches a key press and reports whether it was consumed.
func (r *ShortcutRouter) Route(key string, textInputFocused bool) bool {
	if textInputFocused {
		return false
	}

	switch strings.ToLower(key) {
	case " ", "space", "k":
		r.session.Transport().TogglePlayPause()
	case "f":
		if r.requestFullscreen != nil {
			r.requestFullscreen()
		}
	case "m":
		r.session.Transport().ToggleMute()
	case "left", "j":
		r.session.Transport().SeekRelative(-seekStepSeconds)
	case "right", "l":
		r.session.Transport().SeekRelative(seekStepSeconds)
	default:
		return false
	}

	return true
}
