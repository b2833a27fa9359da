package playback

import (
	"errors"
	"time"
)

// fakeElement records every command it receives and echoes confirmations back
// through the transport's event path, standing in for an asynchronous backend.
type fakeElement struct {
	transport *Transport

	loaded []string
	seeks  []float64
	volume float64
	muted  bool
	loop   bool
	closed bool

	loadErr error
	playErr error
}

func (f *fakeElement) Load(sourceURL string) error {
	f.loaded = append(f.loaded, sourceURL)
	if f.loadErr != nil {
		return f.loadErr
	}
	f.confirm(EventPause, false)
	return nil
}

func (f *fakeElement) Play() error {
	if f.playErr != nil {
		return f.playErr
	}
	f.confirm(EventPause, false)
	return nil
}

func (f *fakeElement) Pause() error {
	f.confirm(EventPause, true)
	return nil
}

func (f *fakeElement) SeekAbsolute(positionSeconds float64) error {
	f.seeks = append(f.seeks, positionSeconds)
	f.confirm(EventTimeUpdate, positionSeconds)
	return nil
}

func (f *fakeElement) SetVolume(level float64) error {
	f.volume = level
	return nil
}

func (f *fakeElement) SetMuted(muted bool) error {
	f.muted = muted
	return nil
}

func (f *fakeElement) SetLoop(enabled bool) error {
	f.loop = enabled
	return nil
}

func (f *fakeElement) Close() error {
	f.closed = true
	return nil
}

func (f *fakeElement) lastSeek() float64 {
	if len(f.seeks) == 0 {
		return -1
	}
	return f.seeks[len(f.seeks)-1]
}

func (f *fakeElement) confirm(event Event, data any) {
	if f.transport != nil {
		f.transport.HandleEvent(event, data)
	}
}

var errBackend = errors.New("backend rejected command")

// manualTimer replaces time.AfterFunc so tests can fire pending callbacks by
// hand instead of sleeping.
type manualTimer struct {
	delay    time.Duration
	callback func()
}

func (m *manualTimer) afterFunc(d time.Duration, fn func()) *time.Timer {
	m.delay = d
	m.callback = fn
	return time.NewTimer(time.Hour)
}

func (m *manualTimer) fire() {
	if m.callback != nil {
		fn := m.callback
		m.callback = nil
		fn()
	}
}
