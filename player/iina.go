package player

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/vidsan-cli/vidsan/playback"
)

// errNoIPC marks commands IINA cannot receive: it is launched through
// `open -a` and exposes no IPC socket, so everything past Load is manual.
var errNoIPC = fmt.Errorf("iina: no IPC channel, control it from its own window")

// IINA launches media in the native IINA app on macOS. It satisfies the
// Backend contract in a degraded way: no event stream, no remote control.
// The transport logs the refusals and keeps its last known state.
type IINA struct {
	cmd    *exec.Cmd
	exited chan struct{}
	title  string
}

// NewIINA creates an IINA backend without launching the app.
func NewIINA() *IINA {
	return &IINA{
		exited: make(chan struct{}),
	}
}

// OnEvent is accepted and ignored; IINA emits no property stream.
func (i *IINA) OnEvent(func(playback.Event, any)) {}

// SetTitle sets the window title applied to subsequently loaded media.
func (i *IINA) SetTitle(title string) {
	i.title = sanitizeTitle(title)
}

// Load opens the target in IINA through the macOS launcher.
func (i *IINA) Load(rawURL string) error {
	if runtime.GOOS != "darwin" {
		return fmt.Errorf("iina is only supported on macOS")
	}

	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{"-a", "IINA"}
	if i.title != "" {
		// IINA forwards mpv options after the --args separator.
		args = append(args, "--args", fmt.Sprintf("--mpv-force-media-title=%s", i.title))
	}
	args = append(args, target)

	i.cmd = exec.Command("open", args...)
	if err := i.cmd.Start(); err != nil {
		return fmt.Errorf("launch iina: %w", err)
	}

	i.exited = make(chan struct{})
	go func() {
		_ = i.cmd.Wait()
		close(i.exited)
	}()

	return nil
}

func (i *IINA) Play() error { return errNoIPC }

func (i *IINA) Pause() error { return errNoIPC }

func (i *IINA) SeekAbsolute(float64) error { return errNoIPC }

func (i *IINA) SetVolume(float64) error { return errNoIPC }

func (i *IINA) SetMuted(bool) error { return errNoIPC }

func (i *IINA) SetLoop(bool) error { return errNoIPC }

// IsRunning reports whether the launcher process is still around. IINA itself
// detaches immediately, so this is only a best-effort signal.
func (i *IINA) IsRunning() bool {
	select {
	case <-i.exited:
		return false
	default:
		return i.cmd != nil
	}
}

// Wait returns a channel closed when the launcher process exits.
func (i *IINA) Wait() <-chan struct{} {
	return i.exited
}

// Close is a no-op; the app owns its own lifecycle once launched.
func (i *IINA) Close() error {
	return nil
}
