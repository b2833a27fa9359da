package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vidsan-cli/vidsan/constant"
	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/playback"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV drives an mpv process through its JSON-IPC protocol. The first Load
// spawns the process; later loads replace the file in the running instance.
// Observed property changes stream back through the OnEvent handler.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	listener   *EventListener
	handler    func(playback.Event, any)
	title      string
	started    bool
	mu         sync.Mutex // protects socket writes
}

// NewMPV creates an mpv backend without starting the process.
func NewMPV() *MPV {
	return &MPV{
		exited: make(chan struct{}),
	}
}

// OnEvent registers the property-change sink. Must be called before Load.
func (m *MPV) OnEvent(handler func(playback.Event, any)) {
	m.handler = handler
}

// SetTitle sets the window title applied to subsequently loaded media.
func (m *MPV) SetTitle(title string) {
	m.title = sanitizeTitle(title)
}

// Load binds mpv to a new source, spawning the process on first use.
func (m *MPV) Load(rawURL string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if !m.started {
		return m.spawn(target)
	}

	if m.title != "" {
		_ = m.setProperty("force-media-title", m.title)
	}

	_, err = m.sendCommand([]interface{}{"loadfile", target, "replace"})
	return err
}

// spawn starts the mpv process pointed at target and waits for its IPC socket.
func (m *MPV) spawn(target string) error {
	// Random socket name under os.TempDir() for cross-platform support
	// (macOS $TMPDIR is /var/folders/... not /tmp/).
	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(os.TempDir(), fmt.Sprintf("%s-%x.sock", constant.Vidsan, randomBytes))
	}

	// Pass only the socket, title, and target. No --vo, --profile or --hwdec;
	// the user's mpv.conf stays in charge of rendering.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--force-window=yes",
		"--idle=yes",
	}

	if m.title != "" {
		args = append(args,
			fmt.Sprintf("--force-media-title=%s", m.title),
			// Some mpv builds only respect --title.
			fmt.Sprintf("--title=%s", m.title),
		)
	}

	args = append(args, target)

	m.cmd = exec.Command("mpv", args...)

	// Detach from the parent process group so a killed shell cannot take
	// the player down with it.
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	// Reap the process to prevent zombies.
	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.started = true

	m.listener = NewEventListener(m.socketPath, m.dispatch)
	if err := m.listener.Start(); err != nil {
		log.Warnf("mpv event listener: %v", err)
	}

	return nil
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// dispatch forwards an observed property change to the registered sink.
func (m *MPV) dispatch(property string, data any) {
	if m.handler == nil {
		return
	}

	switch event := playback.Event(property); event {
	case playback.EventTimeUpdate, playback.EventDuration,
		playback.EventPause, playback.EventEnded:
		m.handler(event, data)
	}
}

// Play resumes playback.
func (m *MPV) Play() error {
	return m.setProperty("pause", false)
}

// Pause suspends playback.
func (m *MPV) Pause() error {
	return m.setProperty("pause", true)
}

// SeekAbsolute moves playback to the given absolute position in seconds.
func (m *MPV) SeekAbsolute(seconds float64) error {
	_, err := m.sendCommand([]interface{}{"seek", seconds, "absolute"})
	return err
}

// SetVolume sets the output level. mpv's volume scale is 0-100.
func (m *MPV) SetVolume(level float64) error {
	return m.setProperty("volume", level*100)
}

// SetMuted sets the mute flag without touching the volume level.
func (m *MPV) SetMuted(muted bool) error {
	return m.setProperty("mute", muted)
}

// SetLoop makes mpv repeat the current file indefinitely on end.
func (m *MPV) SetLoop(enabled bool) error {
	value := "no"
	if enabled {
		value = "inf"
	}
	return m.setProperty("loop-file", value)
}

// IsRunning reports whether mpv is alive and answering IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]interface{}{"get_property", "pid"})
	return err == nil
}

// Wait returns a channel closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

// Close stops the event listener, quits mpv, and removes the socket file.
// A graceful quit gets three seconds before the process group is killed.
func (m *MPV) Close() error {
	if m.listener != nil {
		m.listener.Stop()
	}

	if m.socketPath == "" {
		return nil
	}

	_, _ = m.sendCommand([]interface{}{"quit"})

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)

	return nil
}

// setProperty issues a set_property command over IPC.
func (m *MPV) setProperty(property string, value interface{}) error {
	_, err := m.sendCommand([]interface{}{"set_property", property, value})
	return err
}

// sanitizeMediaTarget validates that a target is safe to hand to mpv.
// Catalog data is remote and untrusted; a crafted entry must not be able to
// smuggle flags or non-media schemes into the argument list.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	// Treat as local file path.
	return filepath.Clean(l), nil
}

// sanitizeTitle strips characters that would break the IPC line protocol.
func sanitizeTitle(title string) string {
	t := strings.ReplaceAll(title, "\n", " ")
	t = strings.ReplaceAll(t, "\r", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	t = strings.ReplaceAll(t, "\x00", "")
	return strings.TrimSpace(t)
}
