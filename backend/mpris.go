package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
	"github.com/lapwatch-app/lapwatch/stopwatch"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

const (
	dbusSessionIDPrefix = "/Lapwatch/Session/"
	noTrackObjectPath   = "/org/mpris/MediaPlayer2/TrackList/NoTrack"
)

var (
	_ types.OrgMprisMediaPlayer2Adapter       = (*MPRISHandler)(nil)
	_ types.OrgMprisMediaPlayer2PlayerAdapter = (*MPRISHandler)(nil)
)

var (
	errNotSupported = errors.New("not supported")
)

// MPRISHandler exposes the stopwatch on the D-Bus session bus so that
// desktop media keys and applets can drive it.
// PlayPause maps to start/pause, Stop to reset and Next to lap.
type MPRISHandler struct {
	// Function called if the app is requested to quit through MPRIS.
	// Should *asynchronously* start shutdown and return immediately true if a shutdown will happen.
	OnQuit func() error

	// Function called if the app is requested to bring its UI to the front.
	OnRaise func() error

	connErr    error
	playerName string
	sm         *StopwatchManager
	s          *server.Server
	evt        *events.EventHandler
}

func NewMPRISHandler(playerName string, sm *StopwatchManager) *MPRISHandler {
	m := &MPRISHandler{playerName: playerName, sm: sm, connErr: errors.New("not started")}
	m.s = server.NewServer(playerName, m, m)
	m.evt = events.NewEventHandler(m.s)

	sm.OnStateChange(func(stopwatch.State) {
		if m.connErr == nil {
			m.evt.Player.OnPlayPause()
			m.evt.Player.OnTitle()
			// CanGoNext follows Running
			m.evt.Player.OnOptions()
		}
	})
	sm.OnLap(func(stopwatch.Lap) {
		if m.connErr == nil {
			m.evt.Player.OnTitle()
		}
	})
	sm.OnReset(func() {
		if m.connErr == nil {
			m.evt.Player.OnSeek(0)
		}
	})

	return m
}

// Starts listening for MPRIS events.
func (m *MPRISHandler) Start() {
	m.connErr = nil
	go func() {
		// exits early with err if unable to establish D-Bus connection
		m.connErr = m.s.Listen()
	}()
}

// Stops listening for MPRIS events and releases any D-Bus resources.
func (m *MPRISHandler) Shutdown() {
	if m.connErr == nil {
		m.s.Stop()
		m.connErr = errors.New("stopped")
	}
}

// OrgMprisMediaPlayer2Adapter implementation

func (m *MPRISHandler) Identity() (string, error) {
	return m.playerName, nil
}

func (m *MPRISHandler) CanQuit() (bool, error) {
	return m.OnQuit != nil, nil
}

func (m *MPRISHandler) Quit() error {
	if m.OnQuit != nil {
		return m.OnQuit()
	}
	return errors.New("no quit handler added")
}

func (m *MPRISHandler) CanRaise() (bool, error) {
	return m.OnRaise != nil, nil
}

func (m *MPRISHandler) Raise() error {
	if m.OnRaise != nil {
		return m.OnRaise()
	}
	return errors.New("no raise handler added")
}

func (m *MPRISHandler) HasTrackList() (bool, error) {
	return false, nil
}

func (m *MPRISHandler) SupportedUriSchemes() ([]string, error) {
	return nil, nil
}

func (m *MPRISHandler) SupportedMimeTypes() ([]string, error) {
	return nil, nil
}

// OrgMprisMediaPlayer2PlayerAdapter implementation

// Next records a lap.
func (m *MPRISHandler) Next() error {
	m.sm.Lap()
	return nil
}

func (m *MPRISHandler) Previous() error {
	return errNotSupported
}

func (m *MPRISHandler) Pause() error {
	m.sm.Pause()
	return nil
}

func (m *MPRISHandler) PlayPause() error {
	m.sm.StartPause()
	return nil
}

// Stop resets the stopwatch and clears the lap list.
func (m *MPRISHandler) Stop() error {
	m.sm.Reset()
	return nil
}

func (m *MPRISHandler) Play() error {
	m.sm.Start()
	return nil
}

func (m *MPRISHandler) Seek(offset types.Microseconds) error {
	return errNotSupported
}

func (m *MPRISHandler) SetPosition(trackId string, position types.Microseconds) error {
	return errNotSupported
}

func (m *MPRISHandler) OpenUri(uri string) error {
	return errNotSupported
}

func (m *MPRISHandler) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(m.sm.Snapshot().State)
}

func (m *MPRISHandler) Rate() (float64, error) {
	return 1, nil
}

func (m *MPRISHandler) SetRate(float64) error {
	return errNotSupported
}

func (m *MPRISHandler) Metadata() (types.Metadata, error) {
	return sessionMetadata(m.playerName, m.sm.SessionID(), m.sm.Snapshot()), nil
}

func (m *MPRISHandler) Volume() (float64, error) {
	return 1, nil
}

func (m *MPRISHandler) SetVolume(v float64) error {
	return errNotSupported
}

func (m *MPRISHandler) Position() (int64, error) {
	return m.sm.Snapshot().Elapsed.Microseconds(), nil
}

func (m *MPRISHandler) MinimumRate() (float64, error) {
	return 1, nil
}

func (m *MPRISHandler) MaximumRate() (float64, error) {
	return 1, nil
}

func (m *MPRISHandler) CanGoNext() (bool, error) {
	return m.sm.Snapshot().Running(), nil
}

func (m *MPRISHandler) CanGoPrevious() (bool, error) {
	return false, nil
}

func (m *MPRISHandler) CanPlay() (bool, error) {
	return true, nil
}

func (m *MPRISHandler) CanPause() (bool, error) {
	return true, nil
}

func (m *MPRISHandler) CanSeek() (bool, error) {
	return false, nil
}

func (m *MPRISHandler) CanControl() (bool, error) {
	return true, nil
}

func playbackStatus(s stopwatch.State) (types.PlaybackStatus, error) {
	switch s {
	case stopwatch.Running:
		return types.PlaybackStatusPlaying, nil
	case stopwatch.Paused:
		return types.PlaybackStatusPaused, nil
	case stopwatch.Idle:
		return types.PlaybackStatusStopped, nil
	}
	return "", fmt.Errorf("unknown stopwatch state %d", s)
}

func sessionMetadata(playerName string, session uuid.UUID, snap stopwatch.Snapshot) types.Metadata {
	trackObjPath := noTrackObjectPath
	if session != uuid.Nil {
		trackObjPath = dbusSessionIDPrefix + strings.ReplaceAll(session.String(), "-", "")
	}
	title := playerName
	if lap, ok := snap.LastLap(); ok {
		title = fmt.Sprintf("Lap %d - %s", lap.Number, stopwatch.FormatTime(lap.Time))
	}
	return types.Metadata{
		TrackId: dbus.ObjectPath(trackObjPath),
		Title:   title,
		Artist:  []string{playerName},
	}
}
