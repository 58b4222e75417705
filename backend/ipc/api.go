package ipc

const (
	PingPath        = "/ping"
	StartPath       = "/stopwatch/start"
	PausePath       = "/stopwatch/pause"
	StartPausePath  = "/stopwatch/startpause"
	LapPath         = "/stopwatch/lap"
	ResetPath       = "/stopwatch/reset"
	StatusPath      = "/stopwatch/status"
	ToggleThemePath = "/theme/toggle"
	ShowPath        = "/window/show"
	QuitPath        = "/window/quit"
)

type Response struct {
	Error string `json:"error"`
}

type LapStatus struct {
	Number    int    `json:"number"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Formatted string `json:"formatted"`
}

type Status struct {
	State      string      `json:"state"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Formatted  string      `json:"formatted"`
	HasStarted bool        `json:"has_started"`
	Session    string      `json:"session,omitempty"`
	DriftMS    int64       `json:"drift_ms"`
	Laps       []LapStatus `json:"laps"`
}
