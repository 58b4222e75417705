package ipc

import (
	"encoding/json"
	"net/http"
)

// StopwatchHandler receives stopwatch commands. Commands never fail;
// ones that do not apply to the current state are ignored.
type StopwatchHandler interface {
	Start()
	Pause()
	StartPause()
	Lap()
	Reset()
	Status() Status
}

type WindowHandler interface {
	Show()
	Quit()
	ToggleTheme()
}

type serverImpl struct {
	swHandler StopwatchHandler
	wdHandler WindowHandler
}

func NewServer(swHandler StopwatchHandler, wdHandler WindowHandler) *http.Server {
	s := serverImpl{swHandler: swHandler, wdHandler: wdHandler}
	return &http.Server{
		Handler: s.createHandler(),
	}
}

func (s *serverImpl) createHandler() http.Handler {
	m := http.NewServeMux()
	m.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("The given path is not valid"))
	})
	m.HandleFunc(PingPath, s.makeSimpleEndpointHandler(http.MethodGet, func() {}))
	m.HandleFunc(ShowPath, s.makeSimpleEndpointHandler(http.MethodPost, s.wdHandler.Show))
	m.HandleFunc(QuitPath, s.makeSimpleEndpointHandler(http.MethodPost, func() {
		go s.wdHandler.Quit()
	}))
	m.HandleFunc(ToggleThemePath, s.makeSimpleEndpointHandler(http.MethodPost, s.wdHandler.ToggleTheme))
	m.HandleFunc(StartPath, s.makeSimpleEndpointHandler(http.MethodPost, s.swHandler.Start))
	m.HandleFunc(PausePath, s.makeSimpleEndpointHandler(http.MethodPost, s.swHandler.Pause))
	m.HandleFunc(StartPausePath, s.makeSimpleEndpointHandler(http.MethodPost, s.swHandler.StartPause))
	m.HandleFunc(LapPath, s.makeSimpleEndpointHandler(http.MethodPost, s.swHandler.Lap))
	m.HandleFunc(ResetPath, s.makeSimpleEndpointHandler(http.MethodPost, s.swHandler.Reset))
	m.HandleFunc(StatusPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeErr(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
			return
		}
		b, err := json.Marshal(s.swHandler.Status())
		if err != nil {
			s.writeErr(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	})
	return m
}

func (s *serverImpl) makeSimpleEndpointHandler(method string, f func()) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			s.writeErr(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
			return
		}
		f()
		s.writeOK(w)
	}
}

func (s *serverImpl) writeOK(w http.ResponseWriter) (int, error) {
	var r Response
	b, err := json.Marshal(&r)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

func (s *serverImpl) writeErr(w http.ResponseWriter, code int, err error) (int, error) {
	r := Response{Error: err.Error()}
	b, err := json.Marshal(&r)
	if err != nil {
		return 0, err
	}
	w.WriteHeader(code)
	return w.Write(b)
}
