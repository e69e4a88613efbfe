package app

import (
	"encoding/json"
	"net/http"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/metrics"
)

// countdownView is the JSON shape served by /status.
type countdownView struct {
	Name             string    `json:"name"`
	Kind             string    `json:"kind"`
	Mode             string    `json:"mode"`
	PeriodSeconds    int       `json:"periodSeconds"`
	Target           time.Time `json:"target,omitzero"`
	RemainingSeconds int       `json:"remainingSeconds"`
}

// Router serves the watch endpoints: Prometheus metrics, a liveness probe
// and the current countdown states.
func (a *App) Router() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/status", a.serveStatus).Methods(http.MethodGet)
	return r
}

// Handler wraps Router for serving: panics become 500s and any origin may
// read the endpoints, so a local dashboard can poll /status.
func (a *App) Handler() http.Handler {
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet}),
	)
	return cors(gorillaHandlers.RecoveryHandler()(a.Router()))
}

func (a *App) serveStatus(w http.ResponseWriter, _ *http.Request) {
	var out []countdownView
	for _, e := range a.Engines() {
		s := e.Status()
		out = append(out, countdownView{
			Name:             s.Name,
			Kind:             s.Kind.String(),
			Mode:             s.Mode.String(),
			PeriodSeconds:    s.Period,
			Target:           s.Target,
			RemainingSeconds: int(s.Remaining / time.Second),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		logger.Warn("write status response", "error", err)
	}
}
