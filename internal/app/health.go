package app

import (
	"encoding/json"
	"net/http"

	"github.com/orgball2608/content-scheduler/internal/realtime"
	"github.com/orgball2608/content-scheduler/pkg/logger"
)

type healthResponse struct {
	Status   string         `json:"status"`
	Realtime realtime.State `json:"realtime"`
	Attempts int            `json:"attempts"`
}

func newRouter(log logger.Logger, session realtime.Session) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthCheckHandler(log, session))
	return mux
}

// healthCheckHandler stays 200 while the realtime channel recovers; the calendar
// keeps serving from the last fetched collection.
func healthCheckHandler(log logger.Logger, session realtime.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())

		resp := healthResponse{
			Status:   "ok",
			Realtime: session.State(),
			Attempts: session.Attempts(),
		}
		if resp.Realtime == realtime.StateGivingUp {
			resp.Status = "degraded"
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("Failed to write response", "Error", err)
		}
	}
}
