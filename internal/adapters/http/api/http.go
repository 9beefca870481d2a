// Package api serves the results of completed runs over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"isrevy/internal/adapters/repository"
)

// RunSource provides completed runs to the handlers.
type RunSource interface {
	Latest(ctx context.Context) (repository.Run, error)
	Get(ctx context.Context, id string) (repository.Run, error)
}

// Server wires HTTP routes for the read-only API.
type Server struct {
	participantsHandler  *ParticipantsHandler
	discrepanciesHandler *DiscrepanciesHandler
	scheduleHandler      *ScheduleHandler
	startListHandler     *StartListHandler
	healthHandler        *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(runs RunSource) *Server {
	return &Server{
		participantsHandler:  NewParticipantsHandler(runs),
		discrepanciesHandler: NewDiscrepanciesHandler(runs),
		scheduleHandler:      NewScheduleHandler(runs),
		startListHandler:     NewStartListHandler(runs),
		healthHandler:        NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleHealth)
	mux.HandleFunc("/api/v1/participants", MetricsMiddleware(s.participantsHandler.HandleGetParticipants, "participants"))
	mux.HandleFunc("/api/v1/discrepancies", MetricsMiddleware(s.discrepanciesHandler.HandleGetDiscrepancies, "discrepancies"))
	mux.HandleFunc("/api/v1/schedule", MetricsMiddleware(s.scheduleHandler.HandleGetSchedule, "schedule"))
	mux.HandleFunc("/", MetricsMiddleware(s.startListHandler.HandleGetStartList, "startlist"))
}

// resolveRun picks the run named by the request's run query parameter,
// falling back to the most recent one.
func resolveRun(r *http.Request, runs RunSource) (repository.Run, error) {
	if id := r.URL.Query().Get("run"); id != "" {
		return runs.Get(r.Context(), id)
	}
	return runs.Latest(r.Context())
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeRunError maps repository lookup failures to HTTP statuses.
func writeRunError(w http.ResponseWriter, err error) {
	switch {
	case isNoRuns(err):
		writeError(w, http.StatusNotFound, "no_runs", err)
	case isRunNotFound(err):
		writeError(w, http.StatusNotFound, "run_not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
