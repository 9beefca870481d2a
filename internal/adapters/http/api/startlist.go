package api

import (
	"net/http"

	"isrevy/internal/adapters/report"
)

// StartListHandler serves the rendered start list.
type StartListHandler struct {
	runs RunSource
}

// NewStartListHandler creates a new start-list handler.
func NewStartListHandler(runs RunSource) *StartListHandler {
	return &StartListHandler{runs: runs}
}

// HandleGetStartList handles GET / requests with the HTML start list.
func (h *StartListHandler) HandleGetStartList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	run, err := resolveRun(r, h.runs)
	if err != nil {
		writeRunError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderStartListHTML(w, report.StartList{
		Title:         run.Title,
		GeneratedAt:   run.CreatedAt,
		Entries:       run.Schedule,
		Discrepancies: run.Discrepancies,
		Officials:     run.Officials,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed", err)
	}
}
