package api

import "net/http"

// discrepancyView mirrors the JSON shape returned by GET /api/v1/discrepancies.
type discrepancyView struct {
	Kind        string `json:"kind"`
	DisplayName string `json:"display_name"`
	Club        string `json:"club,omitempty"`
	Event       string `json:"event,omitempty"`
}

// DiscrepanciesHandler serves the soft conditions found by reconciliation.
type DiscrepanciesHandler struct {
	runs RunSource
}

// NewDiscrepanciesHandler creates a new discrepancies handler.
func NewDiscrepanciesHandler(runs RunSource) *DiscrepanciesHandler {
	return &DiscrepanciesHandler{runs: runs}
}

// HandleGetDiscrepancies handles GET /api/v1/discrepancies requests.
func (h *DiscrepanciesHandler) HandleGetDiscrepancies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	run, err := resolveRun(r, h.runs)
	if err != nil {
		writeRunError(w, err)
		return
	}
	views := make([]discrepancyView, 0, len(run.Discrepancies))
	for _, d := range run.Discrepancies {
		views = append(views, discrepancyView{
			Kind:        string(d.Kind),
			DisplayName: d.Participant.DisplayName(),
			Club:        d.Participant.Club,
			Event:       d.Participant.Event,
		})
	}
	writeJSON(w, http.StatusOK, views)
}
