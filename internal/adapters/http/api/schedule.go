package api

import (
	"net/http"

	"isrevy/internal/domain/schedule"
)

// entryView mirrors the JSON shape returned by GET /api/v1/schedule.
type entryView struct {
	Kind        string `json:"kind"`
	Label       string `json:"label,omitempty"`
	Seq         int    `json:"seq,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Music       string `json:"music,omitempty"`
	Start       string `json:"start"`
	Approximate bool   `json:"approximate,omitempty"`
}

func viewOfEntry(e schedule.Entry) entryView {
	v := entryView{
		Kind:        e.Kind.String(),
		Label:       e.Label,
		Seq:         e.Seq,
		Start:       e.StartClock(),
		Approximate: e.Approximate,
	}
	if e.Participant != nil {
		v.DisplayName = e.Participant.DisplayName()
		if e.Participant.Asset != nil {
			v.Music = e.Participant.Asset.Filename
		}
	}
	return v
}

// ScheduleHandler serves the built timeline.
type ScheduleHandler struct {
	runs RunSource
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(runs RunSource) *ScheduleHandler {
	return &ScheduleHandler{runs: runs}
}

// HandleGetSchedule handles GET /api/v1/schedule requests.
func (h *ScheduleHandler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	run, err := resolveRun(r, h.runs)
	if err != nil {
		writeRunError(w, err)
		return
	}
	views := make([]entryView, 0, len(run.Schedule))
	for _, e := range run.Schedule {
		views = append(views, viewOfEntry(e))
	}
	writeJSON(w, http.StatusOK, views)
}
