package api

import (
	"net/http"
	"time"

	"isrevy/internal/domain/model"
)

// participantView mirrors the JSON shape returned by GET /api/v1/participants.
type participantView struct {
	Given           string   `json:"given"`
	Family          string   `json:"family"`
	DisplayName     string   `json:"display_name"`
	Gender          string   `json:"gender,omitempty"`
	Club            string   `json:"club,omitempty"`
	Status          string   `json:"status"`
	Registered      bool     `json:"registered"`
	InExport        bool     `json:"in_export"`
	ParticipantCode string   `json:"participant_code,omitempty"`
	Event           string   `json:"event,omitempty"`
	ElementsFree    []string `json:"elements_free,omitempty"`
	ElementsShort   []string `json:"elements_short,omitempty"`
	MusicFile       string   `json:"music_file,omitempty"`
	MusicSeconds    float64  `json:"music_seconds,omitempty"`
	StartAt         string   `json:"start_at,omitempty"`
}

func viewOfParticipant(p *model.Participant) participantView {
	v := participantView{
		Given:           p.Given(),
		Family:          p.Family(),
		DisplayName:     p.DisplayName(),
		Gender:          p.Gender,
		Club:            p.Club,
		Status:          p.Status.String(),
		Registered:      p.FromRegistration,
		InExport:        p.MatchedInExport,
		ParticipantCode: p.ParticipantCode,
		Event:           p.Event,
		ElementsFree:    p.ElementsFree,
		ElementsShort:   p.ElementsShort,
	}
	if p.Asset != nil {
		v.MusicFile = p.Asset.Filename
		if p.Asset.DurationKnown {
			v.MusicSeconds = p.Asset.Duration.Seconds()
		}
	}
	if !p.StartAt.IsZero() {
		v.StartAt = p.StartAt.Format(time.RFC3339)
	}
	return v
}

// ParticipantsHandler serves the reconciled participant table.
type ParticipantsHandler struct {
	runs RunSource
}

// NewParticipantsHandler creates a new participants handler.
func NewParticipantsHandler(runs RunSource) *ParticipantsHandler {
	return &ParticipantsHandler{runs: runs}
}

// HandleGetParticipants handles GET /api/v1/participants requests.
func (h *ParticipantsHandler) HandleGetParticipants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	run, err := resolveRun(r, h.runs)
	if err != nil {
		writeRunError(w, err)
		return
	}
	views := make([]participantView, 0, len(run.Participants))
	for _, p := range run.Participants {
		views = append(views, viewOfParticipant(p))
	}
	writeJSON(w, http.StatusOK, views)
}
