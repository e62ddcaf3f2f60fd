package http

import (
	"encoding/json"
	"net/http"

	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/domain"
)

// EventLister exposes the loaded event collection for the read-only listing.
type EventLister interface {
	Events() []domain.Event
}

// HandleListEvents returns an HTTP handler listing the loaded events in
// their original order.
func HandleListEvents(svc EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		events := svc.Events()
		resp := make([]eventResponse, 0, len(events))
		for _, ev := range events {
			tags := ev.Tags
			if tags == nil {
				tags = []string{}
			}
			resp = append(resp, eventResponse{
				Title:            ev.Title,
				Description:      ev.Description,
				Date:             ev.Date,
				Time:             ev.Time,
				Location:         ev.Location,
				Organizer:        ev.Organizer,
				Fee:              ev.Fee,
				RegistrationLink: ev.RegistrationLink,
				Tags:             tags,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type eventResponse struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Date             string   `json:"date"`
	Time             string   `json:"time,omitempty"`
	Location         string   `json:"location"`
	Organizer        string   `json:"organizer,omitempty"`
	Fee              string   `json:"fee,omitempty"`
	RegistrationLink string   `json:"registration_link,omitempty"`
	Tags             []string `json:"tags"`
}
