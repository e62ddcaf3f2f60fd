package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/domain"
)

// Store reads the event dataset from a JSON file: an array of event objects.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

type eventRecord struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Location         string   `json:"location"`
	Organizer        string   `json:"organizer"`
	Fee              feeValue `json:"fee"`
	RegistrationLink string   `json:"registration_link"`
	Tags             []string `json:"tags"`
}

// feeValue accepts either a JSON number or a string; both render the same way.
type feeValue string

func (f *feeValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = feeValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("fee must be a number or string: %w", err)
	}
	*f = feeValue(n.String())
	return nil
}

// ListEvents decodes and validates the dataset, preserving file order.
func (s *Store) ListEvents(ctx context.Context) ([]domain.Event, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}

	var records []eventRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parse events file: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNoEvents
	}

	events := make([]domain.Event, 0, len(records))
	for i, rec := range records {
		ev := domain.Event{
			Title:            rec.Title,
			Description:      rec.Description,
			Date:             rec.Date,
			Time:             rec.Time,
			Location:         rec.Location,
			Organizer:        rec.Organizer,
			Fee:              string(rec.Fee),
			RegistrationLink: rec.RegistrationLink,
			Tags:             rec.Tags,
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}
