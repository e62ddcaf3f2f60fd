package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/domain"
)

type stubLister struct {
	events []domain.Event
}

func (s *stubLister) Events() []domain.Event {
	return s.events
}

func TestHandleListEvents(t *testing.T) {
	t.Parallel()

	lister := &stubLister{events: []domain.Event{
		{
			Title:       "TechNova 2026",
			Description: "Tech fest",
			Date:        "2026-09-18",
			Time:        "10:00 AM",
			Location:    "Main Auditorium",
			Fee:         "150",
			Tags:        []string{"tech"},
		},
		{
			Title:       "Cultural Night",
			Description: "Performances",
			Date:        "2026-09-30",
			Location:    "Open Air Theatre",
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()

	HandleListEvents(lister).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []eventResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp))
	}
	if resp[0].Title != "TechNova 2026" || resp[1].Title != "Cultural Night" {
		t.Fatalf("expected original order, got %q then %q", resp[0].Title, resp[1].Title)
	}
	if resp[1].Tags == nil {
		t.Fatalf("expected empty tags to render as [], got null")
	}
}

func TestHandleListEvents_RejectsPost(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	rec := httptest.NewRecorder()

	HandleListEvents(&stubLister{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
