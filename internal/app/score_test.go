package app

import (
	"testing"
	"time"

	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/clock"
	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/domain"
	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/nlp"
)

func tokenSet(tokens ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func TestScoreEvent(t *testing.T) {
	t.Parallel()

	past := "2020-01-01"
	upcoming := "2026-09-18"

	tests := []struct {
		name   string
		ev     domain.Event
		tokens map[string]struct{}
		want   int
	}{
		{
			name:   "exact bag member scores two",
			ev:     domain.Event{Title: "Hackathon Finals", Description: "d", Date: past},
			tokens: tokenSet("hackathon"),
			want:   2,
		},
		{
			name:   "substring scores one",
			ev:     domain.Event{Title: "TechNova", Description: "d", Date: past},
			tokens: tokenSet("techno"),
			want:   1,
		},
		{
			name: "substring capped at one point per token",
			// "techn" sits inside both "technova" and "technical".
			ev:     domain.Event{Title: "TechNova", Description: "technical showcase", Date: past},
			tokens: tokenSet("techn"),
			want:   1,
		},
		{
			name:   "short tokens get no substring point",
			ev:     domain.Event{Title: "TechNova", Description: "d", Date: past},
			tokens: tokenSet("tec"),
			want:   0,
		},
		{
			name:   "tag membership counts as exact",
			ev:     domain.Event{Title: "Finals", Description: "d", Date: past, Tags: []string{"hackathon"}},
			tokens: tokenSet("hackathon"),
			want:   2,
		},
		{
			name:   "upcoming date adds recency point",
			ev:     domain.Event{Title: "Hackathon Finals", Description: "d", Date: upcoming},
			tokens: tokenSet("hackathon"),
			want:   3,
		},
		{
			name:   "recency point alone",
			ev:     domain.Event{Title: "Finals", Description: "d", Date: upcoming},
			tokens: tokenSet("pizza"),
			want:   1,
		},
		{
			name:   "unparseable date adds nothing",
			ev:     domain.Event{Title: "Hackathon Finals", Description: "d", Date: "sometime"},
			tokens: tokenSet("hackathon"),
			want:   2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewChatService([]domain.Event{tt.ev}, nlp.Default(), clock.NewFixed(testNow))
			if got := svc.scoreEvent(tt.tokens, 0); got != tt.want {
				t.Fatalf("expected score %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFindBestEvent(t *testing.T) {
	t.Parallel()

	t.Run("highest score wins", func(t *testing.T) {
		t.Parallel()
		svc := newTestService()
		ev, ok := svc.findBestEvent([]string{"hackathon"})
		if !ok {
			t.Fatalf("expected a match")
		}
		if ev.Title != "HackSprint" {
			t.Fatalf("expected HackSprint, got %s", ev.Title)
		}
	})

	t.Run("tie keeps collection order", func(t *testing.T) {
		t.Parallel()
		svc := newTestService()
		// "coding" is tagged on both TechNova and HackSprint.
		ev, ok := svc.findBestEvent([]string{"coding"})
		if !ok {
			t.Fatalf("expected a match")
		}
		if ev.Title != "TechNova 2026" {
			t.Fatalf("expected first event on tie, got %s", ev.Title)
		}
	})

	t.Run("duplicate query tokens count once", func(t *testing.T) {
		t.Parallel()
		past := []domain.Event{
			{Title: "Hackathon Finals", Description: "d", Date: "2020-01-01", Location: "l"},
		}
		svc := NewChatService(past, nlp.Default(), clock.NewFixed(testNow))
		if got := svc.scoreEvent(tokenSet("hackathon", "hackathon"), 0); got != 2 {
			t.Fatalf("expected duplicate tokens to score once, got %d", got)
		}
	})

	t.Run("below threshold reports no match", func(t *testing.T) {
		t.Parallel()
		svc := newTestService()
		if _, ok := svc.findBestEvent([]string{"pizza"}); ok {
			t.Fatalf("expected no match for unrelated token")
		}
	})

	t.Run("empty collection reports no match", func(t *testing.T) {
		t.Parallel()
		svc := NewChatService(nil, nlp.Default(), clock.NewFixed(testNow))
		if _, ok := svc.findBestEvent([]string{"hackathon"}); ok {
			t.Fatalf("expected no match on empty collection")
		}
	})

	t.Run("recency cannot cross the threshold alone", func(t *testing.T) {
		t.Parallel()
		// Every event upcoming, query overlaps nothing: top score is 1.
		svc := NewChatService([]domain.Event{
			{Title: "A", Description: "d", Date: "2026-09-10", Location: "l"},
			{Title: "B", Description: "d", Date: "2026-09-11", Location: "l"},
		}, nlp.Default(), clock.NewFixed(testNow))
		if _, ok := svc.findBestEvent([]string{"unrelated"}); ok {
			t.Fatalf("expected recency boost alone to stay below threshold")
		}
	})
}

func TestMatchBag_LowercasesAllSources(t *testing.T) {
	t.Parallel()

	bag := matchBag(domain.Event{
		Title:       "TechNova 2026",
		Description: "Robotics Expo",
		Tags:        []string{"AI", "Coding"},
	})

	for _, w := range []string{"technova", "2026", "robotics", "expo", "ai", "coding"} {
		if _, ok := bag[w]; !ok {
			t.Fatalf("expected %q in match bag %v", w, bag)
		}
	}
	if _, ok := bag["TechNova"]; ok {
		t.Fatalf("expected bag to be lowercase, got %v", bag)
	}
}

// The service reads the clock through Today, so a fixed clock makes recency
// deterministic regardless of the hour.
func TestScoreEvent_RecencyUsesCalendarDay(t *testing.T) {
	t.Parallel()

	ev := domain.Event{Title: "Finals", Description: "d", Date: "2026-09-01", Location: "l"}
	svc := NewChatService([]domain.Event{ev}, nlp.Default(),
		clock.NewFixed(time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)))

	if got := svc.scoreEvent(tokenSet("finals"), 0); got != 3 {
		t.Fatalf("expected same-day event to keep the recency point, got %d", got)
	}
}
