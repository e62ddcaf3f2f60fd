package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/domain"
	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/nlp"
)

const (
	promptReply   = "Please type a question about a college event."
	greetingReply = "Hi! Ask me about college events — try 'when is the tech fest?' or 'how to register for hackathon?'"
	notFoundReply = "I couldn't find that event. Try including the event name (e.g., 'tech fest', 'hackathon')."
	noUpcoming    = "There are no upcoming events right now. Please check back later."

	organizerFallback = "the organizing team"
	linkFallback      = "Registration link will be announced soon."
)

const displayDateLayout = "02 Jan 2006"

// fmtDatetime renders the event date as "02 Jan 2006", falling back to the
// raw stored string when it does not parse, with the free-form time appended
// when present.
func fmtDatetime(ev domain.Event) string {
	d := ev.Date
	if parsed, ok := ev.ParsedDate(); ok {
		d = parsed.Format(displayDateLayout)
	}
	if ev.Time == "" {
		return d
	}
	return d + " at " + ev.Time
}

func (s *ChatService) replyIntent(intent nlp.Intent, ev domain.Event) string {
	switch intent {
	case nlp.IntentWhen:
		return replyWhen(ev)
	case nlp.IntentWhere:
		return replyWhere(ev)
	case nlp.IntentRegister:
		return replyRegister(ev)
	case nlp.IntentWho:
		return replyWho(ev)
	case nlp.IntentWhat:
		return replyWhat(ev)
	}
	return s.replyCard(ev)
}

func replyWhen(ev domain.Event) string {
	return fmt.Sprintf("📅 %s is scheduled on %s.", ev.Title, fmtDatetime(ev))
}

func replyWhere(ev domain.Event) string {
	return fmt.Sprintf("📍 Venue: %s (for %s).", ev.Location, ev.Title)
}

func replyRegister(ev domain.Event) string {
	parts := []string{fmt.Sprintf("📝 Registration for %s", ev.Title)}
	if ev.Fee != "" {
		parts = append(parts, "Fee: ₹"+ev.Fee)
	}
	link := ev.RegistrationLink
	if link == "" {
		link = linkFallback
	}
	parts = append(parts, "Link: "+link)
	return strings.Join(parts, " | ")
}

func replyWho(ev domain.Event) string {
	org := ev.Organizer
	if org == "" {
		org = organizerFallback
	}
	return fmt.Sprintf("👥 Organized by %s for %s.", org, ev.Title)
}

func replyWhat(ev domain.Event) string {
	return fmt.Sprintf("ℹ️ %s: %s", ev.Title, ev.Description)
}

// replyCard is the default compact summary when an event matched but no
// recognized intent was asked.
func (s *ChatService) replyCard(ev domain.Event) string {
	link := ev.RegistrationLink
	if link == "" {
		link = "TBA"
	}
	return fmt.Sprintf("%s — %s at %s. Register: %s\nAbout: %s",
		ev.Title, fmtDatetime(ev), ev.Location, link, ev.Description)
}

// replyNext renders the upcoming-events digest: events dated today or later,
// ascending by date, capped at the digest limit. Events with unparseable
// dates are skipped rather than rejected.
func (s *ChatService) replyNext() string {
	today := s.clock.Today()

	type upcoming struct {
		date time.Time
		ev   domain.Event
	}
	var ups []upcoming
	for _, ev := range s.events {
		d, ok := ev.ParsedDate()
		if !ok || d.Before(today) {
			continue
		}
		ups = append(ups, upcoming{date: d, ev: ev})
	}
	sort.SliceStable(ups, func(i, j int) bool { return ups[i].date.Before(ups[j].date) })

	if len(ups) == 0 {
		return noUpcoming
	}
	if len(ups) > s.digestLimit {
		ups = ups[:s.digestLimit]
	}

	lines := []string{"🗓️ Upcoming events:"}
	for _, u := range ups {
		lines = append(lines, fmt.Sprintf("• %s — %s at %s — %s",
			u.ev.Title, u.date.Format(displayDateLayout), u.ev.Time, u.ev.Location))
	}
	return strings.Join(lines, "\n")
}
