package app

import (
	"strings"

	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/domain"
)

// matchBag builds an event's keyword index: title words, description words,
// and tags, all lowercase. Computed once at service construction.
func matchBag(ev domain.Event) map[string]struct{} {
	bag := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(ev.Title)) {
		bag[w] = struct{}{}
	}
	for _, w := range strings.Fields(strings.ToLower(ev.Description)) {
		bag[w] = struct{}{}
	}
	for _, tag := range ev.Tags {
		bag[strings.ToLower(tag)] = struct{}{}
	}
	return bag
}

// scoreEvent scores event i against the distinct query tokens: +2 for an
// exact bag member, else +1 when a token longer than three characters is a
// substring of some bag word (one point at most per token, however many bag
// words contain it), and +1 when the event date parses and is today or
// later. The substring rule is known to reward accidental hits ("fest"
// inside unrelated words); that fuzziness is intentional and pinned by tests.
func (s *ChatService) scoreEvent(tokens map[string]struct{}, i int) int {
	bag := s.bags[i]
	score := 0
	for t := range tokens {
		if _, ok := bag[t]; ok {
			score += 2
			continue
		}
		if len(t) > 3 {
			for w := range bag {
				if strings.Contains(w, t) {
					score++
					break
				}
			}
		}
	}
	if d, ok := s.events[i].ParsedDate(); ok && !d.Before(s.clock.Today()) {
		score++
	}
	return score
}

// findBestEvent picks the highest-scoring event, breaking ties in favor of
// the earliest event in the collection. A top score below the threshold
// reports no match: one incidental word hit must not select an event.
func (s *ChatService) findBestEvent(tokens []string) (domain.Event, bool) {
	if len(s.events) == 0 {
		return domain.Event{}, false
	}

	distinct := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		distinct[t] = struct{}{}
	}

	bestIdx := 0
	bestScore := -1
	for i := range s.events {
		if sc := s.scoreEvent(distinct, i); sc > bestScore {
			bestIdx = i
			bestScore = sc
		}
	}
	if bestScore < s.matchThreshold {
		return domain.Event{}, false
	}
	return s.events[bestIdx], true
}
