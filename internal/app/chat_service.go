package app

import (
	"strings"

	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/clock"
	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/domain"
	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/nlp"
)

// ChatService answers natural-language questions about the loaded events.
// All state is fixed at construction, so Answer is safe for concurrent use.
type ChatService struct {
	events         []domain.Event
	bags           []map[string]struct{}
	vocab          *nlp.Vocabulary
	clock          clock.Clock
	matchThreshold int
	digestLimit    int
}

const (
	defaultMatchThreshold = 2
	defaultDigestLimit    = 3
)

func NewChatService(events []domain.Event, vocab *nlp.Vocabulary, clk clock.Clock, opts ...ChatServiceOption) *ChatService {
	svc := &ChatService{
		events:         events,
		bags:           make([]map[string]struct{}, len(events)),
		vocab:          vocab,
		clock:          clk,
		matchThreshold: defaultMatchThreshold,
		digestLimit:    defaultDigestLimit,
	}
	for i, ev := range events {
		svc.bags[i] = matchBag(ev)
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type ChatServiceOption func(*ChatService)

// WithMatchThreshold overrides the minimum score an event needs to count as
// a confident match.
func WithMatchThreshold(n int) ChatServiceOption {
	return func(s *ChatService) {
		if n > 0 {
			s.matchThreshold = n
		}
	}
}

// WithDigestLimit overrides how many events the upcoming digest lists.
func WithDigestLimit(n int) ChatServiceOption {
	return func(s *ChatService) {
		if n > 0 {
			s.digestLimit = n
		}
	}
}

var greetingWords = []string{"hello", "hi", "hey"}

// Answer produces the reply for one user message. It is total: every input,
// including empty or garbled text, yields a displayable string.
func (s *ChatService) Answer(text string) string {
	if strings.TrimSpace(text) == "" {
		return promptReply
	}

	tokens := s.vocab.Normalize(s.vocab.Tokenize(text))
	intents := s.vocab.DetectIntents(tokens)

	// Small-talk shortcut wins over everything else in the message.
	for _, t := range tokens {
		for _, g := range greetingWords {
			if t == g {
				return greetingReply
			}
		}
	}

	if intents.Has(nlp.IntentNext) {
		return s.replyNext()
	}

	ev, ok := s.findBestEvent(tokens)
	if !ok {
		// Helpful fallback instead of a dead end.
		return notFoundReply + "\n\n" + s.replyNext()
	}

	for _, intent := range nlp.ReplyOrder {
		if intents.Has(intent) {
			return s.replyIntent(intent, ev)
		}
	}

	return s.replyCard(ev)
}

// Events returns a copy of the loaded collection in its original order.
func (s *ChatService) Events() []domain.Event {
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}
