package nlp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Intent is one category of question the bot recognizes.
type Intent string

const (
	IntentWhen     Intent = "when"
	IntentWhere    Intent = "where"
	IntentRegister Intent = "register"
	IntentWhat     Intent = "what"
	IntentWho      Intent = "who"
	IntentNext     Intent = "next"
)

// ReplyOrder is the fixed priority used when a query carries several intents.
// "next" is handled earlier and separately by the chat service.
var ReplyOrder = []Intent{IntentWhen, IntentWhere, IntentRegister, IntentWho, IntentWhat}

// IntentSet is the set of intents detected in one query.
type IntentSet map[Intent]struct{}

func (s IntentSet) Has(i Intent) bool {
	_, ok := s[i]
	return ok
}

// Vocabulary holds the fixed word tables the pipeline runs on: stopwords
// dropped by the tokenizer, per-intent synonym sets, and the canonical
// rewrite table. Immutable after construction.
type Vocabulary struct {
	stopwords map[string]struct{}
	synonyms  map[Intent]map[string]struct{}
	canonical map[string]string
}

var defaultStopwords = []string{
	"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
	"do", "does", "did", "to", "for", "of", "on", "in", "at", "by", "with",
	"from", "and", "or", "as", "about", "into", "over", "after", "before",
	"between", "during", "under", "again", "further", "then", "once", "here",
	"there", "when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "can", "will",
	"just", "don", "should", "now", "i", "you", "he", "she", "it", "we",
	"they", "me", "my", "our", "your", "their", "what", "which", "who",
	"whom", "this", "that", "these", "those", "afterwards", "also",
	"although", "among", "amongst", "am", "aren", "because", "couldn",
	"didn", "down", "hadn", "hasn", "haven", "having", "isn", "let",
	"might", "must", "needn", "ought", "shouldn", "wasn", "weren", "won",
	"wouldn",
}

var defaultSynonyms = map[Intent][]string{
	IntentWhen:     {"when", "date", "time", "schedule", "timing", "day", "today", "tomorrow"},
	IntentWhere:    {"where", "venue", "location", "place", "hall", "room", "auditorium", "block"},
	IntentRegister: {"register", "registration", "apply", "enroll", "signup", "sign-up", "fees", "cost"},
	IntentWhat:     {"what", "info", "details", "about", "describe", "description"},
	IntentWho:      {"who", "speaker", "host", "club", "department", "organizer"},
	IntentNext:     {"next", "upcoming", "soon", "latest", "nearest"},
}

var defaultCanonical = map[string]string{
	"venue": "where", "location": "where", "place": "where", "hall": "where",
	"when": "when", "date": "when", "time": "when", "timing": "when", "schedule": "when",
	"register": "register", "registration": "register", "signup": "register", "fees": "register",
	"speaker": "who", "host": "who", "club": "who", "organizer": "who",
	"about": "what", "details": "what",
	"upcoming": "next", "latest": "next", "soon": "next",
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v, err := build(defaultStopwords, defaultSynonyms, defaultCanonical)
	if err != nil {
		// Built-in tables only reference known intents.
		panic(err)
	}
	return v
}

func build(stopwords []string, synonyms map[Intent][]string, canonical map[string]string) (*Vocabulary, error) {
	v := &Vocabulary{
		stopwords: make(map[string]struct{}, len(stopwords)),
		synonyms:  make(map[Intent]map[string]struct{}, len(synonyms)),
		canonical: make(map[string]string, len(canonical)),
	}
	for _, w := range stopwords {
		v.stopwords[w] = struct{}{}
	}
	for intent, words := range synonyms {
		if !knownIntent(intent) {
			return nil, fmt.Errorf("unknown intent %q in synonym table", intent)
		}
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		v.synonyms[intent] = set
	}
	for word, target := range canonical {
		if !knownIntent(Intent(target)) {
			return nil, fmt.Errorf("canonical entry %q maps to unknown intent %q", word, target)
		}
		v.canonical[word] = target
	}
	return v, nil
}

func knownIntent(i Intent) bool {
	switch i {
	case IntentWhen, IntentWhere, IntentRegister, IntentWhat, IntentWho, IntentNext:
		return true
	}
	return false
}

type vocabFile struct {
	Stopwords []string            `yaml:"stopwords"`
	Synonyms  map[string][]string `yaml:"synonyms"`
	Canonical map[string]string   `yaml:"canonical"`
}

// LoadFile reads a YAML vocabulary override. Sections present in the file
// replace the built-in tables wholesale; missing sections keep the defaults.
func LoadFile(path string) (*Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	var f vocabFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary yaml: %w", err)
	}

	stopwords := defaultStopwords
	if f.Stopwords != nil {
		stopwords = f.Stopwords
	}
	synonyms := defaultSynonyms
	if f.Synonyms != nil {
		synonyms = make(map[Intent][]string, len(f.Synonyms))
		for intent, words := range f.Synonyms {
			synonyms[Intent(intent)] = words
		}
	}
	canonical := defaultCanonical
	if f.Canonical != nil {
		canonical = f.Canonical
	}
	return build(stopwords, synonyms, canonical)
}
