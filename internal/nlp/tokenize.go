package nlp

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9']+`)

// Tokenize lowercases the text, extracts runs of letters, digits and
// apostrophes, and drops stopwords. No stemming, no phrase detection.
func (v *Vocabulary) Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(t)
		if _, stop := v.stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// Normalize rewrites each token through the canonical table and passes
// unmapped tokens through unchanged.
func (v *Vocabulary) Normalize(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if c, ok := v.canonical[t]; ok {
			out[i] = c
		} else {
			out[i] = t
		}
	}
	return out
}
