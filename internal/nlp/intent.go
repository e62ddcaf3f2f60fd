package nlp

// DetectIntents returns every intent mentioned in the tokens. An intent is
// present when one of its synonym tokens occurs, or when a token rewrites to
// it through the canonical table. Several intents may be present at once;
// priority between them is the caller's concern.
func (v *Vocabulary) DetectIntents(tokens []string) IntentSet {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t] = struct{}{}
	}

	intents := make(IntentSet)
	for intent, syns := range v.synonyms {
		for s := range syns {
			if _, ok := seen[s]; ok {
				intents[intent] = struct{}{}
				break
			}
		}
	}
	for t := range seen {
		if c, ok := v.canonical[t]; ok {
			intents[Intent(c)] = struct{}{}
		}
	}
	return intents
}
