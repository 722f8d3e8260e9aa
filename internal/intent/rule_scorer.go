package intent

import (
	"strings"

	"github.com/aramlabs/aram-assistant/internal/textutil"
)

// RuleScorer computes keyword-overlap scores between an utterance and
// every catalog intent.
type RuleScorer struct {
	catalog *Catalog
}

// NewRuleScorer creates a rule scorer over the given catalog.
func NewRuleScorer(catalog *Catalog) *RuleScorer {
	if catalog == nil {
		panic("intent: catalog cannot be nil")
	}
	return &RuleScorer{catalog: catalog}
}

// Score returns the best-matching intent and its score in [0,1].
//
// For each intent except the reserved greeting and unknown entries, the
// match count is the intersection of the utterance's unique token set
// with the intent's keywords, plus one per multi-word keyword phrase
// appearing as a substring of the normalized text. The score is the
// match count divided by the unique token count. A strictly higher
// score wins; on ties the first intent in catalog order is retained.
// Zero tokens or zero matches yield (nil, 0).
func (s *RuleScorer) Score(text string) (*Intent, float64) {
	userText := textutil.Normalize(text)
	userSet := textutil.TokenSet(text)
	if len(userSet) == 0 {
		return nil, 0.0
	}

	var bestMatch *Intent
	bestScore := 0.0

	for _, in := range s.catalog.List() {
		if in.ID == UnknownIntentID || in.ID == GreetingIntentID {
			continue
		}
		if len(in.Keywords) == 0 {
			continue
		}

		matches := 0
		for _, kw := range in.Keywords {
			if strings.Contains(kw, " ") {
				// Multi-word phrases count once per phrase, not per word.
				if strings.Contains(userText, kw) {
					matches++
				}
				continue
			}
			if _, ok := userSet[kw]; ok {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		score := float64(matches) / float64(len(userSet))
		if score > bestScore {
			bestScore = score
			bestMatch = in
		}
	}

	return bestMatch, bestScore
}
