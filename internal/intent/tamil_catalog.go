package intent

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// TamilIntent carries the Tamil-facing keyword sets and the fully
// pre-written Tamil response body for one intent identifier.
type TamilIntent struct {
	ID               string   `json:"intent_id"`
	TamilKeywords    []string `json:"tamil_keywords"`
	TanglishKeywords []string `json:"tanglish_keywords"`
	Response         string   `json:"response"`
}

// TamilCatalog is the ordered Tamil-facing catalog. It shares intent
// identifiers with the primary catalog but carries its own keyword sets
// and complete Tamil response bodies.
type TamilCatalog struct {
	intents []*TamilIntent
	byID    map[string]*TamilIntent
}

type tamilCatalogFile struct {
	TamilIntents []*TamilIntent `json:"tamil_intents"`
}

// LoadTamilCatalog reads the Tamil catalog and verifies it against the
// primary catalog: every identifier it mentions must exist there, and
// a Tamil body for the reserved unknown intent is mandatory. The two
// catalogs drifting apart is a startup error, not a runtime surprise.
func LoadTamilCatalog(path string, primary *Catalog) (*TamilCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("intent: failed to read tamil catalog %s: %w", path, err)
	}
	var file tamilCatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("intent: failed to parse tamil catalog %s: %w", path, err)
	}
	return NewTamilCatalog(file.TamilIntents, primary)
}

// NewTamilCatalog validates the ordered Tamil intent list.
func NewTamilCatalog(intents []*TamilIntent, primary *Catalog) (*TamilCatalog, error) {
	if primary == nil {
		return nil, fmt.Errorf("intent: primary catalog required to validate tamil catalog")
	}
	byID := make(map[string]*TamilIntent, len(intents))
	for _, in := range intents {
		if in.ID == "" {
			return nil, fmt.Errorf("intent: tamil catalog entry with empty intent_id")
		}
		if _, dup := byID[in.ID]; dup {
			return nil, fmt.Errorf("intent: duplicate tamil intent_id %q", in.ID)
		}
		if _, ok := primary.Get(in.ID); !ok {
			return nil, fmt.Errorf("intent: tamil catalog references unknown intent %q", in.ID)
		}
		byID[in.ID] = in
	}
	unknown, ok := byID[UnknownIntentID]
	if !ok || unknown.Response == "" {
		return nil, fmt.Errorf("intent: tamil catalog is missing a response for %s", UnknownIntentID)
	}
	return &TamilCatalog{intents: intents, byID: byID}, nil
}

// Match scans the Tamil and Tanglish keyword lists in catalog order and
// returns the first intent with any keyword appearing as a substring of
// the lowercased text. First-match, not best-match: this path trades
// recall for precision on curated Tamil keywords.
func (tc *TamilCatalog) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, in := range tc.intents {
		for _, kw := range in.TamilKeywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return in.ID, true
			}
		}
		for _, kw := range in.TanglishKeywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return in.ID, true
			}
		}
	}
	return "", false
}

// Response returns the Tamil body for id, falling back to the reserved
// unknown intent's body.
func (tc *TamilCatalog) Response(id string) string {
	if in, ok := tc.byID[id]; ok && in.Response != "" {
		return in.Response
	}
	return tc.byID[UnknownIntentID].Response
}
