// Package intent implements the hybrid intent resolution pipeline:
// a keyword rule scorer, a statistical classifier wrapper, the arbiter
// that merges both signals, and a parallel Tamil keyword matcher.
package intent

import (
	"encoding/json"
	"fmt"
	"os"
)

// Reserved identifiers. Every component must resolve unknown references
// to UnknownIntentID; the greeting intent bypasses scoring entirely.
const (
	GreetingIntentID = "GREET001"
	UnknownIntentID  = "UNKNOWN001"
)

// Severity is the urgency tier of a legal situation.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) valid() bool {
	switch s {
	case SeverityNone, SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Templates accepts both a single string and a list in the catalog file.
type Templates []string

// UnmarshalJSON keeps older single-string catalog entries loadable.
func (t *Templates) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*t = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*t = Templates{one}
	return nil
}

// Intent is one immutable catalog entry. Loaded once at startup and
// shared read-only across all requests.
type Intent struct {
	ID               string    `json:"intent_id"`
	Description      string    `json:"intent_description"`
	Keywords         []string  `json:"keywords"`
	Severity         Severity  `json:"severity_level"`
	MappedLaw        string    `json:"mapped_law"`
	Explanation      string    `json:"simplified_explanation"`
	RecommendedSteps []string  `json:"recommended_steps"`
	ResponseTemplates Templates `json:"response_template"`
}

// Catalog is the ordered, validated intent table. Order is significant:
// the rule scorer's tie-break keeps the first intent reaching the
// maximum score, in catalog order.
type Catalog struct {
	intents []*Intent
	byID    map[string]*Intent
}

type catalogFile struct {
	Intents []*Intent `json:"intents"`
}

// LoadCatalog reads and validates the primary intent catalog. Any
// defect here is a fatal startup error, never a per-request one.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("intent: failed to read catalog %s: %w", path, err)
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("intent: failed to parse catalog %s: %w", path, err)
	}
	return NewCatalog(file.Intents)
}

// NewCatalog validates an ordered intent list and builds the lookup.
func NewCatalog(intents []*Intent) (*Catalog, error) {
	if len(intents) == 0 {
		return nil, fmt.Errorf("intent: catalog is empty")
	}
	byID := make(map[string]*Intent, len(intents))
	for _, in := range intents {
		if in.ID == "" {
			return nil, fmt.Errorf("intent: catalog entry with empty intent_id")
		}
		if _, dup := byID[in.ID]; dup {
			return nil, fmt.Errorf("intent: duplicate intent_id %q", in.ID)
		}
		if in.Severity == "" {
			in.Severity = SeverityNone
		}
		if !in.Severity.valid() {
			return nil, fmt.Errorf("intent: %s has invalid severity %q", in.ID, in.Severity)
		}
		byID[in.ID] = in
	}
	for _, reserved := range []string{GreetingIntentID, UnknownIntentID} {
		if _, ok := byID[reserved]; !ok {
			return nil, fmt.Errorf("intent: catalog is missing reserved intent %s", reserved)
		}
	}
	return &Catalog{intents: intents, byID: byID}, nil
}

// Get returns the intent for id.
func (c *Catalog) Get(id string) (*Intent, bool) {
	in, ok := c.byID[id]
	return in, ok
}

// GetOrUnknown returns the intent for id, or the reserved unknown
// intent when the identifier is not in the catalog.
func (c *Catalog) GetOrUnknown(id string) *Intent {
	if in, ok := c.byID[id]; ok {
		return in
	}
	return c.byID[UnknownIntentID]
}

// Unknown returns the reserved fallback intent.
func (c *Catalog) Unknown() *Intent {
	return c.byID[UnknownIntentID]
}

// Greeting returns the reserved greeting intent.
func (c *Catalog) Greeting() *Intent {
	return c.byID[GreetingIntentID]
}

// List returns the intents in catalog order. Callers must not mutate.
func (c *Catalog) List() []*Intent {
	return c.intents
}

// Len returns the number of catalogued intents.
func (c *Catalog) Len() int {
	return len(c.intents)
}
