// Package filters implements the terminal conversation gates that run
// before any language or intent detection: offensive language, general
// small talk, and clearly off-topic queries. Each gate owns a curated
// phrase list and a canned-response pool.
package filters

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Tag labels which gate matched; it is what the conversation log records
// in place of an intent identifier.
type Tag string

const (
	TagOffensive  Tag = "OFFENSIVE"
	TagGeneral    Tag = "GENERAL"
	TagIrrelevant Tag = "IRRELEVANT"
)

// Result describes a filter hit.
type Result struct {
	Tag      Tag
	Category string // general-conversation category, empty for other gates
	Response string
}

// Chain evaluates the three gates in their fixed order: offensive, then
// general conversation, then irrelevant topics. The first gate that
// matches is terminal; an utterance matching several gates is handled by
// the first one only.
type Chain struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewChain creates a filter chain. The rand source is injected so tests
// can pin response selection; nil seeds from the clock.
func NewChain(rng *rand.Rand) *Chain {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Chain{rng: rng}
}

// Apply runs the gates over the raw input. It returns the hit and true
// when a gate matched, or a zero Result and false when the input should
// continue into the intent pipeline.
func (c *Chain) Apply(text string) (Result, bool) {
	if IsOffensive(text) {
		return Result{Tag: TagOffensive, Response: c.pick(offensiveResponses)}, true
	}
	if category, ok := MatchGeneral(text); ok {
		return Result{Tag: TagGeneral, Category: category, Response: c.pick(generalResponses[category])}, true
	}
	if IsIrrelevant(text) {
		return Result{Tag: TagIrrelevant, Response: c.pick(irrelevantResponses)}, true
	}
	return Result{}, false
}

func (c *Chain) pick(pool []string) string {
	if len(pool) == 0 {
		return "I'm here to help with legal awareness. Please describe your concern!"
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return pool[c.rng.Intn(len(pool))]
}

// IsOffensive reports whether the text contains a curated offensive
// word or phrase as a substring of the lowercased input.
func IsOffensive(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range offensiveWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// IsIrrelevant reports whether the text mentions a clearly off-topic
// subject (weather, entertainment, politics, games and so on).
func IsIrrelevant(text string) bool {
	lower := strings.ToLower(text)
	for _, topic := range irrelevantTopics {
		if strings.Contains(lower, topic) {
			return true
		}
	}
	return false
}
