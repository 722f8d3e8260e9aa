package filters

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOffensive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"english insult", "you are an idiot", true},
		{"tanglish profanity", "poda loosu", true},
		{"case insensitive", "SHUT UP", true},
		{"clean legal query", "I never got my refund", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOffensive(tt.input))
		})
	}
}

func TestIsIrrelevant(t *testing.T) {
	assert.True(t, IsIrrelevant("what is cricket"))
	assert.True(t, IsIrrelevant("tell me about the WEATHER today"))
	assert.False(t, IsIrrelevant("someone hacked my account"))
}

func TestMatchGeneral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		category string
		matched  bool
	}{
		{"how are you", "hi, how are you?", "general_howru", true},
		{"identity", "who are you", "general_identity", true},
		{"tamil identity", "நீ யாரு", "general_tamil_identity", true},
		{"thanks", "thank you so much", "general_thanks", true},
		{"capability", "what can you do", "general_capability", true},
		{"tamil casual", "saaptiya", "general_tamil_casual", true},
		{"tamil request exact", "in tamil", "tamil_request", true},
		{"tamil request not substring", "complaint in tamil nadu court", "", false},
		{"legal query passes through", "I never got my refund", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchGeneral(tt.input)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.category, got)
			}
		})
	}
}

// First declared phrase wins: "enna pandra" is declared under
// general_tamil_howru before any later category could claim it.
func TestMatchGeneralFirstInsertedWins(t *testing.T) {
	got, ok := MatchGeneral("enna pandra")
	require.True(t, ok)
	assert.Equal(t, "general_tamil_howru", got)
}

func TestChainOrder(t *testing.T) {
	chain := NewChain(rand.New(rand.NewSource(1)))

	// Offensive wins over general even when both match.
	res, ok := chain.Apply("poda loosu, how are you")
	require.True(t, ok)
	assert.Equal(t, TagOffensive, res.Tag)

	// General wins over irrelevant.
	res, ok = chain.Apply("how are you, any movie tips")
	require.True(t, ok)
	assert.Equal(t, TagGeneral, res.Tag)
	assert.Equal(t, "general_howru", res.Category)

	res, ok = chain.Apply("what is cricket")
	require.True(t, ok)
	assert.Equal(t, TagIrrelevant, res.Tag)

	_, ok = chain.Apply("someone hacked my account")
	assert.False(t, ok)
}

func TestChainSeededResponsesDeterministic(t *testing.T) {
	a := NewChain(rand.New(rand.NewSource(7)))
	b := NewChain(rand.New(rand.NewSource(7)))
	resA, okA := a.Apply("poda loosu")
	resB, okB := b.Apply("poda loosu")
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, resA.Response, resB.Response)
	assert.NotEmpty(t, resA.Response)
}

func TestGeneralResponsePoolsExist(t *testing.T) {
	seen := map[string]struct{}{}
	for _, p := range generalPatterns {
		seen[p.Category] = struct{}{}
	}
	seen[categoryTamilRequest] = struct{}{}
	for category := range seen {
		assert.NotEmpty(t, generalResponses[category], "category %s has no response pool", category)
	}
}
