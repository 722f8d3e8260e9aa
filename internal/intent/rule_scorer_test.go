package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleScorerScore(t *testing.T) {
	scorer := NewRuleScorer(newTestCatalog(t))

	tests := []struct {
		name      string
		input     string
		wantID    string
		wantScore float64
	}{
		{
			name:  "single keyword overlap",
			input: "refund was promised for last week",
			// 1 match over 6 unique tokens.
			wantID:    "CP001",
			wantScore: 1.0 / 6.0,
		},
		{
			name:  "two keyword overlap",
			input: "refund money please sir",
			// 2 matches over 4 unique tokens.
			wantID:    "CP001",
			wantScore: 0.5,
		},
		{
			name:  "multi-word phrase counts once",
			input: "i want my money back",
			// Tokens hit "money"; the phrase "money back" adds one
			// more match, not one per word.
			wantID:    "CP001",
			wantScore: 2.0 / 5.0,
		},
		{
			name:      "duplicate tokens counted once",
			input:     "refund refund refund money",
			wantID:    "CP001",
			wantScore: 1.0,
		},
		{
			name:  "hacking phrase",
			input: "my account hacked yesterday",
			// account + hacked + "account hacked" phrase = 3 of 4.
			wantID:    "IT004",
			wantScore: 0.75,
		},
		{
			name:      "punctuation normalized away",
			input:     "Refund?! Money!!",
			wantID:    "CP001",
			wantScore: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, score := scorer.Score(tt.input)
			require.NotNil(t, in)
			assert.Equal(t, tt.wantID, in.ID)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
		})
	}
}

func TestRuleScorerNoMatch(t *testing.T) {
	scorer := NewRuleScorer(newTestCatalog(t))

	for _, input := range []string{"", "   ", "tell me about cricket scores"} {
		in, score := scorer.Score(input)
		assert.Nil(t, in, "input %q", input)
		assert.Zero(t, score, "input %q", input)
	}
}

func TestRuleScorerSkipsReservedIntents(t *testing.T) {
	catalog, err := NewCatalog([]*Intent{
		{ID: GreetingIntentID, Keywords: []string{"hello"}},
		{ID: UnknownIntentID, Keywords: []string{"hello"}},
		{ID: "CP001", Keywords: []string{"refund"}},
	})
	require.NoError(t, err)
	scorer := NewRuleScorer(catalog)

	in, score := scorer.Score("hello")
	assert.Nil(t, in)
	assert.Zero(t, score)
}

func TestRuleScorerTieBreakKeepsCatalogOrder(t *testing.T) {
	catalog, err := NewCatalog([]*Intent{
		{ID: GreetingIntentID},
		{ID: "CP001", Keywords: []string{"complaint"}},
		{ID: "IT001", Keywords: []string{"complaint"}},
		{ID: UnknownIntentID},
	})
	require.NoError(t, err)
	scorer := NewRuleScorer(catalog)

	in, score := scorer.Score("complaint")
	require.NotNil(t, in)
	assert.Equal(t, "CP001", in.ID)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestNewRuleScorerPanicsOnNilCatalog(t *testing.T) {
	assert.Panics(t, func() { NewRuleScorer(nil) })
}
