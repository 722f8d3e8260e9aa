package intent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTamilCatalogValidation(t *testing.T) {
	primary := newTestCatalog(t)

	tests := []struct {
		name    string
		intents []*TamilIntent
		wantErr string
	}{
		{
			name: "unknown primary id",
			intents: []*TamilIntent{
				{ID: "ZZ999", Response: "?"},
				{ID: UnknownIntentID, Response: "?"},
			},
			wantErr: `references unknown intent "ZZ999"`,
		},
		{
			name: "duplicate id",
			intents: []*TamilIntent{
				{ID: "CP001", Response: "a"},
				{ID: "CP001", Response: "b"},
				{ID: UnknownIntentID, Response: "?"},
			},
			wantErr: "duplicate tamil intent_id",
		},
		{
			name: "empty id",
			intents: []*TamilIntent{
				{ID: "", Response: "a"},
			},
			wantErr: "empty intent_id",
		},
		{
			name: "missing unknown response",
			intents: []*TamilIntent{
				{ID: "CP001", Response: "a"},
			},
			wantErr: "missing a response for " + UnknownIntentID,
		},
		{
			name: "unknown entry with empty response",
			intents: []*TamilIntent{
				{ID: UnknownIntentID},
			},
			wantErr: "missing a response for " + UnknownIntentID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTamilCatalog(tt.intents, primary)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := NewTamilCatalog([]*TamilIntent{{ID: UnknownIntentID, Response: "?"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary catalog required")
}

func TestTamilCatalogMatch(t *testing.T) {
	primary := newTestCatalog(t)
	tamil := newTestTamilCatalog(t, primary)

	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{
			name:   "tamil script keyword",
			input:  "என் கணக்கு திறக்க முடியவில்லை",
			wantID: "IT004",
			wantOK: true,
		},
		{
			name:   "tanglish keyword phrase",
			input:  "panam thirumba kudukala enna seiyanum",
			wantID: "CP001",
			wantOK: true,
		},
		{
			name:   "case-insensitive tanglish",
			input:  "Instagram account HACK AANA",
			wantID: "IT004",
			wantOK: true,
		},
		{
			name:   "no curated keyword",
			input:  "enakku advice venum",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tamil.Match(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestTamilCatalogMatchFirstWins(t *testing.T) {
	primary := newTestCatalog(t)
	tamil, err := NewTamilCatalog([]*TamilIntent{
		{ID: "CP001", TanglishKeywords: []string{"panam"}, Response: "a"},
		{ID: "IT001", TanglishKeywords: []string{"panam pochu"}, Response: "b"},
		{ID: UnknownIntentID, Response: "?"},
	}, primary)
	require.NoError(t, err)

	// Both entries match; the earlier catalog entry is kept.
	id, ok := tamil.Match("panam pochu")
	require.True(t, ok)
	assert.Equal(t, "CP001", id)
}

func TestTamilCatalogResponse(t *testing.T) {
	primary := newTestCatalog(t)
	tamil := newTestTamilCatalog(t, primary)

	assert.Contains(t, tamil.Response("IT004"), "hack")
	// Intents without a curated Tamil body reuse the unknown response.
	unknownBody := tamil.Response(UnknownIntentID)
	assert.NotEmpty(t, unknownBody)
	assert.Equal(t, unknownBody, tamil.Response("BNS002"))
	assert.Equal(t, unknownBody, tamil.Response("NOPE999"))
}

func TestLoadTamilCatalog(t *testing.T) {
	primary := newTestCatalog(t)

	payload := `{
		"tamil_intents": [
			{
				"intent_id": "CP001",
				"tamil_keywords": ["பணம் திரும்ப"],
				"tanglish_keywords": ["panam thirumba"],
				"response": "பணம் திரும்ப கிடைக்கவில்லை என்று தெரிகிறது."
			},
			{
				"intent_id": "UNKNOWN001",
				"response": "மன்னிக்கவும், புரியவில்லை."
			}
		]
	}`
	path := filepath.Join(t.TempDir(), "tamil_intents.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	tamil, err := LoadTamilCatalog(path, primary)
	require.NoError(t, err)

	id, ok := tamil.Match("panam thirumba kudukala")
	require.True(t, ok)
	assert.Equal(t, "CP001", id)

	_, err = LoadTamilCatalog(filepath.Join(t.TempDir(), "missing.json"), primary)
	require.Error(t, err)
}
