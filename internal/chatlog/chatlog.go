// Package chatlog persists conversation records for the weekly review
// loop. Three backends share one contract: Postgres for deployments
// with a database, Redis for lightweight installs, and an in-memory
// store for tests and local runs.
package chatlog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultResponseMax caps how much of the rendered reply is stored.
// Logs exist to review what users asked, not to archive full replies.
const DefaultResponseMax = 100

// Entry is one logged conversation turn.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserInput string    `json:"user_input"`
	Intent    string    `json:"detected_intent"`
	Language  string    `json:"language,omitempty"`
	Source    string    `json:"source,omitempty"`
	Response  string    `json:"response_given"`
	Feedback  *string   `json:"feedback"`
}

// Summary aggregates the stored conversations.
type Summary struct {
	Backend string           `json:"source"`
	Total   int64            `json:"total"`
	Today   int64            `json:"today"`
	Intents map[string]int64 `json:"intents"`
}

// Store is the persistence contract. Save failures are logged and
// swallowed by callers; a broken log backend must never block a reply.
type Store interface {
	Save(ctx context.Context, entry *Entry) error
	// List returns the most recent entries, newest first. limit <= 0
	// returns everything.
	List(ctx context.Context, limit int) ([]Entry, error)
	Summarize(ctx context.Context) (*Summary, error)
}

// TruncateResponse trims the stored reply to max runes. Rune-safe so a
// Tamil reply is never cut mid-character.
func TruncateResponse(response string, max int) string {
	if max <= 0 {
		max = DefaultResponseMax
	}
	runes := []rune(response)
	if len(runes) <= max {
		return response
	}
	return string(runes[:max])
}

// NewEntry builds a log entry with a fresh id and UTC timestamp,
// truncating the response on the way in.
func NewEntry(userInput, intentID, lang, source, response string, responseMax int) *Entry {
	return &Entry{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		UserInput: userInput,
		Intent:    intentID,
		Language:  lang,
		Source:    source,
		Response:  TruncateResponse(response, responseMax),
	}
}
