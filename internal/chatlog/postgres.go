package chatlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB abstracts the pgx query interface for testing.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore persists entries in the chat_logs table.
type PostgresStore struct {
	db DB
}

// NewPostgresStore creates a Postgres-backed log store.
func NewPostgresStore(db DB) *PostgresStore {
	if db == nil {
		panic("chatlog: db cannot be nil")
	}
	return &PostgresStore{db: db}
}

// Save inserts one row.
func (s *PostgresStore) Save(ctx context.Context, entry *Entry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO chat_logs (id, created_at, user_input, detected_intent, language, source, response_given, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.Timestamp, entry.UserInput, entry.Intent,
		entry.Language, entry.Source, entry.Response, entry.Feedback,
	)
	if err != nil {
		return fmt.Errorf("chatlog: insert failed: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *PostgresStore) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, created_at, user_input, detected_intent, language, source, response_given, feedback
		FROM chat_logs
		ORDER BY created_at DESC`
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(ctx, query+` LIMIT $1`, limit)
	} else {
		rows, err = s.db.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("chatlog: select failed: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.UserInput, &e.Intent,
			&e.Language, &e.Source, &e.Response, &e.Feedback,
		); err != nil {
			return nil, fmt.Errorf("chatlog: scan failed: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chatlog: rows failed: %w", err)
	}
	return out, nil
}

// Summarize aggregates in SQL.
func (s *PostgresStore) Summarize(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		Backend: "postgres",
		Intents: make(map[string]int64),
	}

	row := s.db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE created_at >= date_trunc('day', now() AT TIME ZONE 'utc'))
		FROM chat_logs`)
	if err := row.Scan(&summary.Total, &summary.Today); err != nil {
		return nil, fmt.Errorf("chatlog: count failed: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT detected_intent, count(*)
		FROM chat_logs
		GROUP BY detected_intent
		ORDER BY count(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("chatlog: intent counts failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			intentID string
			n        int64
		)
		if err := rows.Scan(&intentID, &n); err != nil {
			return nil, fmt.Errorf("chatlog: intent count scan failed: %w", err)
		}
		summary.Intents[intentID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chatlog: intent count rows failed: %w", err)
	}
	return summary, nil
}
