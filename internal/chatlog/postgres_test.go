package chatlog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStoreSave(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	entry := &Entry{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		UserInput: "i need a refund",
		Intent:    "CP001",
		Language:  "english",
		Source:    "rule_strong",
		Response:  "It sounds like you are waiting for a refund.",
	}
	mock.ExpectExec("INSERT INTO chat_logs").
		WithArgs(entry.ID, entry.Timestamp, entry.UserInput, entry.Intent,
			entry.Language, entry.Source, entry.Response, entry.Feedback).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresStore(mock)
	require.NoError(t, store.Save(context.Background(), entry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSaveFillsDefaults(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO chat_logs").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "hello", "GREET001", "", "", "", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresStore(mock)
	entry := &Entry{UserInput: "hello", Intent: "GREET001"}
	require.NoError(t, store.Save(context.Background(), entry))
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "created_at", "user_input", "detected_intent",
		"language", "source", "response_given", "feedback",
	}).
		AddRow(uuid.New(), now, "what is cricket", "IRRELEVANT", "english", "filter", "Let's stay on legal topics.", (*string)(nil)).
		AddRow(uuid.New(), now.Add(-time.Minute), "i need a refund", "CP001", "english", "rule_strong", "It sounds like...", (*string)(nil))

	mock.ExpectQuery("SELECT id, created_at, user_input").
		WithArgs(2).
		WillReturnRows(rows)

	store := NewPostgresStore(mock)
	entries, err := store.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "IRRELEVANT", entries[0].Intent)
	assert.Equal(t, "CP001", entries[1].Intent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSummarize(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(pgxmock.NewRows([]string{"count", "today"}).AddRow(int64(12), int64(3)))
	mock.ExpectQuery("SELECT detected_intent, count").
		WillReturnRows(pgxmock.NewRows([]string{"detected_intent", "count"}).
			AddRow("CP001", int64(7)).
			AddRow("UNKNOWN001", int64(5)))

	store := NewPostgresStore(mock)
	summary, err := store.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "postgres", summary.Backend)
	assert.Equal(t, int64(12), summary.Total)
	assert.Equal(t, int64(3), summary.Today)
	assert.Equal(t, int64(7), summary.Intents["CP001"])
	assert.Equal(t, int64(5), summary.Intents["UNKNOWN001"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSaveError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO chat_logs").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(assert.AnError)

	store := NewPostgresStore(mock)
	err = store.Save(context.Background(), &Entry{UserInput: "x", Intent: "CP001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
}
