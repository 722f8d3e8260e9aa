package chatlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	logListKey      = "chat:logs"
	intentCountsKey = "chat:intent_counts"
	dailyKeyPrefix  = "chat:daily:"
	dailyKeyTTL     = 48 * time.Hour
)

// RedisStore persists entries in a Redis list with counter keys for the
// summary, so Summarize never has to scan the whole list.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed log store.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("chatlog: redis client cannot be nil")
	}
	return &RedisStore{client: client}
}

// Save pushes the serialized entry and bumps the counters in one
// pipeline round trip.
func (s *RedisStore) Save(ctx context.Context, entry *Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("chatlog: failed to marshal entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, logListKey, payload)
	pipe.HIncrBy(ctx, intentCountsKey, entry.Intent, 1)
	day := dailyKey(entry.Timestamp)
	pipe.Incr(ctx, day)
	pipe.Expire(ctx, day, dailyKeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("chatlog: failed to save entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. Entries that no
// longer unmarshal are skipped rather than failing the whole read.
func (s *RedisStore) List(ctx context.Context, limit int) ([]Entry, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}
	raw, err := s.client.LRange(ctx, logListKey, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("chatlog: failed to read log list: %w", err)
	}

	out := make([]Entry, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var e Entry
		if err := json.Unmarshal([]byte(raw[i]), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Summarize reads the counters.
func (s *RedisStore) Summarize(ctx context.Context) (*Summary, error) {
	total, err := s.client.LLen(ctx, logListKey).Result()
	if err != nil {
		return nil, fmt.Errorf("chatlog: failed to count logs: %w", err)
	}

	counts, err := s.client.HGetAll(ctx, intentCountsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("chatlog: failed to read intent counts: %w", err)
	}

	summary := &Summary{
		Backend: "redis",
		Total:   total,
		Intents: make(map[string]int64, len(counts)),
	}
	for intentID, v := range counts {
		var n int64
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			summary.Intents[intentID] = n
		}
	}

	today, err := s.client.Get(ctx, dailyKey(time.Now().UTC())).Int64()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("chatlog: failed to read daily count: %w", err)
	}
	summary.Today = today
	return summary, nil
}

func dailyKey(ts time.Time) string {
	return dailyKeyPrefix + ts.UTC().Format("2006-01-02")
}
