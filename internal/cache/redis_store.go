// Package cache keeps draft documents in Redis so an editing session survives
// an API restart without waiting for the durable sink.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vitrin/api/internal/persist"
)

const DefaultTTL = 7 * 24 * time.Hour

// RedisStore stores one JSON record per document under draft:<id> and tracks
// recently saved documents in a sorted set.
type RedisStore struct {
	client    *redis.Client
	prefix    string
	recentKey string
	ttl       time.Duration
}

// NewRedisStore parses redisURL and verifies the connection.
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisStoreWithClient(client, ttl), nil
}

func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client:    client,
		prefix:    "draft:",
		recentKey: "drafts:recent",
		ttl:       ttl,
	}
}

func (s *RedisStore) key(documentID string) string {
	return s.prefix + documentID
}

func (s *RedisStore) Save(ctx context.Context, rec persist.Record) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	data, err := persist.MarshalRecord(rec)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(rec.DocumentID), data, s.ttl)
	pipe.ZAdd(ctx, s.recentKey, redis.Z{Score: float64(rec.UpdatedAt.Unix()), Member: rec.DocumentID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save draft %s: %w", rec.DocumentID, err)
	}
	return nil
}

// Load returns the cached draft and extends its TTL.
func (s *RedisStore) Load(ctx context.Context, documentID string) (persist.Record, error) {
	data, err := s.client.GetEx(ctx, s.key(documentID), s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return persist.Record{}, persist.ErrNotFound
	}
	if err != nil {
		return persist.Record{}, fmt.Errorf("load draft %s: %w", documentID, err)
	}
	return persist.UnmarshalRecord(data)
}

func (s *RedisStore) Delete(ctx context.Context, documentID string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(documentID))
	pipe.ZRem(ctx, s.recentKey, documentID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete draft %s: %w", documentID, err)
	}
	return nil
}

// Recent lists up to limit document ids, most recently saved first. Ids whose
// draft has expired are pruned from the set, and scanning continues past them
// until limit live ids are found or the set is exhausted.
func (s *RedisStore) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 20
	}
	out := make([]string, 0, limit)
	var start int64
	for len(out) < limit {
		page, err := s.client.ZRevRange(ctx, s.recentKey, start, start+int64(limit)-1).Result()
		if err != nil {
			return nil, fmt.Errorf("list recent drafts: %w", err)
		}
		if len(page) == 0 {
			break
		}

		pipe := s.client.Pipeline()
		exists := make([]*redis.IntCmd, len(page))
		for i, id := range page {
			exists[i] = pipe.Exists(ctx, s.key(id))
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("check drafts: %w", err)
		}

		var stale []any
		for i, id := range page {
			if exists[i].Val() == 0 {
				stale = append(stale, id)
				continue
			}
			if len(out) < limit {
				out = append(out, id)
			}
		}
		if len(stale) > 0 {
			if err := s.client.ZRem(ctx, s.recentKey, stale...).Err(); err != nil {
				return nil, fmt.Errorf("prune expired drafts: %w", err)
			}
		}
		if len(page) < limit {
			break
		}
		// Pruned members no longer occupy ranks, so only live ones are skipped.
		start += int64(len(page) - len(stale))
	}
	return out, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ persist.Store = (*RedisStore)(nil)
