package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	// pendingMarker holds a claimed key until the course id is known.
	pendingMarker = "pending"
	// pendingTTL bounds how long a crashed create can hold a key.
	pendingTTL = time.Minute
)

// IdempotencyStore reserves Idempotency-Key values for course creation.
// Key format: idempotency:<owner_id>:<key>, value: "pending" or a course id.
type IdempotencyStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl falls back to 24h.
func NewIdempotencyStore(client redis.Cmdable, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Claim reserves the key with a pending marker via SETNX. When the key is
// already held it returns the recorded course id, or "" while the holder is
// still inserting.
func (s *IdempotencyStore) Claim(ctx context.Context, ownerID, key string) (string, bool, error) {
	k := s.key(ownerID, key)
	ok, err := s.client.SetNX(ctx, k, pendingMarker, pendingTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("idempotency claim: %w", err)
	}
	if ok {
		return "", true, nil
	}

	id, err := s.client.Get(ctx, k).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// Expired or released between SETNX and GET; the caller retries.
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	case id == pendingMarker:
		return "", false, nil
	}
	return id, false, nil
}

// Complete replaces the pending marker with the created course id.
func (s *IdempotencyStore) Complete(ctx context.Context, ownerID, key, courseID string) error {
	if err := s.client.Set(ctx, s.key(ownerID, key), courseID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops a claim whose insert failed.
func (s *IdempotencyStore) Release(ctx context.Context, ownerID, key string) error {
	if err := s.client.Del(ctx, s.key(ownerID, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(ownerID, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", ownerID, key)
}
