package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeRedis implements the commands the store uses; any other call panics
// on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, exp time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = fmt.Sprint(value)
	f.ttls[key] = exp
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = fmt.Sprint(value)
	f.ttls[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestIdempotencyStore_FirstClaimWins(t *testing.T) {
	fake := newFakeRedis()
	store := NewIdempotencyStore(fake, time.Hour)
	ctx := context.Background()

	id, claimed, err := store.Claim(ctx, "owner", "k1")
	if err != nil || !claimed || id != "" {
		t.Fatalf("first claim: got %q, %v, %v", id, claimed, err)
	}
	if fake.data["idempotency:owner:k1"] != pendingMarker || fake.ttls["idempotency:owner:k1"] != pendingTTL {
		t.Fatalf("expected pending marker with short ttl, got %+v %+v", fake.data, fake.ttls)
	}

	// A concurrent retry sees the claim as in flight.
	id, claimed, err = store.Claim(ctx, "owner", "k1")
	if err != nil || claimed || id != "" {
		t.Fatalf("pending claim: got %q, %v, %v", id, claimed, err)
	}
}

func TestIdempotencyStore_CompleteThenReplay(t *testing.T) {
	fake := newFakeRedis()
	store := NewIdempotencyStore(fake, time.Hour)
	ctx := context.Background()

	_, _, _ = store.Claim(ctx, "owner", "k1")
	if err := store.Complete(ctx, "owner", "k1", "course-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if fake.ttls["idempotency:owner:k1"] != time.Hour {
		t.Fatalf("completed key must use the configured ttl, got %v", fake.ttls["idempotency:owner:k1"])
	}

	id, claimed, err := store.Claim(ctx, "owner", "k1")
	if err != nil || claimed || id != "course-1" {
		t.Fatalf("replay: got %q, %v, %v", id, claimed, err)
	}

	// Keys are scoped per owner.
	if _, claimed, _ := store.Claim(ctx, "someone-else", "k1"); !claimed {
		t.Fatal("key leaked across owners")
	}
}

func TestIdempotencyStore_ReleaseAllowsNewClaim(t *testing.T) {
	store := NewIdempotencyStore(newFakeRedis(), time.Hour)
	ctx := context.Background()

	_, _, _ = store.Claim(ctx, "owner", "k1")
	if err := store.Release(ctx, "owner", "k1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, claimed, _ := store.Claim(ctx, "owner", "k1"); !claimed {
		t.Fatal("released key must be claimable again")
	}
}

func TestIdempotencyStore_Errors(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("connection refused")
	store := NewIdempotencyStore(fake, 0)
	ctx := context.Background()

	if _, _, err := store.Claim(ctx, "o", "k"); !errors.Is(err, fake.err) {
		t.Fatalf("expected wrapped claim error, got %v", err)
	}
	if err := store.Complete(ctx, "o", "k", "c"); !errors.Is(err, fake.err) {
		t.Fatalf("expected wrapped complete error, got %v", err)
	}
	if err := store.Release(ctx, "o", "k"); !errors.Is(err, fake.err) {
		t.Fatalf("expected wrapped release error, got %v", err)
	}
	if store.ttl != defaultIdempotencyTTL {
		t.Fatalf("expected default ttl, got %v", store.ttl)
	}
}
