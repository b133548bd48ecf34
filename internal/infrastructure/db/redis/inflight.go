package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultInflightTTL = 30 * time.Second

// InflightGuard keeps one signup submission in flight per email across
// every gateway replica sharing the Redis instance.
// Key format: signup:inflight:<sha256(email)>
type InflightGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInflightGuard wraps client. The TTL bounds how long a crashed
// submission can block retries; defaultInflightTTL is used when ttl <= 0.
func NewInflightGuard(client *redis.Client, ttl time.Duration) *InflightGuard {
	if ttl <= 0 {
		ttl = defaultInflightTTL
	}
	return &InflightGuard{client: client, ttl: ttl}
}

// Acquire reports whether the caller now owns the submission slot for key.
func (g *InflightGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(key), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("inflight acquire: %w", err)
	}
	return ok, nil
}

// Release frees the slot for key.
func (g *InflightGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.key(key)).Err(); err != nil {
		return fmt.Errorf("inflight release: %w", err)
	}
	return nil
}

func (g *InflightGuard) key(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "signup:inflight:" + hex.EncodeToString(sum[:])
}
