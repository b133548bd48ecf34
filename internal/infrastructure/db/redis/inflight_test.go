package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestGuard(t *testing.T, ttl time.Duration) (*InflightGuard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewInflightGuard(client, ttl), mr
}

func TestInflightGuard_AcquireRelease(t *testing.T) {
	g, mr := newTestGuard(t, time.Minute)
	ctx := context.Background()

	ok, err := g.Acquire(ctx, "a@b.com")
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}
	ok, err = g.Acquire(ctx, "a@b.com")
	if err != nil || ok {
		t.Fatalf("second acquire must fail: ok=%v err=%v", ok, err)
	}
	ok, _ = g.Acquire(ctx, "c@d.com")
	if !ok {
		t.Fatal("other keys must not be blocked")
	}

	keys := mr.Keys()
	for _, k := range keys {
		if !strings.HasPrefix(k, "signup:inflight:") || strings.Contains(k, "@") {
			t.Fatalf("unexpected key %q", k)
		}
	}

	if err := g.Release(ctx, "a@b.com"); err != nil {
		t.Fatalf("release: %v", err)
	}
	ok, _ = g.Acquire(ctx, "a@b.com")
	if !ok {
		t.Fatal("acquire after release must succeed")
	}
}

func TestInflightGuard_Expires(t *testing.T) {
	g, mr := newTestGuard(t, 5*time.Second)
	ctx := context.Background()

	if ok, _ := g.Acquire(ctx, "a@b.com"); !ok {
		t.Fatal("first acquire failed")
	}
	mr.FastForward(6 * time.Second)
	if ok, _ := g.Acquire(ctx, "a@b.com"); !ok {
		t.Fatal("expired slot must be acquirable")
	}
}

func TestInflightGuard_RedisDown(t *testing.T) {
	g, mr := newTestGuard(t, time.Minute)
	mr.Close()

	if _, err := g.Acquire(context.Background(), "a@b.com"); err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	_ = client.Close()

	if _, err := Connect(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without address")
	}
}
