package guard

import (
	"context"
	"sync"
)

// Local is an in-process submit guard used when no Redis is configured.
type Local struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewLocal() *Local {
	return &Local{keys: make(map[string]struct{})}
}

func (l *Local) Acquire(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.keys[key]; busy {
		return false, nil
	}
	l.keys[key] = struct{}{}
	return true, nil
}

func (l *Local) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.keys, key)
	return nil
}
