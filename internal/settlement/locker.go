package settlement

import (
	"context"
	"sync"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
)

// Locker guards work that must not run twice at the same time.
// Acquire returns domain.ErrLockHeld when someone else holds key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

// LocalLocker is an in-process Locker for single-instance deployments.
type LocalLocker struct {
	held sync.Map
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

// Acquire ignores ttl: the lock lives until unlock is called.
func (l *LocalLocker) Acquire(_ context.Context, key string, _ time.Duration) (func(), error) {
	if _, loaded := l.held.LoadOrStore(key, struct{}{}); loaded {
		return nil, domain.ErrLockHeld
	}
	var once sync.Once
	return func() {
		once.Do(func() { l.held.Delete(key) })
	}, nil
}
