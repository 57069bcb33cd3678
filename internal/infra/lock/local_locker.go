package lock

import (
	"context"
	"sync"
	"time"

	"salesinsight/internal/domain/service"

	"github.com/pkg/errors"
)

type localEntry struct {
	held chan struct{}
	refs int
}

// localLocker is a keyed mutex for a single process.
type localLocker struct {
	mu      sync.Mutex
	entries map[string]*localEntry
	wait    time.Duration
}

// NewLocalLocker creates an in-process locker that gives up after wait.
func NewLocalLocker(wait time.Duration) service.TenantLocker {
	return &localLocker{entries: make(map[string]*localEntry), wait: wait}
}

func (l *localLocker) Acquire(ctx context.Context, key string) (context.Context, func(), error) {
	entry := l.ref(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case entry.held <- struct{}{}:
	case <-ctx.Done():
		l.unref(key)

		return nil, nil, errors.WithStack(ctx.Err())
	case <-timer.C:
		l.unref(key)

		return nil, nil, service.ErrLockNotAcquired
	}

	leaseCtx, cancel := context.WithCancel(ctx)
	var once sync.Once

	return leaseCtx, func() {
		once.Do(func() {
			cancel()
			<-entry.held
			l.unref(key)
		})
	}, nil
}

func (l *localLocker) ref(key string) *localEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		entry = &localEntry{held: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++

	return entry
}

func (l *localLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entries[key]
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}
