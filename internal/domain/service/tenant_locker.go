package service

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrLockNotAcquired is returned when a lease stays held by someone else for the whole wait.
	ErrLockNotAcquired = errors.New("lock not acquired")
	// ErrLockLost is the cancellation cause of a lease context whose lease could not be kept.
	ErrLockLost = errors.New("lock lost")
)

// TenantLocker serializes work per key across the processes sharing the backend.
type TenantLocker interface {
	// Acquire blocks until the lease for key is held or ctx ends. Work done under the lease must use the
	// returned context, which is cancelled with ErrLockLost when the lease cannot be kept and on release.
	// The returned func releases the lease and is safe to call more than once.
	Acquire(ctx context.Context, key string) (leaseCtx context.Context, release func(), err error)
}
