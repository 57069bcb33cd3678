package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"salesinsight/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLocker(t *testing.T, ttl, wait time.Duration) (service.TenantLocker, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLocker(client, ttl, wait, slog.New(slog.NewTextHandler(io.Discard, nil))), server
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	locker, server := newTestRedisLocker(t, time.Minute, 50*time.Millisecond)

	_, release, err := locker.Acquire(context.Background(), "company-a")
	require.NoError(t, err)
	assert.True(t, server.Exists(keyPrefix+"company-a"))

	_, _, err = locker.Acquire(context.Background(), "company-a")
	assert.ErrorIs(t, err, service.ErrLockNotAcquired)

	release()
	assert.False(t, server.Exists(keyPrefix+"company-a"))

	_, again, err := locker.Acquire(context.Background(), "company-a")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_ReleaseKeepsForeignLease(t *testing.T) {
	locker, server := newTestRedisLocker(t, time.Second, 50*time.Millisecond)

	_, release, err := locker.Acquire(context.Background(), "company-a")
	require.NoError(t, err)

	// The lease expires and another holder takes it before we release.
	server.FastForward(2 * time.Second)
	require.NoError(t, server.Set(keyPrefix+"company-a", "someone-else"))

	release()

	value, err := server.Get(keyPrefix + "company-a")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", value)
}

func TestRedisLocker_DifferentKeysAreIndependent(t *testing.T) {
	locker, _ := newTestRedisLocker(t, time.Minute, 50*time.Millisecond)

	_, releaseA, err := locker.Acquire(context.Background(), "company-a")
	require.NoError(t, err)
	defer releaseA()

	_, releaseB, err := locker.Acquire(context.Background(), "company-b")
	require.NoError(t, err)
	releaseB()
}

func TestRedisLocker_RenewsWhileHeld(t *testing.T) {
	locker, server := newTestRedisLocker(t, 300*time.Millisecond, 20*time.Millisecond)
	lockKey := keyPrefix + "company-a"

	leaseCtx, release, err := locker.Acquire(context.Background(), "company-a")
	require.NoError(t, err)
	defer release()

	server.FastForward(250 * time.Millisecond)
	require.Eventually(t, func() bool {
		return server.TTL(lockKey) > 100*time.Millisecond
	}, 2*time.Second, 10*time.Millisecond)

	// Past the original TTL the lease is still ours.
	server.FastForward(200 * time.Millisecond)
	assert.True(t, server.Exists(lockKey))

	_, _, err = locker.Acquire(context.Background(), "company-a")
	require.ErrorIs(t, err, service.ErrLockNotAcquired)
	assert.NoError(t, leaseCtx.Err())
}

func TestRedisLocker_ExpiredLeaseCancelsHolder(t *testing.T) {
	locker, server := newTestRedisLocker(t, 300*time.Millisecond, 20*time.Millisecond)

	leaseCtx, release, err := locker.Acquire(context.Background(), "company-a")
	require.NoError(t, err)
	defer release()

	// The holder stalls past its TTL and a second ingestion takes the key.
	server.FastForward(301 * time.Millisecond)
	_, releaseOther, err := locker.Acquire(context.Background(), "company-a")
	require.NoError(t, err)
	defer releaseOther()

	select {
	case <-leaseCtx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("lease context was not cancelled after the lease was lost")
	}
	assert.ErrorIs(t, context.Cause(leaseCtx), service.ErrLockLost)
}

func TestRedisLocker_ReleaseCancelsLeaseContext(t *testing.T) {
	locker, _ := newTestRedisLocker(t, time.Minute, 20*time.Millisecond)

	leaseCtx, release, err := locker.Acquire(context.Background(), "company-a")
	require.NoError(t, err)

	release()
	release()

	assert.ErrorIs(t, leaseCtx.Err(), context.Canceled)
	assert.ErrorIs(t, context.Cause(leaseCtx), context.Canceled)
}
