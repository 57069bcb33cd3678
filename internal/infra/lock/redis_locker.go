// Package lock provides the per-tenant lease that serializes ingestion for one company.
package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salesinsight/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "salesinsight:lock:"
	initialBackoff = 10 * time.Millisecond
	maxBackoff     = 500 * time.Millisecond
	releaseTimeout = 5 * time.Second
)

// releaseScript deletes the key only while it still holds our token.
//
//nolint:gochecknoglobals
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// extendScript resets the TTL only while the key still holds our token.
//
//nolint:gochecknoglobals
var extendScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
else
	return 0
end
`)

// redisLocker is a lease held with SET NX and a per-holder token. A watchdog renews the TTL every
// third of it while the lease is held; the TTL only frees the key when the holder stops renewing.
type redisLocker struct {
	client redis.Cmdable
	ttl    time.Duration
	wait   time.Duration
	logger *slog.Logger
}

// NewRedisLocker creates a locker over client.
func NewRedisLocker(client redis.Cmdable, ttl, wait time.Duration, logger *slog.Logger) service.TenantLocker {
	return &redisLocker{client: client, ttl: ttl, wait: wait, logger: logger}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (context.Context, func(), error) {
	lockKey := keyPrefix + key
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)
	backoff := initialBackoff

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "acquire lock %s", key)
		}
		if ok {
			l.logger.DebugContext(ctx, "Acquired lock", slog.String("key", lockKey))

			return l.hold(ctx, lockKey, token)
		}

		if !time.Now().Add(backoff).Before(deadline) {
			return nil, nil, service.ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, nil, errors.WithStack(ctx.Err())
		case <-time.After(backoff):
			backoff = min(backoff*2, maxBackoff)
		}
	}
}

// hold starts the renewal watchdog and returns the lease context with its releaser.
func (l *redisLocker) hold(ctx context.Context, lockKey, token string) (context.Context, func(), error) {
	leaseCtx, cancel := context.WithCancelCause(ctx)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		l.renew(leaseCtx, cancel, stop, lockKey, token)
	}()

	var once sync.Once

	return leaseCtx, func() {
		once.Do(func() {
			close(stop)
			<-done
			cancel(context.Canceled)
			l.release(ctx, lockKey, token)
		})
	}, nil
}

// renew extends the TTL until stop closes. A key that no longer holds our token, or renewals failing
// for longer than the TTL, cancels the lease context with ErrLockLost.
func (l *redisLocker) renew(
	leaseCtx context.Context,
	cancel context.CancelCauseFunc,
	stop <-chan struct{},
	lockKey, token string,
) {
	interval := max(l.ttl/3, time.Millisecond)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastRenewed := time.Now()
	for {
		select {
		case <-stop:
			return
		case <-leaseCtx.Done():
			return
		case <-ticker.C:
		}

		renewCtx, cancelRenew := context.WithTimeout(context.WithoutCancel(leaseCtx), interval)
		extended, err := extendScript.Run(renewCtx, l.client, []string{lockKey}, token, l.ttl.Milliseconds()).Int64()
		cancelRenew()

		switch {
		case err == nil && extended == 1:
			lastRenewed = time.Now()

			continue
		case err == nil:
			l.logger.WarnContext(leaseCtx, "Lock taken over before renewal", slog.String("key", lockKey))
		case time.Since(lastRenewed)+interval < l.ttl:
			l.logger.WarnContext(leaseCtx, "Failed to renew lock, retrying",
				slog.String("key", lockKey),
				slog.Any("error", err),
			)

			continue
		default:
			l.logger.WarnContext(leaseCtx, "Failed to renew lock before its TTL ran out",
				slog.String("key", lockKey),
				slog.Any("error", err),
			)
		}

		cancel(service.ErrLockLost)

		return
	}
}

func (l *redisLocker) release(ctx context.Context, lockKey, token string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	deleted, err := releaseScript.Run(releaseCtx, l.client, []string{lockKey}, token).Int64()
	switch {
	case err != nil:
		l.logger.WarnContext(ctx, "Failed to release lock; it expires with its TTL",
			slog.String("key", lockKey),
			slog.Any("error", err),
		)
	case deleted == 0:
		l.logger.WarnContext(ctx, "Lock expired before release", slog.String("key", lockKey))
	default:
		l.logger.DebugContext(ctx, "Released lock", slog.String("key", lockKey))
	}
}
