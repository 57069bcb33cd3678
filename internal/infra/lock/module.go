package lock

import (
	"context"
	"log/slog"

	"salesinsight/config"
	"salesinsight/internal/domain/lifecycle"
	"salesinsight/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LockerParams holds dependencies for the TenantLocker, injected by Fx
type LockerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTenantLocker uses Redis when configured and an in-process lock otherwise.
func NewTenantLocker(params LockerParams) service.TenantLocker {
	cfg := params.Config
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		params.Logger.Info("Redis not configured, using in-process tenant lock")

		return NewLocalLocker(cfg.Ingest.LockWait)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis tenant lock ready", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLocker(client, cfg.Ingest.LockTTL, cfg.Ingest.LockWait, params.Logger)
}

// Module provides the tenant lock FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTenantLocker),
)
