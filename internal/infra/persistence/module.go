// Package persistence selects the storage backend named by storage.driver.
package persistence

import (
	"log/slog"

	"salesinsight/config"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/infra/persistence/memory"
	"salesinsight/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the TransactionManager, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTransactionManager connects the configured backend and returns its TransactionManager.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; data is lost on restart")

		return memory.NewTransactionManager(memory.NewStore()), nil
	case config.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewTransactionManager(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTransactionManager),
)
