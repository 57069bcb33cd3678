package repository

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoTrainingRuns is returned when the ledger is empty.
var ErrNoTrainingRuns = errors.New("no training runs recorded")

// TrainingRunRepository is the append-only training ledger.
type TrainingRunRepository interface {
	// AppendTrainingRun persists a completed run.
	AppendTrainingRun(ctx context.Context, run *entity.TrainingRun) error

	// ListRecentTrainingRuns returns up to limit runs ordered by training date descending.
	ListRecentTrainingRuns(ctx context.Context, limit int) ([]*entity.TrainingRun, error)

	// LatestTrainingRun returns the most recent run.
	LatestTrainingRun(ctx context.Context) (*entity.TrainingRun, error)

	// CountTrainingRuns returns the ledger size.
	CountTrainingRuns(ctx context.Context) (int64, error)
}
