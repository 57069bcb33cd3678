package memory

import (
	"context"
	"slices"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"

	"github.com/google/uuid"
)

type trainingRunRepository struct {
	*repositoryFactory
}

func (repo *trainingRunRepository) AppendTrainingRun(_ context.Context, run *entity.TrainingRun) error {
	if err := repo.writable(); err != nil {
		return err
	}

	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.TrainingDate.IsZero() {
		run.TrainingDate = time.Now().UTC()
	}
	repo.state.runs = append(repo.state.runs, *run)

	return nil
}

func (repo *trainingRunRepository) ListRecentTrainingRuns(_ context.Context, limit int) ([]*entity.TrainingRun, error) {
	runs := repo.newestFirst()
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}

	return runs, nil
}

func (repo *trainingRunRepository) LatestTrainingRun(_ context.Context) (*entity.TrainingRun, error) {
	runs := repo.newestFirst()
	if len(runs) == 0 {
		return nil, repository.ErrNoTrainingRuns
	}

	return runs[0], nil
}

func (repo *trainingRunRepository) CountTrainingRuns(_ context.Context) (int64, error) {
	return int64(len(repo.state.runs)), nil
}

// newestFirst orders by training date descending; among equal dates the later append wins.
func (repo *trainingRunRepository) newestFirst() []*entity.TrainingRun {
	runs := make([]*entity.TrainingRun, len(repo.state.runs))
	for i := range repo.state.runs {
		run := repo.state.runs[len(repo.state.runs)-1-i]
		runs[i] = &run
	}
	slices.SortStableFunc(runs, func(a, b *entity.TrainingRun) int {
		return b.TrainingDate.Compare(a.TrainingDate)
	})

	return runs
}
