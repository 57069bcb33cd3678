package postgres

import (
	"context"
	"time"

	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// trainingRunRepository is the append-only ledger. It exposes no update or delete.
type trainingRunRepository struct {
	db *gorm.DB
}

// NewTrainingRunRepository is the constructor for trainingRunRepository.
func NewTrainingRunRepository(db *gorm.DB) repository.TrainingRunRepository {
	return &trainingRunRepository{db: db}
}

func (repo *trainingRunRepository) AppendTrainingRun(ctx context.Context, run *entity.TrainingRun) error {
	if run.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate training run id")
		}
		run.ID = id
	}
	if run.TrainingDate.IsZero() {
		run.TrainingDate = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(fromTrainingRunDomain(run)).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.Validation("accuracy must be within [0, 1]")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append training run")
	}

	return nil
}

// ListRecentTrainingRuns returns newest first; id breaks ties between runs finished in the same instant.
func (repo *trainingRunRepository) ListRecentTrainingRuns(ctx context.Context, limit int) ([]*entity.TrainingRun, error) {
	var runModels []*model.TrainingRunModel

	query := repo.newestFirst(ctx)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&runModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list training runs")
	}

	runs := make([]*entity.TrainingRun, 0, len(runModels))
	for _, runM := range runModels {
		runs = append(runs, toTrainingRunDomain(runM))
	}

	return runs, nil
}

func (repo *trainingRunRepository) LatestTrainingRun(ctx context.Context) (*entity.TrainingRun, error) {
	var runM model.TrainingRunModel

	if err := repo.newestFirst(ctx).First(&runM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoTrainingRuns
		}

		return nil, errors.Wrap(err, "failed to find latest training run")
	}

	return toTrainingRunDomain(&runM), nil
}

func (repo *trainingRunRepository) CountTrainingRuns(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.TrainingRunModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count training runs")
	}

	return count, nil
}

func (repo *trainingRunRepository) newestFirst(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Order("training_date DESC, id DESC")
}

// --- Mapper Functions ---

func toTrainingRunDomain(data *model.TrainingRunModel) *entity.TrainingRun {
	return &entity.TrainingRun{
		ID:           data.ID,
		TrainingDate: data.TrainingDate,
		Accuracy:     data.Accuracy,
		Notes:        data.Notes,
		Source:       entity.TrainingSource(data.Source),
	}
}

func fromTrainingRunDomain(data *entity.TrainingRun) *model.TrainingRunModel {
	return &model.TrainingRunModel{
		ID:           data.ID,
		TrainingDate: data.TrainingDate,
		Accuracy:     data.Accuracy,
		Notes:        data.Notes,
		Source:       string(data.Source),
	}
}
