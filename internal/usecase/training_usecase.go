package usecase

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryOrder selects how a training history window is returned.
type HistoryOrder string

const (
	// HistoryNewestFirst is the default order.
	HistoryNewestFirst HistoryOrder = "desc"
	// HistoryChronological returns the same window oldest first, for charting.
	HistoryChronological HistoryOrder = "asc"
)

// HistoryQuery selects a window of the training ledger. Limit <= 0 selects the default.
type HistoryQuery struct {
	Limit int
	Order HistoryOrder
}

// RetrainInput requests a manual retrain over the given scope.
type RetrainInput struct {
	Scope entity.TrainingScope
	Notes string
}

// CSVTrainingOutput is the result of a CSV-triggered retrain. The ingestion is committed before the
// model is trained, so a failed training leaves Run nil and reports the failure in TrainingError.
type CSVTrainingOutput struct {
	Ingestion     *entity.IngestResult `json:"ingestion"`
	Run           *entity.TrainingRun  `json:"training_run"`
	TrainingError string               `json:"training_error,omitempty"`
}

// TrainingUsecase maintains the append-only training ledger.
type TrainingUsecase interface {
	// RecordRun appends a run. Accuracy must lie in [0, 1].
	RecordRun(ctx context.Context, source entity.TrainingSource, accuracy float64, notes string) (*entity.TrainingRun, error)

	History(ctx context.Context, caller *entity.Identity, query HistoryQuery) ([]*entity.TrainingRun, error)

	// Current returns the latest run, or nil when nothing has been recorded.
	Current(ctx context.Context, caller *entity.Identity) (*entity.TrainingRun, error)

	// Retrain trains the model on one tenant's catalog (company callers) or on every tenant (admins).
	Retrain(ctx context.Context, caller *entity.Identity, input *RetrainInput) (*entity.TrainingRun, error)

	// TrainFromCSV ingests a file and then retrains on the tenant's catalog.
	TrainFromCSV(ctx context.Context, caller *entity.Identity, companyID uuid.UUID, upload *UploadInput) (*CSVTrainingOutput, error)
}
