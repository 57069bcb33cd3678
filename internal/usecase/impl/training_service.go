package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"salesinsight/config"
	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/access"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/domain/service"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type trainingService struct {
	txManager    repository.TransactionManager
	model        service.ForecastModel
	catalog      usecase.CatalogUsecase
	publisher    service.EventPublisher
	metrics      service.MetricsRecorder
	caller       modelCaller
	trainTimeout time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// TrainingServiceParams holds dependencies for TrainingService, injected by Fx.
type TrainingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Model     service.ForecastModel
	Catalog   usecase.CatalogUsecase
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTrainingService is the constructor for trainingService.
func NewTrainingService(params TrainingServiceParams) usecase.TrainingUsecase {
	return &trainingService{
		txManager:    params.TxManager,
		model:        params.Model,
		catalog:      params.Catalog,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		caller:       modelCaller{metrics: params.Metrics, now: time.Now},
		trainTimeout: cmp.Or(params.Config.Forecast.MaxTimeout, time.Minute),
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *trainingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type trainingRecordedEvent struct {
	RunID    uuid.UUID             `json:"run_id"`
	Source   entity.TrainingSource `json:"source"`
	Accuracy float64               `json:"accuracy"`
}

// RecordRun appends one run to the ledger and announces it once committed.
func (srv *trainingService) RecordRun(
	ctx context.Context,
	source entity.TrainingSource,
	accuracy float64,
	notes string,
) (*entity.TrainingRun, error) {
	return srv.record(ctx, nil, source, accuracy, notes)
}

func (srv *trainingService) History(ctx context.Context, caller *entity.Identity, query usecase.HistoryQuery) ([]*entity.TrainingRun, error) {
	if err := access.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	limit := query.Limit
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	order := query.Order
	if order == "" {
		order = usecase.HistoryNewestFirst
	}
	if order != usecase.HistoryNewestFirst && order != usecase.HistoryChronological {
		return nil, domainerrors.Validation("order must be asc or desc")
	}

	var runs []*entity.TrainingRun
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var listErr error
		runs, listErr = snapshot.TrainingRunRepo().ListRecentTrainingRuns(ctx, limit)

		return errors.Wrap(listErr, "failed to list training runs")
	})
	if err != nil {
		return nil, err
	}

	if order == usecase.HistoryChronological {
		slices.Reverse(runs)
	}

	return runs, nil
}

func (srv *trainingService) Current(ctx context.Context, caller *entity.Identity) (*entity.TrainingRun, error) {
	if err := access.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	var latest *entity.TrainingRun
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var findErr error
		latest, findErr = snapshot.TrainingRunRepo().LatestTrainingRun(ctx)
		if errors.Is(findErr, repository.ErrNoTrainingRuns) {
			return nil
		}

		return errors.Wrap(findErr, "failed to load latest training run")
	})
	if err != nil {
		return nil, err
	}

	return latest, nil
}

// Retrain is admin-only for the global scope and bound to the caller's tenant otherwise.
func (srv *trainingService) Retrain(ctx context.Context, caller *entity.Identity, input *usecase.RetrainInput) (*entity.TrainingRun, error) {
	if input.Scope.IsGlobal() {
		if err := access.RequireAdmin(caller); err != nil {
			return nil, err
		}
	} else if err := access.RequireCompany(caller, *input.Scope.CompanyID); err != nil {
		return nil, err
	}

	dataset, err := srv.dataset(ctx, input.Scope)
	if err != nil {
		return nil, err
	}

	accuracy, err := srv.train(ctx, dataset)
	if err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(input.Notes)
	if notes == "" {
		notes = describeScope(input.Scope, len(dataset.Products))
	}

	return srv.record(ctx, input.Scope.CompanyID, entity.TrainingSourceManual, accuracy, notes)
}

// TrainFromCSV ingests first. A file with no usable rows fails with the ingestion error and records
// nothing; otherwise the tenant's catalog is retrained and a csv run is recorded.
func (srv *trainingService) TrainFromCSV(
	ctx context.Context,
	caller *entity.Identity,
	companyID uuid.UUID,
	upload *usecase.UploadInput,
) (*usecase.CSVTrainingOutput, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}

	result, err := srv.catalog.IngestCSV(ctx, caller, companyID, upload)
	if err != nil {
		return nil, err
	}
	output := &usecase.CSVTrainingOutput{Ingestion: result}

	scope := entity.TrainingScope{CompanyID: &companyID}
	dataset, err := srv.dataset(ctx, scope)
	if err == nil {
		var accuracy float64
		if accuracy, err = srv.train(ctx, dataset); err == nil {
			notes := strings.TrimSpace(upload.Notes)
			if notes == "" {
				notes = fmt.Sprintf("CSV upload %s: %d rows ingested, %d rejected",
					upload.Filename, result.RowsSucceeded, len(result.Failures))
			}
			output.Run, err = srv.record(ctx, &companyID, entity.TrainingSourceCSV, accuracy, notes)
		}
	}

	// The upload is committed; returning an error here would invite a retry that doubles the sales.
	if err != nil {
		srv.log(ctx).Warn("Training after upload failed", slog.Any("companyID", companyID), slog.Any("error", err))
		output.TrainingError = trainingFailure(err)
	}

	return output, nil
}

func (srv *trainingService) record(
	ctx context.Context,
	companyID *uuid.UUID,
	source entity.TrainingSource,
	accuracy float64,
	notes string,
) (*entity.TrainingRun, error) {
	if !source.IsValid() {
		return nil, domainerrors.Validation(fmt.Sprintf("unknown training source %q", source))
	}
	if math.IsNaN(accuracy) || accuracy < 0 || accuracy > 1 {
		return nil, domainerrors.Validation(fmt.Sprintf("accuracy %v is outside [0, 1]", accuracy))
	}

	run := &entity.TrainingRun{
		TrainingDate: srv.now().UTC(),
		Accuracy:     accuracy,
		Notes:        notes,
		Source:       source,
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.TrainingRunRepo().AppendTrainingRun(ctx, run), "failed to append training run")
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.CountTrainingRun(source)
	srv.log(ctx).Info("Training run recorded",
		slog.Any("runID", run.ID),
		slog.String("source", string(source)),
		slog.Float64("accuracy", accuracy),
	)
	publishAfterCommit(ctx, srv.publisher, srv.log(ctx), service.EventTrainingRecorded, companyID, trainingRecordedEvent{
		RunID:    run.ID,
		Source:   source,
		Accuracy: accuracy,
	})

	return run, nil
}

func (srv *trainingService) dataset(ctx context.Context, scope entity.TrainingScope) (*service.TrainingDataset, error) {
	dataset := &service.TrainingDataset{CompanyID: scope.CompanyID}

	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var (
			products []*entity.Product
			err      error
		)
		if scope.IsGlobal() {
			products, err = snapshot.ProductRepo().ListAllProducts(ctx)
		} else {
			products, err = snapshot.ProductRepo().ListProductsByCompany(ctx, *scope.CompanyID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}

		dataset.Products, _, err = buildHistories(ctx, snapshot.SaleRepo(), products)

		return err
	})
	if err != nil {
		return nil, err
	}

	if len(dataset.Products) == 0 {
		return nil, domainerrors.ErrInsufficientData.WithDetails("there is no sales history to train on")
	}

	return dataset, nil
}

func (srv *trainingService) train(ctx context.Context, dataset *service.TrainingDataset) (float64, error) {
	var accuracy float64
	err := srv.caller.call(ctx, operationTrain, srv.trainTimeout, func(ctx context.Context) error {
		var trainErr error
		accuracy, trainErr = srv.model.Train(ctx, dataset)
		if trainErr == nil && (math.IsNaN(accuracy) || accuracy < 0 || accuracy > 1) {
			return errors.Wrapf(service.ErrMalformedModelResponse, "accuracy %v is outside [0, 1]", accuracy)
		}

		return trainErr
	})

	return accuracy, err
}

func describeScope(scope entity.TrainingScope, products int) string {
	if scope.IsGlobal() {
		return fmt.Sprintf("Manual retrain over all companies (%d products)", products)
	}

	return fmt.Sprintf("Manual retrain for company %s (%d products)", scope.CompanyID, products)
}

func trainingFailure(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return "training failed"
}
