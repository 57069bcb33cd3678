package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/domain/service"
	mockSvc "salesinsight/internal/mocks/service"
	mockUsecase "salesinsight/internal/mocks/usecase"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type trainingFixtures struct {
	service   usecase.TrainingUsecase
	txManager repository.TransactionManager
	model     *mockSvc.MockForecastModel
	catalog   *mockUsecase.MockCatalogUsecase
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMetricsRecorder
	company   *entity.Company
	caller    *entity.Identity
}

func createTestTrainingService(t *testing.T) trainingFixtures {
	txManager := newMemoryTxManager()
	model := mockSvc.NewMockForecastModel(t)
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewTrainingService(TrainingServiceParams{
		TxManager: txManager,
		Model:     model,
		Catalog:   catalog,
		Publisher: publisher,
		Metrics:   metrics,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	company := seedCompany(t, txManager, "Acme Wearables")

	return trainingFixtures{
		service:   svc,
		txManager: txManager,
		model:     model,
		catalog:   catalog,
		publisher: publisher,
		metrics:   metrics,
		company:   company,
		caller:    companyCaller(company.ID),
	}
}

func (fx trainingFixtures) allowSideEffects() {
	fx.metrics.EXPECT().ObserveModelCall(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	fx.metrics.EXPECT().CountTrainingRun(mock.Anything).Return().Maybe()
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func seedTrainingRun(t *testing.T, txManager repository.TransactionManager, date time.Time, accuracy float64) *entity.TrainingRun {
	t.Helper()

	run := &entity.TrainingRun{TrainingDate: date, Accuracy: accuracy, Source: entity.TrainingSourceManual}
	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TrainingRunRepo().AppendTrainingRun(context.Background(), run)
	})
	require.NoError(t, err)

	return run
}

func TestTrainingService_RecordRun(t *testing.T) {
	fx := createTestTrainingService(t)
	ctx := context.Background()

	fx.metrics.EXPECT().CountTrainingRun(entity.TrainingSourceManual).Return().Once()
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventTrainingRecorded && event.CompanyID == ""
		})).
		Return(nil).
		Once()

	run, err := fx.service.RecordRun(ctx, entity.TrainingSourceManual, 0.91, "nightly")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.False(t, run.TrainingDate.IsZero())
	assert.Equal(t, "nightly", run.Notes)
	assert.Equal(t, int64(1), countTrainingRuns(t, fx.txManager))
}

func TestTrainingService_RecordRun_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		source   entity.TrainingSource
		accuracy float64
	}{
		{name: "accuracy above one", source: entity.TrainingSourceManual, accuracy: 1.2},
		{name: "negative accuracy", source: entity.TrainingSourceCSV, accuracy: -0.1},
		{name: "not a number", source: entity.TrainingSourceManual, accuracy: math.NaN()},
		{name: "unknown source", source: entity.TrainingSource("cron"), accuracy: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTrainingService(t)

			_, err := fx.service.RecordRun(context.Background(), tt.source, tt.accuracy, "")

			assertErrorCode(t, err, "VALIDATION_FAILED")
			assert.Zero(t, countTrainingRuns(t, fx.txManager))
		})
	}
}

func TestTrainingService_History(t *testing.T) {
	fx := createTestTrainingService(t)
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	oldest := seedTrainingRun(t, fx.txManager, base, 0.70)
	middle := seedTrainingRun(t, fx.txManager, base.Add(24*time.Hour), 0.75)
	newest := seedTrainingRun(t, fx.txManager, base.Add(48*time.Hour), 0.80)

	runs, err := fx.service.History(ctx, fx.caller, usecase.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []uuid.UUID{newest.ID, middle.ID, oldest.ID}, runIDs(runs))

	runs, err = fx.service.History(ctx, fx.caller, usecase.HistoryQuery{Limit: 2, Order: usecase.HistoryChronological})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{middle.ID, newest.ID}, runIDs(runs))

	_, err = fx.service.History(ctx, fx.caller, usecase.HistoryQuery{Order: "sideways"})
	assertErrorCode(t, err, "VALIDATION_FAILED")

	_, err = fx.service.History(ctx, nil, usecase.HistoryQuery{})
	assertErrorCode(t, err, "UNAUTHENTICATED")
}

func TestTrainingService_Current(t *testing.T) {
	fx := createTestTrainingService(t)
	ctx := context.Background()

	current, err := fx.service.Current(ctx, fx.caller)
	require.NoError(t, err)
	assert.Nil(t, current)

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	seedTrainingRun(t, fx.txManager, base, 0.70)
	latest := seedTrainingRun(t, fx.txManager, base.Add(time.Hour), 0.88)

	current, err = fx.service.Current(ctx, fx.caller)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, latest.ID, current.ID)
	assert.InDelta(t, 0.88, current.Accuracy, 1e-9)
}

func TestTrainingService_Retrain_Scopes(t *testing.T) {
	fx := createTestTrainingService(t)
	ctx := context.Background()

	_, err := fx.service.Retrain(ctx, fx.caller, &usecase.RetrainInput{})
	assertErrorCode(t, err, "AUTHORIZATION_FAILED")

	_, err = fx.service.Retrain(ctx, adminCaller(), &usecase.RetrainInput{Scope: entity.TrainingScope{CompanyID: &fx.company.ID}})
	assertErrorCode(t, err, "AUTHORIZATION_FAILED")

	other := uuid.New()
	_, err = fx.service.Retrain(ctx, fx.caller, &usecase.RetrainInput{Scope: entity.TrainingScope{CompanyID: &other}})
	assertErrorCode(t, err, "AUTHORIZATION_FAILED")

	_, err = fx.service.Retrain(ctx, adminCaller(), &usecase.RetrainInput{})
	assertErrorCode(t, err, "INSUFFICIENT_DATA")
}

func TestTrainingService_Retrain_Company(t *testing.T) {
	fx := createTestTrainingService(t)
	fx.allowSideEffects()
	ctx := context.Background()
	seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 10, 12)

	fx.model.EXPECT().
		Train(mock.Anything, mock.MatchedBy(func(dataset *service.TrainingDataset) bool {
			return dataset.CompanyID != nil && *dataset.CompanyID == fx.company.ID && len(dataset.Products) == 1
		})).
		Return(0.87, nil)

	run, err := fx.service.Retrain(ctx, fx.caller, &usecase.RetrainInput{Scope: entity.TrainingScope{CompanyID: &fx.company.ID}})
	require.NoError(t, err)

	assert.Equal(t, entity.TrainingSourceManual, run.Source)
	assert.InDelta(t, 0.87, run.Accuracy, 1e-9)
	assert.Contains(t, run.Notes, fx.company.ID.String())
}

func TestTrainingService_Retrain_GlobalByAdmin(t *testing.T) {
	fx := createTestTrainingService(t)
	fx.allowSideEffects()
	ctx := context.Background()
	other := seedCompany(t, fx.txManager, "Globex")
	seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 10)
	seedSalesHistory(t, fx.txManager, other.ID, "Band Lite", entity.Month{Year: 2026, Month: time.January}, 4)

	fx.model.EXPECT().
		Train(mock.Anything, mock.MatchedBy(func(dataset *service.TrainingDataset) bool {
			return dataset.CompanyID == nil && len(dataset.Products) == 2
		})).
		Return(0.8, nil)

	run, err := fx.service.Retrain(ctx, adminCaller(), &usecase.RetrainInput{Notes: "quarterly refresh"})
	require.NoError(t, err)
	assert.Equal(t, "quarterly refresh", run.Notes)
}

func TestTrainingService_Retrain_MalformedAccuracy(t *testing.T) {
	fx := createTestTrainingService(t)
	fx.allowSideEffects()
	seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 10)
	fx.model.EXPECT().Train(mock.Anything, mock.Anything).Return(1.5, nil)

	_, err := fx.service.Retrain(context.Background(), fx.caller, &usecase.RetrainInput{
		Scope: entity.TrainingScope{CompanyID: &fx.company.ID},
	})

	assertErrorCode(t, err, "UPSTREAM_ERROR")
	assert.Zero(t, countTrainingRuns(t, fx.txManager))
}

func TestTrainingService_TrainFromCSV(t *testing.T) {
	upload := &usecase.UploadInput{Filename: "sales.csv", Data: []byte("irrelevant for the mock")}

	t.Run("records a csv run", func(t *testing.T) {
		fx := createTestTrainingService(t)
		fx.allowSideEffects()
		ctx := context.Background()

		fx.catalog.EXPECT().
			IngestCSV(ctx, fx.caller, fx.company.ID, upload).
			RunAndReturn(func(context.Context, *entity.Identity, uuid.UUID, *usecase.UploadInput) (*entity.IngestResult, error) {
				seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 200)

				return &entity.IngestResult{RowsSucceeded: 2, Failures: []entity.RowFailure{}}, nil
			})
		fx.model.EXPECT().Train(mock.Anything, mock.Anything).Return(0.9, nil)

		output, err := fx.service.TrainFromCSV(ctx, fx.caller, fx.company.ID, upload)
		require.NoError(t, err)

		require.NotNil(t, output.Run)
		assert.Equal(t, entity.TrainingSourceCSV, output.Run.Source)
		assert.Equal(t, "CSV upload sales.csv: 2 rows ingested, 0 rejected", output.Run.Notes)
		assert.Empty(t, output.TrainingError)
		assert.Equal(t, 2, output.Ingestion.RowsSucceeded)
	})

	t.Run("no usable rows records nothing", func(t *testing.T) {
		fx := createTestTrainingService(t)
		ctx := context.Background()

		failed := &domainerrors.IngestionFailedError{Result: &entity.IngestResult{
			Failures: []entity.RowFailure{{Row: 2, Field: "sales_count", Kind: entity.FailureType, Reason: "not a number"}},
		}}
		fx.catalog.EXPECT().IngestCSV(ctx, fx.caller, fx.company.ID, upload).Return(nil, failed)

		output, err := fx.service.TrainFromCSV(ctx, fx.caller, fx.company.ID, upload)

		assert.Nil(t, output)
		assertErrorCode(t, err, "INGESTION_FAILED")
		assert.Zero(t, countTrainingRuns(t, fx.txManager))
	})

	t.Run("training failure keeps the ingestion", func(t *testing.T) {
		fx := createTestTrainingService(t)
		fx.allowSideEffects()
		ctx := context.Background()
		seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 200)

		fx.catalog.EXPECT().
			IngestCSV(ctx, fx.caller, fx.company.ID, upload).
			Return(&entity.IngestResult{RowsSucceeded: 1, Failures: []entity.RowFailure{}}, nil)
		fx.model.EXPECT().Train(mock.Anything, mock.Anything).Return(0, errors.New("model service is down"))

		output, err := fx.service.TrainFromCSV(ctx, fx.caller, fx.company.ID, upload)
		require.NoError(t, err)

		assert.Nil(t, output.Run)
		assert.Equal(t, "The forecasting model is unavailable", output.TrainingError)
		assert.Equal(t, 1, output.Ingestion.RowsSucceeded)
		assert.Zero(t, countTrainingRuns(t, fx.txManager))
	})
}

func runIDs(runs []*entity.TrainingRun) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(runs))
	for _, run := range runs {
		ids = append(ids, run.ID)
	}

	return ids
}
