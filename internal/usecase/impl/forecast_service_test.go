package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/domain/service"
	mockSvc "salesinsight/internal/mocks/service"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type forecastFixtures struct {
	service   usecase.ForecastUsecase
	txManager repository.TransactionManager
	model     *mockSvc.MockForecastModel
	company   *entity.Company
	caller    *entity.Identity
}

func createTestForecastService(t *testing.T, metrics service.MetricsRecorder) forecastFixtures {
	txManager := newMemoryTxManager()
	model := mockSvc.NewMockForecastModel(t)
	if metrics == nil {
		metrics = quietMetrics(t)
	}

	svc := NewForecastService(ForecastServiceParams{
		TxManager: txManager,
		Model:     model,
		Metrics:   metrics,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	company := seedCompany(t, txManager, "Acme Wearables")

	return forecastFixtures{
		service:   svc,
		txManager: txManager,
		model:     model,
		company:   company,
		caller:    companyCaller(company.ID),
	}
}

// seedSalesHistory stores a product with one sale record per month starting at first.
func seedSalesHistory(
	t *testing.T,
	txManager repository.TransactionManager,
	companyID uuid.UUID,
	model string,
	first entity.Month,
	units ...int64,
) *entity.Product {
	t.Helper()

	ctx := context.Background()
	product := &entity.Product{
		CompanyID: companyID,
		ModelName: model,
		Features:  map[string]bool{"heart_rate": true},
		Price:     decimal.NewFromInt(1000),
	}
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().CreateProduct(ctx, product); err != nil {
			return err
		}
		for i, count := range units {
			record := &entity.SaleRecord{ProductID: product.ID, Month: first.AddMonths(i)}
			record.AddUnits(count, product.EffectivePrice())
			if err := repoFactory.SaleRepo().CreateSaleRecord(ctx, record); err != nil {
				return err
			}
		}

		return nil
	})
	require.NoError(t, err)

	return product
}

func TestForecastService_Predict_AnnotatesOffers(t *testing.T) {
	fx := createTestForecastService(t, nil)
	ctx := context.Background()

	seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2025, Month: time.November}, 100, 120)
	seedOffer(t, fx.txManager, &entity.Offer{
		Name:      "New Year Sale",
		StartDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	seedOffer(t, fx.txManager, &entity.Offer{
		Name:      "Paused Valentine",
		StartDate: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
		IsActive:  false,
	})

	fx.model.EXPECT().
		Predict(mock.Anything, mock.AnythingOfType("*service.ProductHistory"), 3).
		Return([]service.MonthlyPrediction{
			{MonthIndex: 2, PredictedSales: 110.4, Confidence: 0.8},
			{MonthIndex: 1, PredictedSales: 130.6, Confidence: 0.9},
			{MonthIndex: 3, PredictedSales: -5, Confidence: 1.3},
		}, nil)

	set, err := fx.service.Predict(ctx, fx.caller, fx.company.ID, usecase.PredictInput{HorizonMonths: 3})
	require.NoError(t, err)

	require.Len(t, set.Products, 1)
	forecast := set.Products[0]
	assert.Equal(t, "2025-12", forecast.LastKnownMonth.String())
	require.Len(t, forecast.Predictions, 3)

	january := forecast.Predictions[0]
	assert.Equal(t, 1, january.MonthIndex)
	assert.Equal(t, "2026-01", january.Month.String())
	assert.Equal(t, int64(131), january.PredictedSales)
	assert.True(t, january.HasActiveOffer)
	require.NotNil(t, january.OfferName)
	assert.Equal(t, "New Year Sale", *january.OfferName)

	february := forecast.Predictions[1]
	assert.Equal(t, "2026-02", february.Month.String())
	assert.Equal(t, int64(110), february.PredictedSales)
	assert.False(t, february.HasActiveOffer)
	assert.Nil(t, february.OfferName)

	march := forecast.Predictions[2]
	assert.Equal(t, int64(0), march.PredictedSales)
	assert.InDelta(t, 1.0, march.Confidence, 1e-9)

	assert.Equal(t, int64(241), forecast.Summary.TotalPredictedUnits)
	assert.Equal(t, 1, forecast.Summary.PeakMonthIndex)
	assert.Equal(t, 1, forecast.Summary.PromotionalMonths)
	assert.InDelta(t, 0.9, forecast.Summary.AverageConfidence, 1e-9)

	assert.Equal(t, 3, set.HorizonMonths)
	assert.Equal(t, forecast.Summary, set.Summary)
}

func TestForecastService_Predict_KeepsProductOrder(t *testing.T) {
	fx := createTestForecastService(t, nil)
	ctx := context.Background()
	first := entity.Month{Year: 2026, Month: time.January}

	seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", first, 50)
	seedSalesHistory(t, fx.txManager, fx.company.ID, "Band Lite", first, 10)
	seedSalesHistory(t, fx.txManager, fx.company.ID, "Fit Mini", first)

	rows := map[string][]service.MonthlyPrediction{
		"Band Lite": {{MonthIndex: 1, PredictedSales: 10, Confidence: 0.5}, {MonthIndex: 2, PredictedSales: 20, Confidence: 0.5}},
		"Watch Pro": {{MonthIndex: 1, PredictedSales: 30, Confidence: 0.7}, {MonthIndex: 2, PredictedSales: 5, Confidence: 0.7}},
	}
	fx.model.EXPECT().
		Predict(mock.Anything, mock.AnythingOfType("*service.ProductHistory"), 2).
		RunAndReturn(func(_ context.Context, history *service.ProductHistory, _ int) ([]service.MonthlyPrediction, error) {
			return rows[history.ModelName], nil
		}).
		Times(2)

	set, err := fx.service.Predict(ctx, fx.caller, fx.company.ID, usecase.PredictInput{HorizonMonths: 2})
	require.NoError(t, err)

	require.Len(t, set.Products, 2)
	assert.Equal(t, "Band Lite", set.Products[0].ModelName)
	assert.Equal(t, "Watch Pro", set.Products[1].ModelName)
	assert.Equal(t, 1, set.SkippedProducts)

	assert.Equal(t, int64(65), set.Summary.TotalPredictedUnits)
	assert.Equal(t, 1, set.Summary.PeakMonthIndex)
	assert.InDelta(t, 0.6, set.Summary.AverageConfidence, 1e-9)
}

func TestForecastService_Predict_InsufficientData(t *testing.T) {
	fx := createTestForecastService(t, nil)

	_, err := fx.service.Predict(context.Background(), fx.caller, fx.company.ID, usecase.PredictInput{})
	assertErrorCode(t, err, "INSUFFICIENT_DATA")

	seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January})

	_, err = fx.service.Predict(context.Background(), fx.caller, fx.company.ID, usecase.PredictInput{})
	assertErrorCode(t, err, "INSUFFICIENT_DATA")
}

func TestForecastService_Predict_RejectsBadInput(t *testing.T) {
	fx := createTestForecastService(t, nil)

	tests := []struct {
		name   string
		caller *entity.Identity
		input  usecase.PredictInput
		code   string
	}{
		{name: "horizon above maximum", caller: fx.caller, input: usecase.PredictInput{HorizonMonths: 13}, code: "VALIDATION_FAILED"},
		{name: "negative horizon", caller: fx.caller, input: usecase.PredictInput{HorizonMonths: -1}, code: "VALIDATION_FAILED"},
		{name: "negative timeout", caller: fx.caller, input: usecase.PredictInput{Timeout: -time.Second}, code: "VALIDATION_FAILED"},
		{name: "other tenant", caller: companyCaller(uuid.New()), input: usecase.PredictInput{}, code: "AUTHORIZATION_FAILED"},
		{name: "admin", caller: adminCaller(), input: usecase.PredictInput{}, code: "AUTHORIZATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Predict(context.Background(), tt.caller, fx.company.ID, tt.input)
			assertErrorCode(t, err, tt.code)
		})
	}
}

func TestForecastService_Predict_Timeout(t *testing.T) {
	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().
		ObserveModelCall(operationPredict, service.ModelOutcomeTimeout, mock.AnythingOfType("time.Duration")).
		Return().
		Once()

	fx := createTestForecastService(t, metrics)
	seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 10)

	fx.model.EXPECT().
		Predict(mock.Anything, mock.Anything, defaultHorizonMonths).
		RunAndReturn(func(ctx context.Context, _ *service.ProductHistory, _ int) ([]service.MonthlyPrediction, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	_, err := fx.service.Predict(context.Background(), fx.caller, fx.company.ID, usecase.PredictInput{
		Timeout: 20 * time.Millisecond,
	})

	assertErrorCode(t, err, "UPSTREAM_TIMEOUT")
}

func TestForecastService_Predict_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		rows []service.MonthlyPrediction
		err  error
	}{
		{
			name: "model error",
			err:  errors.New("connection refused"),
		},
		{
			name: "too few months",
			rows: []service.MonthlyPrediction{{MonthIndex: 1, PredictedSales: 10, Confidence: 0.5}},
		},
		{
			name: "gap in month indexes",
			rows: []service.MonthlyPrediction{{MonthIndex: 1, PredictedSales: 10}, {MonthIndex: 3, PredictedSales: 10}},
		},
		{
			name: "not a number",
			rows: []service.MonthlyPrediction{{MonthIndex: 1, PredictedSales: math.NaN()}, {MonthIndex: 2, PredictedSales: 10}},
		},
		{
			name: "beyond int64",
			rows: []service.MonthlyPrediction{{MonthIndex: 1, PredictedSales: 10}, {MonthIndex: 2, PredictedSales: 1e19}},
		},
		{
			name: "exactly two to the 63rd",
			rows: []service.MonthlyPrediction{{MonthIndex: 1, PredictedSales: math.Exp2(63)}, {MonthIndex: 2, PredictedSales: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestForecastService(t, nil)
			seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 10)
			fx.model.EXPECT().Predict(mock.Anything, mock.Anything, 2).Return(tt.rows, tt.err)

			_, err := fx.service.Predict(context.Background(), fx.caller, fx.company.ID, usecase.PredictInput{HorizonMonths: 2})

			assertErrorCode(t, err, "UPSTREAM_ERROR")
		})
	}
}

func TestForecastService_FeatureImportance(t *testing.T) {
	fx := createTestForecastService(t, nil)
	seedSalesHistory(t, fx.txManager, fx.company.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 10, 20)

	fx.model.EXPECT().
		FeatureImportance(mock.Anything, mock.MatchedBy(func(dataset *service.TrainingDataset) bool {
			return len(dataset.Products) == 1 && dataset.CompanyID != nil && *dataset.CompanyID == fx.company.ID
		})).
		Return([]service.FeatureWeight{
			{Feature: "spo2", Importance: 0.2},
			{Feature: "heart_rate", Importance: 0.5, Impact: "+12% sales"},
			{Feature: "battery_life", Importance: 0.2},
		}, nil)

	ranked, err := fx.service.FeatureImportance(context.Background(), fx.caller, fx.company.ID)
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Equal(t, "heart_rate", ranked[0].Feature)
	assert.Equal(t, "+12% sales", ranked[0].Impact)
	assert.Equal(t, "battery_life", ranked[1].Feature)
	assert.Equal(t, "+20.0%", ranked[1].Impact)
	assert.Equal(t, "spo2", ranked[2].Feature)
}

func TestForecastService_FeatureImportance_InsufficientData(t *testing.T) {
	fx := createTestForecastService(t, nil)

	_, err := fx.service.FeatureImportance(context.Background(), fx.caller, fx.company.ID)

	assertErrorCode(t, err, "INSUFFICIENT_DATA")
}

func TestAddUnits_Saturates(t *testing.T) {
	assert.Equal(t, int64(30), addUnits(10, 20))
	assert.Equal(t, int64(math.MaxInt64), addUnits(math.MaxInt64-5, 10))
	assert.Equal(t, int64(math.MaxInt64), addUnits(math.MaxInt64, math.MaxInt64))
}

func TestSummarizeSet_LargePredictionsDoNotOverflow(t *testing.T) {
	huge := entity.Prediction{MonthIndex: 1, PredictedSales: math.MaxInt64 / 2, Confidence: 0.5}
	forecasts := []entity.ProductForecast{
		{Predictions: []entity.Prediction{huge}},
		{Predictions: []entity.Prediction{huge}},
		{Predictions: []entity.Prediction{huge}},
	}

	summary := summarizeSet(forecasts, 1)

	assert.Equal(t, int64(math.MaxInt64), summary.TotalPredictedUnits)
	assert.Equal(t, 1, summary.PeakMonthIndex)
}
