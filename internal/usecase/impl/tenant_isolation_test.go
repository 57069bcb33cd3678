package impl

import (
	"context"
	"testing"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/infra/lock"
	mockSvc "salesinsight/internal/mocks/service"
	"salesinsight/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mocks carry no expectations here: any archive, publish, metric or model call fails the test.
func TestCompanyScopedOperations_RejectOtherTenants(t *testing.T) {
	txManager := newMemoryTxManager()
	cfg := newTestConfig()
	logger := newDiscardLogger()
	model := mockSvc.NewMockForecastModel(t)

	catalogSvc := NewCatalogService(CatalogServiceParams{
		TxManager: txManager,
		Locker:    lock.NewLocalLocker(50 * time.Millisecond),
		Archiver:  mockSvc.NewMockArchiver(t),
		Publisher: mockSvc.NewMockEventPublisher(t),
		Metrics:   mockSvc.NewMockMetricsRecorder(t),
		Config:    cfg,
		Logger:    logger,
	})
	forecastSvc := NewForecastService(ForecastServiceParams{
		TxManager: txManager,
		Model:     model,
		Metrics:   mockSvc.NewMockMetricsRecorder(t),
		Config:    cfg,
		Logger:    logger,
	})
	trainingSvc := NewTrainingService(TrainingServiceParams{
		TxManager: txManager,
		Model:     model,
		Catalog:   catalogSvc,
		Publisher: mockSvc.NewMockEventPublisher(t),
		Metrics:   mockSvc.NewMockMetricsRecorder(t),
		Config:    cfg,
		Logger:    logger,
	})

	owner := seedCompany(t, txManager, "Acme Wearables")
	other := seedCompany(t, txManager, "Globex Bands")
	product := seedSalesHistory(t, txManager, owner.ID, "Watch Pro", entity.Month{Year: 2026, Month: time.January}, 100, 120)

	ctx := context.Background()
	intruder := companyCaller(other.ID)
	upload := &usecase.UploadInput{Filename: "sales.csv", Data: []byte(watchProCSV)}
	fields := map[string]string{"model_name": "Watch Pro", "sales_count": "5", "date": "2026-03", "price": "1000"}

	operations := []struct {
		name string
		call func() error
	}{
		{name: "IngestCSV", call: func() error {
			_, err := catalogSvc.IngestCSV(ctx, intruder, owner.ID, upload)

			return err
		}},
		{name: "AddSale", call: func() error {
			_, err := catalogSvc.AddSale(ctx, intruder, owner.ID, fields)

			return err
		}},
		{name: "ListProducts", call: func() error {
			_, err := catalogSvc.ListProducts(ctx, intruder, owner.ID)

			return err
		}},
		{name: "DeleteProduct", call: func() error {
			return catalogSvc.DeleteProduct(ctx, intruder, owner.ID, product.ID)
		}},
		{name: "UpdateProduct", call: func() error {
			_, err := catalogSvc.UpdateProduct(ctx, intruder, owner.ID, product.ID, &usecase.UpdateProductInput{
				Features: map[string]bool{"gps": true},
			})

			return err
		}},
		{name: "ListSales", call: func() error {
			_, err := catalogSvc.ListSales(ctx, intruder, owner.ID, 0)

			return err
		}},
		{name: "Analytics", call: func() error {
			_, err := catalogSvc.Analytics(ctx, intruder, owner.ID)

			return err
		}},
		{name: "Predict", call: func() error {
			_, err := forecastSvc.Predict(ctx, intruder, owner.ID, usecase.PredictInput{})

			return err
		}},
		{name: "FeatureImportance", call: func() error {
			_, err := forecastSvc.FeatureImportance(ctx, intruder, owner.ID)

			return err
		}},
		{name: "Retrain", call: func() error {
			_, err := trainingSvc.Retrain(ctx, intruder, &usecase.RetrainInput{Scope: entity.TrainingScope{CompanyID: &owner.ID}})

			return err
		}},
		{name: "TrainFromCSV", call: func() error {
			_, err := trainingSvc.TrainFromCSV(ctx, intruder, owner.ID, upload)

			return err
		}},
	}

	for _, op := range operations {
		t.Run(op.name, func(t *testing.T) {
			assertErrorCode(t, op.call(), "AUTHORIZATION_FAILED")
		})
	}

	ownerCaller := companyCaller(owner.ID)
	products, err := catalogSvc.ListProducts(ctx, ownerCaller, owner.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
	assert.Equal(t, map[string]bool{"heart_rate": true}, products[0].Features)

	sales, err := catalogSvc.ListSales(ctx, ownerCaller, owner.ID, 0)
	require.NoError(t, err)
	assert.Len(t, sales, 2)
	assert.Zero(t, countTrainingRuns(t, txManager))

	otherProducts, err := catalogSvc.ListProducts(ctx, intruder, other.ID)
	require.NoError(t, err)
	assert.Empty(t, otherProducts)
}
