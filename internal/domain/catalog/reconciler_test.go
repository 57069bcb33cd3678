package catalog_test

import (
	"context"
	"testing"
	"time"

	"salesinsight/internal/domain/catalog"
	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/ingest"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/errors"
	"salesinsight/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func mustMonth(t *testing.T, value string) entity.Month {
	t.Helper()
	month, err := entity.ParseMonth(value)
	require.NoError(t, err)

	return month
}

func record(t *testing.T, row int, model, region, month string, units int64, price string) ingest.Record {
	t.Helper()

	return ingest.Record{
		Row:        row,
		Model:      model,
		Region:     region,
		Month:      mustMonth(t, month),
		SalesCount: units,
		Price:      decimal.RequireFromString(price),
		Features:   map[string]bool{},
	}
}

func reconcile(t *testing.T, store repository.TransactionManager, companyID uuid.UUID, records []ingest.Record) *entity.IngestResult {
	t.Helper()

	var result *entity.IngestResult
	err := store.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		var err error
		result, err = catalog.Reconcile(context.Background(), repos, companyID, records, testNow)

		return err
	})
	require.NoError(t, err)

	return result
}

func loadCatalog(t *testing.T, store repository.TransactionManager, companyID uuid.UUID) ([]*entity.Product, map[uuid.UUID][]*entity.SaleRecord) {
	t.Helper()

	var products []*entity.Product
	sales := make(map[uuid.UUID][]*entity.SaleRecord)
	err := store.ReadSnapshot(context.Background(), func(repos repository.RepositoryFactory) error {
		var err error
		products, err = repos.ProductRepo().ListProductsByCompany(context.Background(), companyID)
		if err != nil {
			return err
		}
		for _, product := range products {
			records, err := repos.SaleRepo().ListSalesByProduct(context.Background(), product.ID)
			if err != nil {
				return err
			}
			sales[product.ID] = records
		}

		return nil
	})
	require.NoError(t, err)

	return products, sales
}

func TestReconcile_SameKeyAndMonthAccumulates(t *testing.T) {
	store := memory.NewStore()
	companyID := uuid.New()

	result := reconcile(t, store, companyID, []ingest.Record{
		record(t, 2, "Watch Pro", "North", "2026-01", 150, "100"),
		record(t, 3, "Watch Pro", "North", "2026-01-15", 50, "100"),
	})

	assert.Equal(t, 1, result.ProductsCreated)
	assert.Equal(t, 0, result.ProductsUpdated)
	assert.Equal(t, 1, result.SaleRecordsCreated)
	assert.Equal(t, 2, result.SalesAdded)
	assert.Equal(t, int64(200), result.UnitsAdded)
	assert.Equal(t, 2, result.RowsSucceeded)

	products, sales := loadCatalog(t, store, companyID)
	require.Len(t, products, 1)
	require.Len(t, sales[products[0].ID], 1)
	assert.Equal(t, int64(200), sales[products[0].ID][0].SalesCount)
	assert.True(t, decimal.NewFromInt(20000).Equal(sales[products[0].ID][0].Revenue))
}

func TestReconcile_DoubleIngestionDoublesCounts(t *testing.T) {
	store := memory.NewStore()
	companyID := uuid.New()
	file := []ingest.Record{
		record(t, 2, "Watch Pro", "North", "2026-01", 150, "100"),
		record(t, 3, "Watch Pro", "North", "2026-02", 80, "100"),
		record(t, 4, "Band Lite", "South", "2026-01", 30, "40"),
	}

	reconcile(t, store, companyID, file)
	firstProducts, firstSales := loadCatalog(t, store, companyID)

	second := reconcile(t, store, companyID, file)
	assert.Equal(t, 0, second.ProductsCreated)
	assert.Equal(t, 2, second.ProductsUpdated)
	assert.Equal(t, 0, second.SaleRecordsCreated)

	products, sales := loadCatalog(t, store, companyID)
	require.Len(t, products, len(firstProducts))
	for _, product := range products {
		require.Len(t, sales[product.ID], len(firstSales[product.ID]))
		for i, sale := range sales[product.ID] {
			assert.Equal(t, 2*firstSales[product.ID][i].SalesCount, sale.SalesCount)
		}
	}
}

func TestReconcile_MergesAttributes(t *testing.T) {
	store := memory.NewStore()
	companyID := uuid.New()

	first := record(t, 2, "Watch Pro", "North", "2026-01", 10, "100")
	discount := decimal.RequireFromString("80")
	battery := 7.0
	first.DiscountPrice = &discount
	first.BatteryLife = &battery
	first.Features = map[string]bool{"heart_rate": true, "wifi": false}

	second := record(t, 3, "Watch Pro", "North", "2026-02", 10, "120")
	second.Features = map[string]bool{"heart_rate": false, "wifi": true}

	reconcile(t, store, companyID, []ingest.Record{first})
	reconcile(t, store, companyID, []ingest.Record{second})

	products, sales := loadCatalog(t, store, companyID)
	require.Len(t, products, 1)
	product := products[0]

	assert.True(t, decimal.NewFromInt(120).Equal(product.Price))
	require.NotNil(t, product.DiscountPrice)
	assert.True(t, discount.Equal(*product.DiscountPrice))
	require.NotNil(t, product.BatteryLife)
	assert.InDelta(t, 7.0, *product.BatteryLife, 1e-9)
	assert.Equal(t, map[string]bool{"heart_rate": true, "wifi": true}, product.Features)

	require.Len(t, sales[product.ID], 2)
	assert.True(t, decimal.NewFromInt(800).Equal(sales[product.ID][0].Revenue))
	assert.True(t, decimal.NewFromInt(800).Equal(sales[product.ID][1].Revenue))
}

func TestReconcile_TenantsAreIsolated(t *testing.T) {
	store := memory.NewStore()
	companyA := uuid.New()
	companyB := uuid.New()

	reconcile(t, store, companyA, []ingest.Record{record(t, 2, "Watch Pro", "North", "2026-01", 10, "100")})
	result := reconcile(t, store, companyB, []ingest.Record{record(t, 2, "Watch Pro", "North", "2026-01", 5, "100")})

	assert.Equal(t, 1, result.ProductsCreated)

	productsA, salesA := loadCatalog(t, store, companyA)
	require.Len(t, productsA, 1)
	assert.Equal(t, int64(10), salesA[productsA[0].ID][0].SalesCount)
}

func TestReconcile_RollbackLeavesNoTrace(t *testing.T) {
	store := memory.NewStore()
	companyID := uuid.New()
	errAbort := errors.New("abort")

	err := store.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		if _, err := catalog.Reconcile(context.Background(), repos, companyID,
			[]ingest.Record{record(t, 2, "Watch Pro", "North", "2026-01", 10, "100")}, testNow); err != nil {
			return err
		}

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	products, _ := loadCatalog(t, store, companyID)
	assert.Empty(t, products)
}
