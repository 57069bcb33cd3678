// Package catalog folds normalized sales records into a tenant's products and monthly sale records.
package catalog

import (
	"context"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/ingest"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/errors"

	"github.com/google/uuid"
)

type fileState struct {
	products map[entity.ProductKey]*entity.Product
	order    []entity.ProductKey
	dirty    map[entity.ProductKey]bool
	touched  map[uuid.UUID]struct{}
}

// Reconcile applies records in input order through repos, which the caller binds to one transaction.
// Products are keyed by (company, model, region): scalars are last-write-wins, feature flags are ORed.
// Sale records are keyed by (product, month) and accumulate units additively.
func Reconcile(
	ctx context.Context,
	repos repository.RepositoryFactory,
	companyID uuid.UUID,
	records []ingest.Record,
	now time.Time,
) (*entity.IngestResult, error) {
	result := &entity.IngestResult{}
	state := &fileState{
		products: make(map[entity.ProductKey]*entity.Product),
		dirty:    make(map[entity.ProductKey]bool),
		touched:  make(map[uuid.UUID]struct{}),
	}

	for i := range records {
		record := &records[i]

		product, err := state.product(ctx, repos.ProductRepo(), companyID, record, now, result)
		if err != nil {
			return nil, err
		}

		if err := addSale(ctx, repos.SaleRepo(), product, record, now, result); err != nil {
			return nil, err
		}

		result.RowsSucceeded++
	}

	for _, key := range state.order {
		if !state.dirty[key] {
			continue
		}
		if err := repos.ProductRepo().UpdateProduct(ctx, state.products[key]); err != nil {
			return nil, errors.Wrapf(err, "update product %s", state.products[key].ID)
		}
	}

	result.ProductsUpdated = len(state.touched)

	return result, nil
}

// product returns the product for the record's key, creating it on first sight and merging the record otherwise.
func (s *fileState) product(
	ctx context.Context,
	products repository.ProductRepository,
	companyID uuid.UUID,
	record *ingest.Record,
	now time.Time,
	result *entity.IngestResult,
) (*entity.Product, error) {
	key := record.Key(companyID)

	if cached, ok := s.products[key]; ok {
		applyRecord(cached, record, now)
		s.dirty[key] = true

		return cached, nil
	}

	existing, err := products.FindProductByKey(ctx, key)
	switch {
	case err == nil:
		applyRecord(existing, record, now)
		s.remember(key, existing)
		s.dirty[key] = true
		s.touched[existing.ID] = struct{}{}

		return existing, nil
	case errors.Is(err, repository.ErrProductNotFound):
	default:
		return nil, errors.Wrapf(err, "find product %s/%s", key.ModelName, key.Region)
	}

	created := &entity.Product{
		CompanyID: companyID,
		ModelName: record.Model,
		Region:    record.Region,
		CreatedAt: now,
	}
	applyRecord(created, record, now)
	if err := products.CreateProduct(ctx, created); err != nil {
		return nil, errors.Wrapf(err, "create product %s/%s", key.ModelName, key.Region)
	}
	s.remember(key, created)
	result.ProductsCreated++

	return created, nil
}

func (s *fileState) remember(key entity.ProductKey, product *entity.Product) {
	s.products[key] = product
	s.order = append(s.order, key)
}

func applyRecord(product *entity.Product, record *ingest.Record, now time.Time) {
	product.Price = record.Price
	if record.DiscountPrice != nil {
		discount := *record.DiscountPrice
		product.DiscountPrice = &discount
	}
	if record.BatteryLife != nil {
		battery := *record.BatteryLife
		product.BatteryLife = &battery
	}
	product.MergeFeatures(record.Features)
	product.UpdatedAt = now
}

func addSale(
	ctx context.Context,
	sales repository.SaleRepository,
	product *entity.Product,
	record *ingest.Record,
	now time.Time,
	result *entity.IngestResult,
) error {
	sale, err := sales.FindSaleRecord(ctx, product.ID, record.Month)
	switch {
	case err == nil:
		sale.AddUnits(record.SalesCount, product.EffectivePrice())
		sale.UpdatedAt = now
		if err := sales.UpdateSaleRecord(ctx, sale); err != nil {
			return errors.Wrapf(err, "update sale record %s %s", product.ID, record.Month)
		}
	case errors.Is(err, repository.ErrSaleRecordNotFound):
		sale = &entity.SaleRecord{
			ProductID: product.ID,
			Month:     record.Month,
			CreatedAt: now,
			UpdatedAt: now,
		}
		sale.AddUnits(record.SalesCount, product.EffectivePrice())
		if err := sales.CreateSaleRecord(ctx, sale); err != nil {
			return errors.Wrapf(err, "create sale record %s %s", product.ID, record.Month)
		}
		result.SaleRecordsCreated++
	default:
		return errors.Wrapf(err, "find sale record %s %s", product.ID, record.Month)
	}

	result.SalesAdded++
	result.UnitsAdded += record.SalesCount

	return nil
}
