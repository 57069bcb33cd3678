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
	"gorm.io/gorm/clause"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// companySaleRow is the scan target of the sale_records ⋈ products join.
type companySaleRow struct {
	model.SaleRecordModel `gorm:"embedded"`

	ModelName string
	Region    string
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// FindSaleRecord locks the row until the surrounding transaction ends, so the read-modify-write of
// sales_count never loses units to a concurrent writer.
func (repo *saleRepository) FindSaleRecord(ctx context.Context, productID uuid.UUID, month entity.Month) (*entity.SaleRecord, error) {
	var saleM model.SaleRecordModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ? AND month = ?", productID, month.Start()).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale record")
	}

	return toSaleDomain(&saleM), nil
}

func (repo *saleRepository) CreateSaleRecord(ctx context.Context, record *entity.SaleRecord) error {
	if record.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate sale record id")
		}
		record.ID = id
	}

	saleM := fromSaleDomain(record)
	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale record")
	}

	record.CreatedAt = saleM.CreatedAt
	record.UpdatedAt = saleM.UpdatedAt

	return nil
}

func (repo *saleRepository) UpdateSaleRecord(ctx context.Context, record *entity.SaleRecord) error {
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.SaleRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"sales_count": record.SalesCount,
			"revenue":     record.Revenue,
			"updated_at":  now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sale record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSaleRecordNotFound
	}
	record.UpdatedAt = now

	return nil
}

// ListSalesByProduct returns the product's history, oldest month first.
func (repo *saleRepository) ListSalesByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.SaleRecord, error) {
	var saleModels []*model.SaleRecordModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("month ASC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales by product")
	}

	records := make([]*entity.SaleRecord, 0, len(saleModels))
	for _, saleM := range saleModels {
		records = append(records, toSaleDomain(saleM))
	}

	return records, nil
}

// ListSalesByCompany returns the company's records, newest month first, ties broken by model name then region.
func (repo *saleRepository) ListSalesByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]*entity.CompanySale, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SaleRecordModel{}).
		Select("sale_records.*, products.model_name, products.region").
		Joins("JOIN products ON products.id = sale_records.product_id").
		Where("products.company_id = ?", companyID).
		Order("sale_records.month DESC, products.model_name ASC, products.region ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []*companySaleRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales by company")
	}

	sales := make([]*entity.CompanySale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, &entity.CompanySale{
			SaleRecord: *toSaleDomain(&row.SaleRecordModel),
			ModelName:  row.ModelName,
			Region:     row.Region,
		})
	}

	return sales, nil
}

// --- Mapper Functions ---

func toSaleDomain(data *model.SaleRecordModel) *entity.SaleRecord {
	return &entity.SaleRecord{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Month:      entity.MonthOf(data.Month),
		SalesCount: data.SalesCount,
		Revenue:    data.Revenue,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromSaleDomain(data *entity.SaleRecord) *model.SaleRecordModel {
	return &model.SaleRecordModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Month:      data.Month.Start(),
		SalesCount: data.SalesCount,
		Revenue:    data.Revenue,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
