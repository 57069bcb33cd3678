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
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindProductByKey retrieves a product by company, model name and region, locking it for the
// feature and price merge that follows.
func (repo *productRepository) FindProductByKey(ctx context.Context, key entity.ProductKey) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("company_id = ? AND model_name = ? AND region = ?", key.CompanyID, key.ModelName, key.Region))
}

// FindProductByID retrieves a product only when it belongs to the company.
func (repo *productRepository) FindProductByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID))
}

func (repo *productRepository) findOne(query *gorm.DB) (*entity.Product, error) {
	var productM model.ProductModel

	if err := query.First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// CreateProduct persists a new product. A taken natural key maps to repository.ErrDuplicateProduct.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate product id")
		}
		product.ID = id
	}

	productM := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProduct
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct overwrites the attributes; the natural key and owner never change.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Select("battery_life", "features", "price", "discount_price", "updated_at").
		Updates(productM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.Validation("product price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// ListProductsByCompany returns the company's catalog ordered by model name then region.
func (repo *productRepository) ListProductsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Product, error) {
	return repo.list(repo.db.WithContext(ctx).Where("company_id = ?", companyID))
}

// ListAllProducts returns every tenant's catalog grouped by company.
func (repo *productRepository) ListAllProducts(ctx context.Context) ([]*entity.Product, error) {
	return repo.list(repo.db.WithContext(ctx))
}

func (repo *productRepository) list(query *gorm.DB) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := query.Order("company_id, model_name, region").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// DeleteProduct removes the product; its sale records go with it through ON DELETE CASCADE.
func (repo *productRepository) DeleteProduct(ctx context.Context, companyID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		ModelName:   data.ModelName,
		Region:      data.Region,
		BatteryLife: data.BatteryLife,
		Features:    toFeatureFlags(data.Features),
		Price:       data.Price,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.DiscountPrice.Valid {
		discount := data.DiscountPrice.Decimal
		product.DiscountPrice = &discount
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	productM := &model.ProductModel{
		ID:          data.ID,
		CompanyID:   data.CompanyID,
		ModelName:   data.ModelName,
		Region:      data.Region,
		BatteryLife: data.BatteryLife,
		Features:    fromFeatureFlags(data.Features),
		Price:       data.Price,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.DiscountPrice != nil {
		productM.DiscountPrice = decimal.NewNullDecimal(*data.DiscountPrice)
	}

	return productM
}

// toFeatureFlags reads the jsonb column back; anything that is not a JSON boolean counts as false.
func toFeatureFlags(data datatypes.JSONMap) map[string]bool {
	flags := make(map[string]bool, len(data))
	for name, value := range data {
		enabled, _ := value.(bool)
		flags[name] = enabled
	}

	return flags
}

func fromFeatureFlags(flags map[string]bool) datatypes.JSONMap {
	data := make(datatypes.JSONMap, len(flags))
	for name, enabled := range flags {
		data[name] = enabled
	}

	return data
}
