package repository

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when a natural key is already taken.
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductRepository defines the interface for product catalog persistence.
// Every read is scoped by company except the admin-wide listing.
type ProductRepository interface {
	// FindProductByKey retrieves a product by its natural key.
	FindProductByKey(ctx context.Context, key entity.ProductKey) (*entity.Product, error)

	// FindProductByID retrieves a product owned by the company.
	FindProductByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Product, error)

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct overwrites the mutable attributes of a product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// ListProductsByCompany returns the company's products ordered by model name then region.
	ListProductsByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Product, error)

	// ListAllProducts returns every product across tenants.
	ListAllProducts(ctx context.Context) ([]*entity.Product, error)

	// DeleteProduct removes a company's product together with its sale records.
	DeleteProduct(ctx context.Context, companyID, id uuid.UUID) error

	// CountProducts returns the number of products across tenants.
	CountProducts(ctx context.Context) (int64, error)
}
