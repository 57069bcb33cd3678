package memory

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"

	"github.com/google/uuid"
)

type productRepository struct {
	*repositoryFactory
}

func (repo *productRepository) FindProductByKey(_ context.Context, key entity.ProductKey) (*entity.Product, error) {
	for _, product := range repo.state.products {
		if product.Key() == key {
			found := copyProduct(&product)

			return &found, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (repo *productRepository) FindProductByID(_ context.Context, companyID, id uuid.UUID) (*entity.Product, error) {
	product, ok := repo.state.products[id]
	if !ok || product.CompanyID != companyID {
		return nil, repository.ErrProductNotFound
	}
	found := copyProduct(&product)

	return &found, nil
}

func (repo *productRepository) CreateProduct(_ context.Context, product *entity.Product) error {
	if err := repo.writable(); err != nil {
		return err
	}
	for _, existing := range repo.state.products {
		if existing.Key() == product.Key() {
			return repository.ErrDuplicateProduct
		}
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = product.CreatedAt
	}
	repo.state.products[product.ID] = copyProduct(product)

	return nil
}

func (repo *productRepository) UpdateProduct(_ context.Context, product *entity.Product) error {
	if err := repo.writable(); err != nil {
		return err
	}

	existing, ok := repo.state.products[product.ID]
	if !ok {
		return repository.ErrProductNotFound
	}
	updated := copyProduct(product)
	updated.CompanyID = existing.CompanyID
	updated.ModelName = existing.ModelName
	updated.Region = existing.Region
	updated.CreatedAt = existing.CreatedAt
	repo.state.products[product.ID] = updated

	return nil
}

func (repo *productRepository) ListProductsByCompany(_ context.Context, companyID uuid.UUID) ([]*entity.Product, error) {
	return repo.list(func(p *entity.Product) bool { return p.CompanyID == companyID }), nil
}

func (repo *productRepository) ListAllProducts(_ context.Context) ([]*entity.Product, error) {
	return repo.list(func(*entity.Product) bool { return true }), nil
}

func (repo *productRepository) DeleteProduct(_ context.Context, companyID, id uuid.UUID) error {
	if err := repo.writable(); err != nil {
		return err
	}

	product, ok := repo.state.products[id]
	if !ok || product.CompanyID != companyID {
		return repository.ErrProductNotFound
	}
	delete(repo.state.products, id)
	maps.DeleteFunc(repo.state.sales, func(_ uuid.UUID, sale entity.SaleRecord) bool {
		return sale.ProductID == id
	})

	return nil
}

func (repo *productRepository) CountProducts(_ context.Context) (int64, error) {
	return int64(len(repo.state.products)), nil
}

func (repo *productRepository) list(keep func(*entity.Product) bool) []*entity.Product {
	products := make([]*entity.Product, 0)
	for _, product := range repo.state.products {
		if !keep(&product) {
			continue
		}
		found := copyProduct(&product)
		products = append(products, &found)
	}
	slices.SortFunc(products, compareProducts)

	return products
}

func compareProducts(a, b *entity.Product) int {
	if c := bytes.Compare(a.CompanyID[:], b.CompanyID[:]); c != 0 {
		return c
	}
	if c := strings.Compare(a.ModelName, b.ModelName); c != 0 {
		return c
	}

	return strings.Compare(a.Region, b.Region)
}

func copyProduct(product *entity.Product) entity.Product {
	copied := *product
	copied.Features = maps.Clone(product.Features)
	if copied.Features == nil {
		copied.Features = map[string]bool{}
	}
	if product.DiscountPrice != nil {
		discount := *product.DiscountPrice
		copied.DiscountPrice = &discount
	}
	if product.BatteryLife != nil {
		battery := *product.BatteryLife
		copied.BatteryLife = &battery
	}

	return copied
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
