// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCompanyNotFound is returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the interface for tenant persistence.
type CompanyRepository interface {
	// CreateCompany persists a new company and fills generated fields.
	CreateCompany(ctx context.Context, company *entity.Company) error

	// FindCompanyByID retrieves a company by its ID.
	FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// ListCompanies returns all companies ordered by creation time.
	ListCompanies(ctx context.Context) ([]*entity.Company, error)

	// CountCompanies returns the number of companies.
	CountCompanies(ctx context.Context) (int64, error)
}
