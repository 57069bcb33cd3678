package usecase

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCompanyInput defines the data required to create a tenant.
type CreateCompanyInput struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CreateUserInput defines the data required to create an account.
// Company users must reference an existing company; admins must not.
type CreateUserInput struct {
	Name      string      `json:"name" validate:"required,max=200"`
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=8,max=72"`
	Role      entity.Role `json:"role" validate:"required,oneof=admin company"`
	CompanyID *uuid.UUID  `json:"company_id"`
}

// DashboardStats summarizes the whole installation for admins.
type DashboardStats struct {
	TotalUsers        int64               `json:"total_users"`
	TotalCompanies    int64               `json:"total_companies"`
	TotalProducts     int64               `json:"total_products"`
	TotalTrainingRuns int64               `json:"total_training_runs"`
	ModelAccuracy     *float64            `json:"model_accuracy"` // Nil until the first training run.
	LatestTraining    *entity.TrainingRun `json:"latest_training,omitempty"`
}

// AdminUsecase defines the admin-only management operations.
type AdminUsecase interface {
	CreateCompany(ctx context.Context, caller *entity.Identity, input *CreateCompanyInput) (*entity.Company, error)
	ListCompanies(ctx context.Context, caller *entity.Identity) ([]*entity.Company, error)

	CreateUser(ctx context.Context, caller *entity.Identity, input *CreateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context, caller *entity.Identity) ([]*entity.User, error)

	// SetUserActive enables or disables an account. Admins cannot disable themselves.
	SetUserActive(ctx context.Context, caller *entity.Identity, userID uuid.UUID, active bool) (*entity.User, error)

	// ListAllProducts returns the products of every tenant.
	ListAllProducts(ctx context.Context, caller *entity.Identity) ([]*entity.Product, error)

	Stats(ctx context.Context, caller *entity.Identity) (*DashboardStats, error)
}
