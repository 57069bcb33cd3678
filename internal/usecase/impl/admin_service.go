package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/access"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/domain/service"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

type adminService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) CreateCompany(ctx context.Context, caller *entity.Identity, input *usecase.CreateCompanyInput) (*entity.Company, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	name := entity.NormalizeKeyPart(input.Name)
	if name == "" {
		return nil, domainerrors.Validation("company name is required")
	}

	company := &entity.Company{Name: name}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.CompanyRepo().CreateCompany(ctx, company), "failed to create company")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Company created", slog.Any("companyID", company.ID), slog.String("name", company.Name))

	return company, nil
}

func (srv *adminService) ListCompanies(ctx context.Context, caller *entity.Identity) ([]*entity.Company, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	var companies []*entity.Company
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var listErr error
		companies, listErr = snapshot.CompanyRepo().ListCompanies(ctx)

		return errors.Wrap(listErr, "failed to list companies")
	})
	if err != nil {
		return nil, err
	}

	return companies, nil
}

// CreateUser hashes the password before opening the transaction and maps a duplicate email to a conflict.
func (srv *adminService) CreateUser(ctx context.Context, caller *entity.Identity, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validateNewUser(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		Role:         input.Role,
		IsActive:     true,
		PasswordHash: hash,
	}
	if input.CompanyID != nil {
		companyID := *input.CompanyID
		user.CompanyID = &companyID
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if user.CompanyID != nil {
			_, findErr := repoFactory.CompanyRepo().FindCompanyByID(ctx, *user.CompanyID)
			if errors.Is(findErr, repository.ErrCompanyNotFound) {
				return domainerrors.NotFound("company", *user.CompanyID)
			}
			if findErr != nil {
				return errors.Wrap(findErr, "failed to find company")
			}
		}

		createErr := repoFactory.UserRepo().CreateUser(ctx, user)
		if errors.Is(createErr, repository.ErrUserAlreadyExists) {
			return domainerrors.ErrUserAlreadyExists.WithDetails("email " + user.Email + " is already registered")
		}

		return errors.Wrap(createErr, "failed to create user")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User created",
		slog.Any("userID", user.ID),
		slog.String("role", user.Role.String()),
		slog.Any("companyID", user.CompanyID),
	)

	return user, nil
}

func (srv *adminService) ListUsers(ctx context.Context, caller *entity.Identity) ([]*entity.User, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	var users []*entity.User
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var listErr error
		users, listErr = snapshot.UserRepo().ListUsers(ctx)

		return errors.Wrap(listErr, "failed to list users")
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (srv *adminService) SetUserActive(ctx context.Context, caller *entity.Identity, userID uuid.UUID, active bool) (*entity.User, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if !active && caller.UserID == userID {
		return nil, domainerrors.Validation("admins cannot deactivate their own account")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		setErr := userRepo.SetUserActive(ctx, userID, active)
		if errors.Is(setErr, repository.ErrUserNotFound) {
			return domainerrors.NotFound("user", userID)
		}
		if setErr != nil {
			return errors.Wrap(setErr, "failed to update user")
		}

		var findErr error
		user, findErr = userRepo.FindUserByID(ctx, userID)

		return errors.Wrap(findErr, "failed to reload user")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User activation changed", slog.Any("userID", userID), slog.Bool("active", active))

	return user, nil
}

func (srv *adminService) ListAllProducts(ctx context.Context, caller *entity.Identity) ([]*entity.Product, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	var products []*entity.Product
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var listErr error
		products, listErr = snapshot.ProductRepo().ListAllProducts(ctx)

		return errors.Wrap(listErr, "failed to list products")
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Stats reads every counter from one snapshot so the figures are mutually consistent.
func (srv *adminService) Stats(ctx context.Context, caller *entity.Identity) (*usecase.DashboardStats, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	stats := &usecase.DashboardStats{}
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var err error
		if stats.TotalUsers, err = snapshot.UserRepo().CountUsers(ctx); err != nil {
			return errors.Wrap(err, "failed to count users")
		}
		if stats.TotalCompanies, err = snapshot.CompanyRepo().CountCompanies(ctx); err != nil {
			return errors.Wrap(err, "failed to count companies")
		}
		if stats.TotalProducts, err = snapshot.ProductRepo().CountProducts(ctx); err != nil {
			return errors.Wrap(err, "failed to count products")
		}
		if stats.TotalTrainingRuns, err = snapshot.TrainingRunRepo().CountTrainingRuns(ctx); err != nil {
			return errors.Wrap(err, "failed to count training runs")
		}

		latest, err := snapshot.TrainingRunRepo().LatestTrainingRun(ctx)
		if errors.Is(err, repository.ErrNoTrainingRuns) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load latest training run")
		}
		stats.LatestTraining = latest
		accuracy := latest.Accuracy
		stats.ModelAccuracy = &accuracy

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func validateNewUser(input *usecase.CreateUserInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.Validation("name is required")
	}
	if !strings.Contains(input.Email, "@") {
		return domainerrors.Validation("a valid email is required")
	}
	if len(input.Password) < minPasswordLength {
		return domainerrors.Validation("password must have at least 8 characters")
	}

	switch input.Role {
	case entity.RoleCompany:
		if input.CompanyID == nil || *input.CompanyID == uuid.Nil {
			return domainerrors.Validation("company users require company_id")
		}
	case entity.RoleAdmin:
		if input.CompanyID != nil {
			return domainerrors.Validation("admins cannot belong to a company")
		}
	default:
		return domainerrors.Validation("role must be admin or company")
	}

	return nil
}
