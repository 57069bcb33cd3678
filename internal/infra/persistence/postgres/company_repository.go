package postgres

import (
	"context"

	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (repo *companyRepository) CreateCompany(ctx context.Context, company *entity.Company) error {
	if company.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate company id")
		}
		company.ID = id
	}

	companyM := fromCompanyDomain(company)
	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}
	company.CreatedAt = companyM.CreatedAt

	return nil
}

func (repo *companyRepository) FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&companyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by ID")
	}

	return toCompanyDomain(&companyM), nil
}

func (repo *companyRepository) ListCompanies(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []*model.CompanyModel

	if err := repo.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&companyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for _, companyM := range companyModels {
		companies = append(companies, toCompanyDomain(companyM))
	}

	return companies, nil
}

func (repo *companyRepository) CountCompanies(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CompanyModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count companies")
	}

	return count, nil
}

// --- Mapper Functions ---

func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	return &entity.Company{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}

func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	return &model.CompanyModel{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
