package memory

import (
	"context"
	"slices"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"

	"github.com/google/uuid"
)

type companyRepository struct {
	*repositoryFactory
}

func (repo *companyRepository) CreateCompany(_ context.Context, company *entity.Company) error {
	if err := repo.writable(); err != nil {
		return err
	}
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now().UTC()
	}
	repo.state.companies[company.ID] = *company

	return nil
}

func (repo *companyRepository) FindCompanyByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	company, ok := repo.state.companies[id]
	if !ok {
		return nil, repository.ErrCompanyNotFound
	}

	return &company, nil
}

func (repo *companyRepository) ListCompanies(_ context.Context) ([]*entity.Company, error) {
	companies := make([]*entity.Company, 0, len(repo.state.companies))
	for _, company := range repo.state.companies {
		companies = append(companies, &company)
	}
	slices.SortFunc(companies, func(a, b *entity.Company) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return compareIDs(a.ID, b.ID)
	})

	return companies, nil
}

func (repo *companyRepository) CountCompanies(_ context.Context) (int64, error) {
	return int64(len(repo.state.companies)), nil
}
