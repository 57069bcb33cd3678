package impl

import (
	"context"
	"testing"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"
	mockSvc "salesinsight/internal/mocks/service"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	txManager repository.TransactionManager
	hasher    *mockSvc.MockPasswordHasher
	admin     *entity.Identity
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := newMemoryTxManager()
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:   svc,
		txManager: txManager,
		hasher:    hasher,
		admin:     adminCaller(),
	}
}

func TestAdminService_CreateCompany(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	company, err := fx.service.CreateCompany(ctx, fx.admin, &usecase.CreateCompanyInput{Name: "  Acme   Wearables "})
	require.NoError(t, err)
	assert.Equal(t, "Acme Wearables", company.Name)
	assert.NotEqual(t, uuid.Nil, company.ID)

	_, err = fx.service.CreateCompany(ctx, fx.admin, &usecase.CreateCompanyInput{Name: "   "})
	assertErrorCode(t, err, "VALIDATION_FAILED")

	_, err = fx.service.CreateCompany(ctx, companyCaller(company.ID), &usecase.CreateCompanyInput{Name: "Rogue"})
	assertErrorCode(t, err, "AUTHORIZATION_FAILED")

	companies, err := fx.service.ListCompanies(ctx, fx.admin)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestAdminService_CreateUser_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	company := seedCompany(t, fx.txManager, "Acme Wearables")

	fx.hasher.EXPECT().Hash("sup3rsecret").Return("hashed", nil)

	user, err := fx.service.CreateUser(ctx, fx.admin, &usecase.CreateUserInput{
		Name:      "Ops",
		Email:     "Ops@Acme.io",
		Password:  "sup3rsecret",
		Role:      entity.RoleCompany,
		CompanyID: &company.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "ops@acme.io", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.CompanyID)
	assert.Equal(t, company.ID, *user.CompanyID)
}

func TestAdminService_CreateUser_Rejections(t *testing.T) {
	missingCompany := uuid.New()

	tests := []struct {
		name  string
		input usecase.CreateUserInput
		hash  bool
		code  string
	}{
		{
			name:  "company user without company",
			input: usecase.CreateUserInput{Name: "Ops", Email: "ops@acme.io", Password: "sup3rsecret", Role: entity.RoleCompany},
			code:  "VALIDATION_FAILED",
		},
		{
			name:  "admin bound to company",
			input: usecase.CreateUserInput{Name: "Root", Email: "root@acme.io", Password: "sup3rsecret", Role: entity.RoleAdmin, CompanyID: &missingCompany},
			code:  "VALIDATION_FAILED",
		},
		{
			name:  "short password",
			input: usecase.CreateUserInput{Name: "Ops", Email: "ops@acme.io", Password: "short", Role: entity.RoleAdmin},
			code:  "VALIDATION_FAILED",
		},
		{
			name:  "unknown role",
			input: usecase.CreateUserInput{Name: "Ops", Email: "ops@acme.io", Password: "sup3rsecret", Role: entity.Role("owner")},
			code:  "VALIDATION_FAILED",
		},
		{
			name:  "unknown company",
			input: usecase.CreateUserInput{Name: "Ops", Email: "ops@acme.io", Password: "sup3rsecret", Role: entity.RoleCompany, CompanyID: &missingCompany},
			hash:  true,
			code:  "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			if tt.hash {
				fx.hasher.EXPECT().Hash(tt.input.Password).Return("hashed", nil)
			}

			_, err := fx.service.CreateUser(context.Background(), fx.admin, &tt.input)

			assertErrorCode(t, err, tt.code)
		})
	}
}

func TestAdminService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	fx.hasher.EXPECT().Hash("sup3rsecret").Return("hashed", nil).Twice()

	input := &usecase.CreateUserInput{Name: "Root", Email: "root@acme.io", Password: "sup3rsecret", Role: entity.RoleAdmin}
	_, err := fx.service.CreateUser(ctx, fx.admin, input)
	require.NoError(t, err)

	input.Email = "ROOT@acme.io"
	_, err = fx.service.CreateUser(ctx, fx.admin, input)
	assertErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestAdminService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestAdminService(t)
	fx.hasher.EXPECT().Hash("sup3rsecret").Return("", errors.New("bcrypt: cost out of range"))

	_, err := fx.service.CreateUser(context.Background(), fx.admin, &usecase.CreateUserInput{
		Name: "Root", Email: "root@acme.io", Password: "sup3rsecret", Role: entity.RoleAdmin,
	})

	assertErrorCode(t, err, "PASSWORD_HASH_FAILED")
}

func TestAdminService_SetUserActive(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	user := seedUser(t, fx.txManager, &entity.User{Name: "Ops", Email: "ops@acme.io", Role: entity.RoleAdmin, IsActive: true})

	updated, err := fx.service.SetUserActive(ctx, fx.admin, user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = fx.service.SetUserActive(ctx, fx.admin, user.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	_, err = fx.service.SetUserActive(ctx, fx.admin, uuid.New(), false)
	assertErrorCode(t, err, "NOT_FOUND")

	self := &entity.Identity{UserID: user.ID, Role: entity.RoleAdmin}
	_, err = fx.service.SetUserActive(ctx, self, user.ID, false)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestAdminService_Stats(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stats, err := fx.service.Stats(ctx, fx.admin)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCompanies)
	assert.Nil(t, stats.ModelAccuracy)
	assert.Nil(t, stats.LatestTraining)

	seedCompany(t, fx.txManager, "Acme Wearables")
	seedUser(t, fx.txManager, &entity.User{Name: "Root", Email: "root@acme.io", Role: entity.RoleAdmin, IsActive: true})
	err = fx.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TrainingRunRepo().AppendTrainingRun(ctx, &entity.TrainingRun{
			Accuracy: 0.82,
			Source:   entity.TrainingSourceManual,
		})
	})
	require.NoError(t, err)

	stats, err = fx.service.Stats(ctx, fx.admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalCompanies)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalTrainingRuns)
	require.NotNil(t, stats.ModelAccuracy)
	assert.InDelta(t, 0.82, *stats.ModelAccuracy, 1e-9)

	_, err = fx.service.Stats(ctx, companyCaller(uuid.New()))
	assertErrorCode(t, err, "AUTHORIZATION_FAILED")
}
