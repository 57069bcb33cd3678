package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"salesinsight/config"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/infra/persistence/memory"
	mockSvc "salesinsight/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      bcrypt.MinCost,
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: time.Hour,
		},
		Forecast: config.ForecastConfig{
			DefaultTimeout: time.Second,
			MaxTimeout:     2 * time.Second,
			MaxHorizon:     12,
			Concurrency:    2,
		},
	}
}

func adminCaller() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func companyCaller(companyID uuid.UUID) *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleCompany, CompanyID: &companyID}
}

func newMemoryTxManager() repository.TransactionManager {
	return memory.NewTransactionManager(memory.NewStore())
}

func seedCompany(t *testing.T, txManager repository.TransactionManager, name string) *entity.Company {
	t.Helper()

	company := &entity.Company{Name: name}
	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CompanyRepo().CreateCompany(context.Background(), company)
	})
	require.NoError(t, err)

	return company
}

func seedUser(t *testing.T, txManager repository.TransactionManager, user *entity.User) *entity.User {
	t.Helper()

	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().CreateUser(context.Background(), user)
	})
	require.NoError(t, err)

	return user
}

func seedOffer(t *testing.T, txManager repository.TransactionManager, offer *entity.Offer) *entity.Offer {
	t.Helper()

	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OfferRepo().CreateOffer(context.Background(), offer)
	})
	require.NoError(t, err)

	return offer
}

func countTrainingRuns(t *testing.T, txManager repository.TransactionManager) int64 {
	t.Helper()

	var count int64
	err := txManager.ReadSnapshot(context.Background(), func(snapshot repository.RepositoryFactory) error {
		var countErr error
		count, countErr = snapshot.TrainingRunRepo().CountTrainingRuns(context.Background())

		return countErr
	})
	require.NoError(t, err)

	return count
}

// quietMetrics accepts any measurement.
func quietMetrics(t *testing.T) *mockSvc.MockMetricsRecorder {
	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().ObserveIngest(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().ObserveModelCall(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().CountTrainingRun(mock.Anything).Return().Maybe()

	return metrics
}

// quietPublisher accepts any event.
func quietPublisher(t *testing.T) *mockSvc.MockEventPublisher {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.ErrorCode())
}
