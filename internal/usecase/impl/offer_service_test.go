package impl

import (
	"context"
	"testing"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"
	mockRepo "salesinsight/internal/mocks/repository"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOfferService(t *testing.T, now time.Time) (*offerService, *entity.Identity) {
	t.Helper()

	svc := NewOfferService(OfferServiceParams{
		TxManager: newMemoryTxManager(),
		Logger:    newDiscardLogger(),
	}).(*offerService)
	svc.now = func() time.Time { return now }

	return svc, adminCaller()
}

func TestOfferService_Create(t *testing.T) {
	svc, admin := createTestOfferService(t, time.Now())
	ctx := context.Background()

	offer, err := svc.Create(ctx, admin, &usecase.CreateOfferInput{
		Name:      " Diwali Dhamaka ",
		StartDate: "2026-10-20",
		EndDate:   "2026-10-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "Diwali Dhamaka", offer.Name)
	assert.True(t, offer.IsActive)
	assert.Equal(t, offer.StartDate, offer.EndDate)
	assert.NotEqual(t, uuid.Nil, offer.ID)

	tests := []struct {
		name   string
		caller *entity.Identity
		input  usecase.CreateOfferInput
		code   string
	}{
		{
			name:   "end before start",
			caller: admin,
			input:  usecase.CreateOfferInput{Name: "Backwards", StartDate: "2026-02-10", EndDate: "2026-02-01"},
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "bad date",
			caller: admin,
			input:  usecase.CreateOfferInput{Name: "Sloppy", StartDate: "10/02/2026", EndDate: "2026-02-11"},
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "company user",
			caller: companyCaller(uuid.New()),
			input:  usecase.CreateOfferInput{Name: "Rogue", StartDate: "2026-02-01", EndDate: "2026-02-11"},
			code:   "AUTHORIZATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.caller, &tt.input)
			assertErrorCode(t, err, tt.code)
		})
	}
}

func TestOfferService_Active(t *testing.T) {
	today := time.Date(2026, time.January, 10, 15, 30, 0, 0, time.UTC)
	svc, admin := createTestOfferService(t, today)
	ctx := context.Background()

	create := func(name, start, end string) *entity.Offer {
		offer, err := svc.Create(ctx, admin, &usecase.CreateOfferInput{Name: name, StartDate: start, EndDate: end})
		require.NoError(t, err)

		return offer
	}

	current := create("New Year Sale", "2026-01-01", "2026-01-15")
	endsToday := create("Flash Sale", "2026-01-05", "2026-01-10")
	create("Valentine", "2026-02-01", "2026-02-14")
	paused := create("Winter Clearance", "2026-01-01", "2026-01-31")

	_, err := svc.SetActive(ctx, admin, paused.ID, false)
	require.NoError(t, err)

	caller := companyCaller(uuid.New())
	active, err := svc.Active(ctx, caller)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, endsToday.ID, active[0].ID)
	assert.Equal(t, current.ID, active[1].ID)

	all, err := svc.List(ctx, caller)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = svc.Active(ctx, nil)
	assertErrorCode(t, err, "UNAUTHENTICATED")
}

func TestOfferService_SetActive(t *testing.T) {
	svc, admin := createTestOfferService(t, time.Now())
	ctx := context.Background()

	offer, err := svc.Create(ctx, admin, &usecase.CreateOfferInput{Name: "Monsoon", StartDate: "2026-07-01", EndDate: "2026-07-31"})
	require.NoError(t, err)

	updated, err := svc.SetActive(ctx, admin, offer.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.SetActive(ctx, admin, uuid.New(), true)
	assertErrorCode(t, err, "NOT_FOUND")

	_, err = svc.SetActive(ctx, companyCaller(uuid.New()), offer.ID, true)
	assertErrorCode(t, err, "AUTHORIZATION_FAILED")
}

func TestOfferService_RepositoryFailures(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	connErr := errors.New("connection refused")

	newService := func(t *testing.T) (*offerService, *mockRepo.MockOfferRepository) {
		txManager := mockRepo.NewMockTransactionManager(t)
		repoFactory := mockRepo.NewMockRepositoryFactory(t)
		offerRepo := mockRepo.NewMockOfferRepository(t)

		runFn := func(_ context.Context, fn func(repository.RepositoryFactory) error) error { return fn(repoFactory) }
		txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(runFn).Maybe()
		txManager.EXPECT().ReadSnapshot(mock.Anything, mock.Anything).RunAndReturn(runFn).Maybe()
		repoFactory.EXPECT().OfferRepo().Return(offerRepo)

		svc := NewOfferService(OfferServiceParams{TxManager: txManager, Logger: newDiscardLogger()}).(*offerService)

		return svc, offerRepo
	}

	t.Run("create keeps the cause", func(t *testing.T) {
		svc, offerRepo := newService(t)
		offerRepo.EXPECT().CreateOffer(mock.Anything, mock.AnythingOfType("*entity.Offer")).Return(connErr)

		_, err := svc.Create(ctx, adminCaller(), &usecase.CreateOfferInput{Name: "Holi", StartDate: "2026-03-01", EndDate: "2026-03-05"})

		require.ErrorIs(t, err, connErr)
		assert.Contains(t, err.Error(), "failed to create offer")
	})

	t.Run("missing offer becomes not found", func(t *testing.T) {
		svc, offerRepo := newService(t)
		offerRepo.EXPECT().SetOfferActive(mock.Anything, offerID, false).Return(repository.ErrOfferNotFound)

		_, err := svc.SetActive(ctx, adminCaller(), offerID, false)

		assertErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("list failure", func(t *testing.T) {
		svc, offerRepo := newService(t)
		offerRepo.EXPECT().ListOffers(mock.Anything).Return(nil, connErr)

		_, err := svc.Active(ctx, companyCaller(uuid.New()))

		require.ErrorIs(t, err, connErr)
	})
}
