package memory

import (
	"context"
	"testing"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SnapshotIgnoresLaterCommits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	companyID := uuid.New()

	require.NoError(t, store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.ProductRepo().CreateProduct(ctx, &entity.Product{CompanyID: companyID, ModelName: "A", Price: decimal.NewFromInt(1)})
	}))

	err := store.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		require.NoError(t, store.Execute(ctx, func(repos repository.RepositoryFactory) error {
			return repos.ProductRepo().CreateProduct(ctx, &entity.Product{CompanyID: companyID, ModelName: "B", Price: decimal.NewFromInt(1)})
		}))

		products, err := snapshot.ProductRepo().ListProductsByCompany(ctx, companyID)
		require.NoError(t, err)
		assert.Len(t, products, 1)

		return nil
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, store.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var err error
		count, err = snapshot.ProductRepo().CountProducts(ctx)

		return err
	}))
	assert.Equal(t, int64(2), count)
}

func TestStore_SnapshotRejectsWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		return snapshot.CompanyRepo().CreateCompany(ctx, &entity.Company{Name: "Acme"})
	})
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestStore_FailedTransactionIsDiscarded(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	errBoom := errors.New("boom")

	err := store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		require.NoError(t, repos.CompanyRepo().CreateCompany(ctx, &entity.Company{Name: "Acme"}))

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	require.NoError(t, store.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		count, err := snapshot.CompanyRepo().CountCompanies(ctx)
		assert.Equal(t, int64(0), count)

		return err
	}))
}

func TestStore_ReturnedProductsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	product := &entity.Product{CompanyID: uuid.New(), ModelName: "A", Features: map[string]bool{"wifi": true}}

	require.NoError(t, store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.ProductRepo().CreateProduct(ctx, product)
	}))
	product.Features["wifi"] = false

	require.NoError(t, store.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		found, err := snapshot.ProductRepo().FindProductByKey(ctx, product.Key())
		require.NoError(t, err)
		assert.True(t, found.Features["wifi"])

		return nil
	}))
}

func TestUserRepository_EmailIsUniqueCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		require.NoError(t, repos.UserRepo().CreateUser(ctx, &entity.User{Email: "Ops@Example.com", Role: entity.RoleAdmin}))

		found, err := repos.UserRepo().FindUserByEmail(ctx, "ops@example.COM")
		require.NoError(t, err)
		assert.Equal(t, "ops@example.com", found.Email)

		return repos.UserRepo().CreateUser(ctx, &entity.User{Email: "ops@example.com", Role: entity.RoleAdmin})
	})
	assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)
}

func TestProductRepository_DeleteCascadesToSales(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	companyID := uuid.New()
	product := &entity.Product{CompanyID: companyID, ModelName: "A"}

	require.NoError(t, store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.ProductRepo().CreateProduct(ctx, product); err != nil {
			return err
		}

		return repos.SaleRepo().CreateSaleRecord(ctx, &entity.SaleRecord{ProductID: product.ID, Month: entity.Month{Year: 2026, Month: time.January}, SalesCount: 3})
	}))

	err := store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.ProductRepo().DeleteProduct(ctx, uuid.New(), product.ID)
	})
	require.ErrorIs(t, err, repository.ErrProductNotFound)

	require.NoError(t, store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.ProductRepo().DeleteProduct(ctx, companyID, product.ID)
	}))

	require.NoError(t, store.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		sales, err := snapshot.SaleRepo().ListSalesByCompany(ctx, companyID, 0)
		assert.Empty(t, sales)

		return err
	}))
}

func TestTrainingRunRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		for i, accuracy := range []float64{0.7, 0.8, 0.9} {
			run := &entity.TrainingRun{TrainingDate: base.Add(time.Duration(i) * time.Hour), Accuracy: accuracy, Source: entity.TrainingSourceManual}
			if err := repos.TrainingRunRepo().AppendTrainingRun(ctx, run); err != nil {
				return err
			}
		}

		return nil
	}))

	require.NoError(t, store.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		runs, err := snapshot.TrainingRunRepo().ListRecentTrainingRuns(ctx, 2)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.InDelta(t, 0.9, runs[0].Accuracy, 1e-9)
		assert.InDelta(t, 0.8, runs[1].Accuracy, 1e-9)

		latest, err := snapshot.TrainingRunRepo().LatestTrainingRun(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 0.9, latest.Accuracy, 1e-9)

		return nil
	}))
}

func TestOfferRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	var names []string

	require.NoError(t, store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		for _, name := range []string{"first", "second", "third"} {
			if err := repos.OfferRepo().CreateOffer(ctx, &entity.Offer{Name: name, IsActive: true}); err != nil {
				return err
			}
		}

		offers, err := repos.OfferRepo().ListOffers(ctx)
		for _, offer := range offers {
			names = append(names, offer.Name)
		}

		return err
	}))

	assert.Equal(t, []string{"third", "second", "first"}, names)
}
