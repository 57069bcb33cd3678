package memory

import (
	"context"
	"slices"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type offerRepository struct {
	*repositoryFactory
}

func (repo *offerRepository) CreateOffer(_ context.Context, offer *entity.Offer) error {
	if err := repo.writable(); err != nil {
		return err
	}

	if offer.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate offer id")
		}
		offer.ID = id
	}
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now().UTC()
	}
	repo.state.offers[offer.ID] = *offer

	return nil
}

func (repo *offerRepository) FindOfferByID(_ context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, ok := repo.state.offers[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}

	return &offer, nil
}

func (repo *offerRepository) ListOffers(_ context.Context) ([]*entity.Offer, error) {
	offers := make([]*entity.Offer, 0, len(repo.state.offers))
	for _, offer := range repo.state.offers {
		offers = append(offers, &offer)
	}
	slices.SortFunc(offers, func(a, b *entity.Offer) int {
		return compareIDs(b.ID, a.ID)
	})

	return offers, nil
}

func (repo *offerRepository) SetOfferActive(_ context.Context, id uuid.UUID, active bool) error {
	if err := repo.writable(); err != nil {
		return err
	}

	offer, ok := repo.state.offers[id]
	if !ok {
		return repository.ErrOfferNotFound
	}
	offer.IsActive = active
	repo.state.offers[id] = offer

	return nil
}
