package repository

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOfferNotFound is returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines the interface for campaign persistence. Offers are never deleted.
type OfferRepository interface {
	// CreateOffer persists a new offer.
	CreateOffer(ctx context.Context, offer *entity.Offer) error

	// FindOfferByID retrieves an offer by ID.
	FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// ListOffers returns all offers, most recently created first.
	ListOffers(ctx context.Context) ([]*entity.Offer, error)

	// SetOfferActive toggles the soft-disable flag.
	SetOfferActive(ctx context.Context, id uuid.UUID, active bool) error
}
