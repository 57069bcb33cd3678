package usecase

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOfferInput defines a company-wide promotional campaign. Dates are inclusive calendar days.
type CreateOfferInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"max=2000"`
}

// OfferUsecase manages campaigns. Creation and toggling are admin-only; reads are open to any caller.
type OfferUsecase interface {
	Create(ctx context.Context, caller *entity.Identity, input *CreateOfferInput) (*entity.Offer, error)
	List(ctx context.Context, caller *entity.Identity) ([]*entity.Offer, error)

	// Active returns the enabled offers covering today, most recently created first.
	Active(ctx context.Context, caller *entity.Identity) ([]*entity.Offer, error)

	SetActive(ctx context.Context, caller *entity.Identity, offerID uuid.UUID, active bool) (*entity.Offer, error)
}
