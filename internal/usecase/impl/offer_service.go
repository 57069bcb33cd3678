package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/access"
	"salesinsight/internal/domain/campaign"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const offerDateLayout = "2006-01-02"

type offerService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		txManager: params.TxManager,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new offer, enabled. The end date may equal the start date for a one-day campaign.
func (srv *offerService) Create(ctx context.Context, caller *entity.Identity, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.Validation("offer name is required")
	}
	start, err := time.Parse(offerDateLayout, strings.TrimSpace(input.StartDate))
	if err != nil {
		return nil, domainerrors.Validation("start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(offerDateLayout, strings.TrimSpace(input.EndDate))
	if err != nil {
		return nil, domainerrors.Validation("end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, domainerrors.Validation("end_date must not be before start_date")
	}

	offer := &entity.Offer{
		Name:        name,
		StartDate:   start,
		EndDate:     end,
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.OfferRepo().CreateOffer(ctx, offer), "failed to create offer")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Offer created",
		slog.Any("offerID", offer.ID),
		slog.String("name", offer.Name),
		slog.String("start", input.StartDate),
		slog.String("end", input.EndDate),
	)

	return offer, nil
}

func (srv *offerService) List(ctx context.Context, caller *entity.Identity) ([]*entity.Offer, error) {
	if err := access.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	return srv.list(ctx)
}

func (srv *offerService) Active(ctx context.Context, caller *entity.Identity) ([]*entity.Offer, error) {
	if err := access.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	offers, err := srv.list(ctx)
	if err != nil {
		return nil, err
	}

	return campaign.ActiveOffersFor(offers, srv.now().UTC()), nil
}

func (srv *offerService) SetActive(ctx context.Context, caller *entity.Identity, offerID uuid.UUID, active bool) (*entity.Offer, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	var offer *entity.Offer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		setErr := offerRepo.SetOfferActive(ctx, offerID, active)
		if errors.Is(setErr, repository.ErrOfferNotFound) {
			return domainerrors.NotFound("offer", offerID)
		}
		if setErr != nil {
			return errors.Wrap(setErr, "failed to update offer")
		}

		var findErr error
		offer, findErr = offerRepo.FindOfferByID(ctx, offerID)

		return errors.Wrap(findErr, "failed to reload offer")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Offer activation changed", slog.Any("offerID", offerID), slog.Bool("active", active))

	return offer, nil
}

func (srv *offerService) list(ctx context.Context) ([]*entity.Offer, error) {
	var offers []*entity.Offer
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var listErr error
		offers, listErr = snapshot.OfferRepo().ListOffers(ctx)

		return errors.Wrap(listErr, "failed to list offers")
	})
	if err != nil {
		return nil, err
	}

	return offers, nil
}
