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

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// CreateOffer persists a new offer under a UUIDv7 so that id order is creation order.
func (repo *offerRepository) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	if offer.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate offer id")
		}
		offer.ID = id
	}

	offerM := fromOfferDomain(offer)
	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.Validation("end_date must not be before start_date")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}
	offer.CreatedAt = offerM.CreatedAt

	return nil
}

func (repo *offerRepository) FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

func (repo *offerRepository) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

func (repo *offerRepository) SetOfferActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	return &entity.Offer{
		ID:          data.ID,
		Name:        data.Name,
		StartDate:   entity.TruncateToDate(data.StartDate),
		EndDate:     entity.TruncateToDate(data.EndDate),
		Description: data.Description,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	return &model.OfferModel{
		ID:          data.ID,
		Name:        data.Name,
		StartDate:   entity.TruncateToDate(data.StartDate),
		EndDate:     entity.TruncateToDate(data.EndDate),
		Description: data.Description,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}
