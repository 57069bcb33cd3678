package usecase

import (
	"context"
	"time"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
)

// PredictInput selects the forecast horizon and the model call ceiling.
// Zero values select the configured defaults.
type PredictInput struct {
	HorizonMonths int
	Timeout       time.Duration
}

// ForecastUsecase produces offer-annotated predictions from the external model.
type ForecastUsecase interface {
	Predict(ctx context.Context, caller *entity.Identity, companyID uuid.UUID, input PredictInput) (*entity.PredictionSet, error)
	FeatureImportance(ctx context.Context, caller *entity.Identity, companyID uuid.UUID) ([]entity.FeatureImportance, error)
}
