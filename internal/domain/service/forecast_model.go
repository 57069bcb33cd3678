package service

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMalformedModelResponse is returned when the model answers with data that breaks its contract.
var ErrMalformedModelResponse = errors.New("malformed forecasting model response")

// HistoryPoint is one month of observed sales.
type HistoryPoint struct {
	Month      entity.Month `json:"month"`
	SalesCount int64        `json:"sales_count"`
	Revenue    float64      `json:"revenue"`
}

// ProductHistory is the model input for one product, ordered by month ascending.
type ProductHistory struct {
	ProductID      uuid.UUID       `json:"product_id"`
	CompanyID      uuid.UUID       `json:"company_id"`
	ModelName      string          `json:"model_name"`
	Region         string          `json:"region"`
	Price          float64         `json:"price"`
	EffectivePrice float64         `json:"effective_price"`
	BatteryLife    *float64        `json:"battery_life,omitempty"`
	Features       map[string]bool `json:"features"`
	History        []HistoryPoint  `json:"history"`
}

// TrainingDataset is every product history in scope of a retrain or an importance query.
type TrainingDataset struct {
	CompanyID *uuid.UUID       `json:"company_id,omitempty"` // nil for a global retrain
	Products  []ProductHistory `json:"products"`
}

// MonthlyPrediction is one raw model output row.
type MonthlyPrediction struct {
	MonthIndex     int     `json:"month"` // 1-based, relative to the last history month
	PredictedSales float64 `json:"predicted_sales"`
	Confidence     float64 `json:"confidence"`
}

// FeatureWeight is one raw feature importance row.
type FeatureWeight struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
	Impact     string  `json:"impact,omitempty"`
}

// ForecastModel is the boundary to the statistical model.
type ForecastModel interface {
	// Train fits the model on the dataset and returns its accuracy in [0, 1].
	Train(ctx context.Context, dataset *TrainingDataset) (float64, error)

	// Predict returns horizon rows for the product history.
	Predict(ctx context.Context, history *ProductHistory, horizon int) ([]MonthlyPrediction, error)

	// FeatureImportance returns the model's feature weights for the tenant whose catalog is dataset.
	FeatureImportance(ctx context.Context, dataset *TrainingDataset) ([]FeatureWeight, error)
}
