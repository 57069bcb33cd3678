package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is one forecast month for one product. It is computed per request and never stored.
type Prediction struct {
	ProductID      uuid.UUID `json:"product_id"`
	MonthIndex     int       `json:"month_index"` // 1..horizon, relative to the last known month.
	Month          Month     `json:"month"`
	PredictedSales int64     `json:"predicted_sales"`
	Confidence     float64   `json:"confidence"`
	HasActiveOffer bool      `json:"has_active_offer"`
	OfferName      *string   `json:"offer_name"`
}

// ForecastSummary aggregates the predictions of one product or of a whole set.
type ForecastSummary struct {
	TotalPredictedUnits int64   `json:"total_predicted_units"`
	AverageConfidence   float64 `json:"average_confidence"`
	PromotionalMonths   int     `json:"promotional_months"`
	PeakMonthIndex      int     `json:"peak_month_index,omitempty"`
}

// ProductForecast holds the annotated predictions of one product.
type ProductForecast struct {
	ProductID      uuid.UUID       `json:"product_id"`
	ModelName      string          `json:"model_name"`
	Region         string          `json:"region"`
	LastKnownMonth Month           `json:"last_known_month"`
	Predictions    []Prediction    `json:"predictions"`
	Summary        ForecastSummary `json:"summary"`
}

// PredictionSet is the result of one forecast request for one company.
type PredictionSet struct {
	CompanyID       uuid.UUID         `json:"company_id"`
	HorizonMonths   int               `json:"horizon_months"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Products        []ProductForecast `json:"products"`
	SkippedProducts int               `json:"skipped_products"` // Products without any sales history.
	Summary         ForecastSummary   `json:"summary"`
}

// FeatureImportance is the model's weight for one product feature.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Impact     string  `json:"impact"`
	Importance float64 `json:"importance"` // Normalized weight in [0, 1].
}
