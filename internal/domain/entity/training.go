package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrainingSource records what triggered a training run.
type TrainingSource string

const (
	// TrainingSourceManual is an explicit retrain request.
	TrainingSourceManual TrainingSource = "manual"
	// TrainingSourceCSV is a retrain triggered by a CSV upload.
	TrainingSourceCSV TrainingSource = "csv"
)

// IsValid checks if the source is known.
func (s TrainingSource) IsValid() bool {
	return s == TrainingSourceManual || s == TrainingSourceCSV
}

// TrainingRun is an append-only record of one model retraining.
type TrainingRun struct {
	ID           uuid.UUID      `json:"id"`
	TrainingDate time.Time      `json:"training_date"` // Set when training completes.
	Accuracy     float64        `json:"accuracy"`      // In [0, 1].
	Notes        string         `json:"notes"`
	Source       TrainingSource `json:"source"`
}

// TrainingScope selects the dataset for a retrain: one company or every company.
type TrainingScope struct {
	CompanyID *uuid.UUID
}

// IsGlobal reports whether the scope covers all tenants.
func (s TrainingScope) IsGlobal() bool {
	return s.CompanyID == nil
}
