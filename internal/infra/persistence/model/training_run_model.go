package model

import (
	"time"

	"github.com/google/uuid"
)

// TrainingRunModel mirrors the append-only 'training_runs' table.
type TrainingRunModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	TrainingDate time.Time `gorm:"not null;index"`
	Accuracy     float64   `gorm:"type:double precision;not null"`
	Notes        string    `gorm:"type:text;not null;default:''"`
	Source       string    `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (TrainingRunModel) TableName() string {
	return "training_runs"
}
