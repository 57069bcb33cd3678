package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel mirrors the 'offers' table. IDs are UUIDv7 so the primary key orders by creation.
type OfferModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(200);not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
