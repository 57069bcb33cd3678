package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Admins carry a NULL company_id.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Role         string     `gorm:"type:varchar(16);not null"`
	CompanyID    *uuid.UUID `gorm:"type:uuid;index"`
	IsActive     bool       `gorm:"not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
