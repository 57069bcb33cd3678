// Package model holds the GORM persistence structs. They are exported so the GORM Gen tool can read them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel mirrors the 'companies' table.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(200);not null"`
	CreatedAt time.Time

	Users    []UserModel    `gorm:"foreignKey:CompanyID"`
	Products []ProductModel `gorm:"foreignKey:CompanyID"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
