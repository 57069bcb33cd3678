package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant boundary. Products and sales always belong to exactly one company.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
