package service

import (
	"context"

	"github.com/google/uuid"
)

// Archiver keeps a copy of every uploaded file.
type Archiver interface {
	// Store writes data and returns the object key.
	Store(ctx context.Context, companyID uuid.UUID, filename string, data []byte) (string, error)
}
