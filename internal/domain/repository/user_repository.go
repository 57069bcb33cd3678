package repository

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// CreateUser persists a new user. Emails are unique.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by (lower-cased) email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListUsers returns all users ordered by creation time.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// SetUserActive toggles the is_active flag.
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) error

	// CountUsers returns the number of users.
	CountUsers(ctx context.Context) (int64, error)
}
