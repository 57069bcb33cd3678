package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	*repositoryFactory
}

func (repo *userRepository) CreateUser(_ context.Context, user *entity.User) error {
	if err := repo.writable(); err != nil {
		return err
	}

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range repo.state.users {
		if existing.Email == user.Email {
			return repository.ErrUserAlreadyExists
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = user.CreatedAt
	repo.state.users[user.ID] = copyUser(user)

	return nil
}

func (repo *userRepository) FindUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := repo.state.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := copyUser(&user)

	return &found, nil
}

func (repo *userRepository) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range repo.state.users {
		if user.Email == email {
			found := copyUser(&user)

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) ListUsers(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(repo.state.users))
	for _, user := range repo.state.users {
		found := copyUser(&user)
		users = append(users, &found)
	}
	slices.SortFunc(users, func(a, b *entity.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.Email, b.Email)
	})

	return users, nil
}

func (repo *userRepository) SetUserActive(_ context.Context, id uuid.UUID, active bool) error {
	if err := repo.writable(); err != nil {
		return err
	}

	user, ok := repo.state.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()
	repo.state.users[id] = user

	return nil
}

func (repo *userRepository) CountUsers(_ context.Context) (int64, error) {
	return int64(len(repo.state.users)), nil
}

func copyUser(user *entity.User) entity.User {
	copied := *user
	if user.CompanyID != nil {
		companyID := *user.CompanyID
		copied.CompanyID = &companyID
	}

	return copied
}
