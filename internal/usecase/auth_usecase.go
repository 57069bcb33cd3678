// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"salesinsight/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries a refresh token to exchange for a new token pair.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthOutput returns the generated tokens together with the account they belong to.
type AuthOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"` // Access token lifetime in seconds.
	User         *entity.User `json:"user"`
}

// AuthUsecase defines authentication operations. There is no public sign-up: accounts are created by admins.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error)

	// Authenticate verifies an access token and returns the identity of an existing, active account.
	Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error)

	// Me returns the caller's account.
	Me(ctx context.Context, caller *entity.Identity) (*entity.User, error)

	// BootstrapAdmin creates the configured admin account when no account uses its email yet.
	BootstrapAdmin(ctx context.Context) error
}
