package service

import (
	"time"

	"salesinsight/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID    uuid.UUID   `json:"uid"`
	Role      entity.Role `json:"role"`
	CompanyID *uuid.UUID  `json:"cid,omitempty"`
	Type      string      `json:"typ"`
	jwt.RegisteredClaims
}

// Identity converts verified claims into the caller identity.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{UserID: c.UserID, Role: c.Role, CompanyID: c.CompanyID}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given identity.
	GenerateTokens(identity entity.Identity) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the signature, expiry and type of a token string.
	ValidateToken(tokenString string, tokenType string) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration
}
