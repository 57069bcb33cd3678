package middleware

import (
	"strings"

	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token to an identity.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate rejects requests without a valid access token and stores the caller identity otherwise.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthenticated
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token == "" {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.WithIdentity(c, *identity)

		return next(c)
	}
}

// RequireRole admits only callers holding role. It must run after Authenticate.
func RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return domainerrors.ErrUnauthenticated
			}

			if identity.Role != role {
				return domainerrors.Authorization("this endpoint requires the " + string(role) + " role")
			}

			return next(c)
		}
	}
}
