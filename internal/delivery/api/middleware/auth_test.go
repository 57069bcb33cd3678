package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	mockUC "salesinsight/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/offers", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	companyID := uuid.New()
	identity := &entity.Identity{UserID: uuid.New(), Role: entity.RoleCompany, CompanyID: &companyID}

	t.Run("stores the identity", func(t *testing.T) {
		authUC := mockUC.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "abc.def.ghi").Return(identity, nil)

		c, _ := newAuthContext("bearer  abc.def.ghi ")
		var seen *entity.Identity
		err := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC}).Authenticate(func(c echo.Context) error {
			seen = deliverycontext.GetIdentityFromContext(c.Request().Context())

			return nil
		})(c)

		require.NoError(t, err)
		require.NotNil(t, seen)
		assert.Equal(t, *identity, *seen)
		assert.Equal(t, identity, deliverycontext.GetIdentity(c))
	})

	for _, header := range []string{"", "Bearer ", "Basic dXNlcjpwYXNz", "Bearer    "} {
		t.Run("rejects "+header, func(t *testing.T) {
			c, _ := newAuthContext(header)
			err := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockUC.NewMockAuthUsecase(t)}).Authenticate(func(echo.Context) error {
				t.Fatal("next must not run")

				return nil
			})(c)

			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}

	t.Run("propagates the use case error", func(t *testing.T) {
		authUC := mockUC.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthenticated)

		c, _ := newAuthContext("Bearer expired")
		err := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC}).Authenticate(func(echo.Context) error { return nil })(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestRequireRole(t *testing.T) {
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c, _ := newAuthContext("")
	assert.ErrorIs(t, RequireRole(entity.RoleAdmin)(next)(c), domainerrors.ErrUnauthenticated)

	c, _ = newAuthContext("")
	deliverycontext.WithIdentity(c, entity.Identity{UserID: uuid.New(), Role: entity.RoleCompany})
	err := RequireRole(entity.RoleAdmin)(next)(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")

	c, rec := newAuthContext("")
	deliverycontext.WithIdentity(c, entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, RequireRole(entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
