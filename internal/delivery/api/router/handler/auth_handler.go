package handler

import (
	"net/http"

	"salesinsight/internal/delivery/api/response"
	"salesinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthHandler serves login and token refresh.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC}
}

// Login exchanges email and password for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output)
}

// Refresh exchanges a refresh token for a new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req usecase.RefreshInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Refresh(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.authUC.Me(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user)
}
