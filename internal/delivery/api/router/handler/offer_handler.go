package handler

import (
	"net/http"

	"salesinsight/internal/delivery/api/response"
	"salesinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
}

// OfferHandler serves the read-only offer routes open to every role.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{offerUC: params.OfferUC}
}

func (h *OfferHandler) List(c echo.Context) error {
	offers, err := h.offerUC.List(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offers)
}

// Active returns the enabled offers covering today.
func (h *OfferHandler) Active(c echo.Context) error {
	offers, err := h.offerUC.Active(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offers)
}
