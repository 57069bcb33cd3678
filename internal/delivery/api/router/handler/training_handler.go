package handler

import (
	"net/http"
	"strings"

	"salesinsight/internal/delivery/api/response"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrainingHandlerParams holds dependencies for TrainingHandler, injected by Fx.
type TrainingHandlerParams struct {
	fx.In

	TrainingUC usecase.TrainingUsecase
}

// TrainingHandler exposes the training ledger.
type TrainingHandler struct {
	trainingUC usecase.TrainingUsecase
}

// NewTrainingHandler is the constructor for TrainingHandler
func NewTrainingHandler(params TrainingHandlerParams) *TrainingHandler {
	return &TrainingHandler{trainingUC: params.TrainingUC}
}

// History handles GET /api/training/history?limit=&order=asc|desc.
func (h *TrainingHandler) History(c echo.Context) error {
	limit, err := intQuery(c, "limit")
	if err != nil {
		return err
	}

	order := usecase.HistoryOrder(strings.ToLower(strings.TrimSpace(c.QueryParam("order"))))
	switch order {
	case "":
		order = usecase.HistoryNewestFirst
	case usecase.HistoryNewestFirst, usecase.HistoryChronological:
	default:
		return domainerrors.Validation("order must be asc or desc")
	}

	runs, err := h.trainingUC.History(c.Request().Context(), caller(c), usecase.HistoryQuery{Limit: limit, Order: order})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, runs)
}

// Current returns the latest run, or null data before the first one.
func (h *TrainingHandler) Current(c echo.Context) error {
	run, err := h.trainingUC.Current(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, run)
}
