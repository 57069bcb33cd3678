package handler

import (
	"net/http"

	"salesinsight/internal/delivery/api/response"
	"salesinsight/internal/domain/entity"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC    usecase.AdminUsecase
	OfferUC    usecase.OfferUsecase
	TrainingUC usecase.TrainingUsecase
}

// AdminHandler serves the /api/admin routes.
type AdminHandler struct {
	adminUC    usecase.AdminUsecase
	offerUC    usecase.OfferUsecase
	trainingUC usecase.TrainingUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:    params.AdminUC,
		offerUC:    params.OfferUC,
		trainingUC: params.TrainingUC,
	}
}

// GlobalTrainRequest retrains on every tenant, or on one when CompanyID is set.
type GlobalTrainRequest struct {
	CompanyID *uuid.UUID `json:"company_id"`
	Notes     string     `json:"notes" validate:"max=2000"`
}

// CreateCompany handles POST /api/admin/companies.
func (h *AdminHandler) CreateCompany(c echo.Context) error {
	var req usecase.CreateCompanyInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	company, err := h.adminUC.CreateCompany(c.Request().Context(), caller(c), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, company)
}

func (h *AdminHandler) ListCompanies(c echo.Context) error {
	companies, err := h.adminUC.ListCompanies(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, companies)
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req usecase.CreateUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.adminUC.CreateUser(c.Request().Context(), caller(c), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, user)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, users)
}

// SetUserActive handles PATCH /api/admin/users/:id/active.
func (h *AdminHandler) SetUserActive(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req SetActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.adminUC.SetUserActive(c.Request().Context(), caller(c), userID, *req.Active)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUC.Stats(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats)
}

// ListProducts returns the products of every tenant.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.adminUC.ListAllProducts(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateOffer handles POST /api/admin/offers.
func (h *AdminHandler) CreateOffer(c echo.Context) error {
	var req usecase.CreateOfferInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	offer, err := h.offerUC.Create(c.Request().Context(), caller(c), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, offer)
}

// SetOfferActive handles PATCH /api/admin/offers/:id/active.
func (h *AdminHandler) SetOfferActive(c echo.Context) error {
	offerID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req SetActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	offer, err := h.offerUC.SetActive(c.Request().Context(), caller(c), offerID, *req.Active)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offer)
}

// Train handles POST /api/admin/train. An empty body retrains on every tenant.
func (h *AdminHandler) Train(c echo.Context) error {
	var req GlobalTrainRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	run, err := h.trainingUC.Retrain(c.Request().Context(), caller(c), &usecase.RetrainInput{
		Scope: entity.TrainingScope{CompanyID: req.CompanyID},
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, run)
}
