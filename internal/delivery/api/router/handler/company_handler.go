package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"salesinsight/internal/delivery/api/response"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CompanyHandlerParams holds dependencies for CompanyHandler, injected by Fx.
type CompanyHandlerParams struct {
	fx.In

	CatalogUC  usecase.CatalogUsecase
	ForecastUC usecase.ForecastUsecase
	TrainingUC usecase.TrainingUsecase
}

// CompanyHandler serves the tenant-scoped /api/companies/:companyId routes.
// Tenant ownership is enforced by the use cases.
type CompanyHandler struct {
	catalogUC  usecase.CatalogUsecase
	forecastUC usecase.ForecastUsecase
	trainingUC usecase.TrainingUsecase
}

// NewCompanyHandler is the constructor for CompanyHandler
func NewCompanyHandler(params CompanyHandlerParams) *CompanyHandler {
	return &CompanyHandler{
		catalogUC:  params.CatalogUC,
		forecastUC: params.ForecastUC,
		trainingUC: params.TrainingUC,
	}
}

func (h *CompanyHandler) ListProducts(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), caller(c), companyID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products)
}

// DeleteProduct removes a product together with its sale history.
func (h *CompanyHandler) DeleteProduct(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), caller(c), companyID, productID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateProduct corrects a product's price, discount, battery life or feature flags.
func (h *CompanyHandler) UpdateProduct(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), caller(c), companyID, productID, &usecase.UpdateProductInput{
		Price:              req.Price,
		DiscountPrice:      req.DiscountPrice,
		ClearDiscountPrice: req.ClearDiscountPrice,
		BatteryLife:        req.BatteryLife,
		Features:           req.Features,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product)
}

// ListSales handles GET /sales?limit=, most recent months first.
func (h *CompanyHandler) ListSales(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	limit, err := intQuery(c, "limit")
	if err != nil {
		return err
	}

	sales, err := h.catalogUC.ListSales(c.Request().Context(), caller(c), companyID, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, sales)
}

// AddSale ingests one JSON row keyed by CSV column names.
func (h *CompanyHandler) AddSale(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	var body map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
		return domainerrors.Validation("request body must be a JSON object")
	}

	fields, err := rowFields(body)
	if err != nil {
		return err
	}

	result, err := h.catalogUC.AddSale(c.Request().Context(), caller(c), companyID, fields)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, result)
}

// UploadSales handles the multipart CSV upload.
func (h *CompanyHandler) UploadSales(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	upload, err := readUpload(c)
	if err != nil {
		return err
	}

	result, err := h.catalogUC.IngestCSV(c.Request().Context(), caller(c), companyID, upload)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, result)
}

func (h *CompanyHandler) Analytics(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	analytics, err := h.catalogUC.Analytics(c.Request().Context(), caller(c), companyID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, analytics)
}

// Predictions handles GET /predictions?months=&timeout=. Both parameters are optional.
func (h *CompanyHandler) Predictions(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	months, err := intQuery(c, "months")
	if err != nil {
		return err
	}

	timeout, err := durationQuery(c, "timeout")
	if err != nil {
		return err
	}

	predictions, err := h.forecastUC.Predict(c.Request().Context(), caller(c), companyID, usecase.PredictInput{
		HorizonMonths: months,
		Timeout:       timeout,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, predictions)
}

func (h *CompanyHandler) FeatureImportance(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	importance, err := h.forecastUC.FeatureImportance(c.Request().Context(), caller(c), companyID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, importance)
}

// Train retrains the model on this tenant's catalog.
func (h *CompanyHandler) Train(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	var req NotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	run, err := h.trainingUC.Retrain(c.Request().Context(), caller(c), &usecase.RetrainInput{
		Scope: entity.TrainingScope{CompanyID: &companyID},
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, run)
}

// TrainCSV ingests an uploaded file and retrains on the result.
func (h *CompanyHandler) TrainCSV(c echo.Context) error {
	companyID, err := uuidParam(c, "companyId")
	if err != nil {
		return err
	}

	upload, err := readUpload(c)
	if err != nil {
		return err
	}

	output, err := h.trainingUC.TrainFromCSV(c.Request().Context(), caller(c), companyID, upload)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, output)
}

// rowFields flattens a JSON row into the column/value strings the normalizer parses.
func rowFields(body map[string]any) (map[string]string, error) {
	if len(body) == 0 {
		return nil, domainerrors.Validation("request body must contain the sale columns")
	}

	fields := make(map[string]string, len(body))
	for column, value := range body {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			fields[column] = v
		case float64:
			fields[column] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			fields[column] = strconv.FormatBool(v)
		default:
			return nil, domainerrors.Validation(fmt.Sprintf("column %q must be a string, number or boolean", column))
		}
	}

	return fields, nil
}
