package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salesinsight/config"
	"salesinsight/internal/delivery/api/middleware"
	"salesinsight/internal/delivery/api/router"
	"salesinsight/internal/delivery/api/router/handler"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/infra/metrics"
	mockUC "salesinsight/internal/mocks/usecase"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixtures struct {
	echo       *echo.Echo
	auth       *mockUC.MockAuthUsecase
	admin      *mockUC.MockAdminUsecase
	catalog    *mockUC.MockCatalogUsecase
	forecast   *mockUC.MockForecastUsecase
	offers     *mockUC.MockOfferUsecase
	training   *mockUC.MockTrainingUsecase
	companyID  uuid.UUID
	companyTok string
	adminTok   string
}

func newAPIFixtures(t *testing.T) *apiFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1K"
	cfg.Ingest.MaxUploadSize = "1M"
	cfg.Metrics = config.MetricsConfig{Enabled: true}
	cfg.Env.ServiceName = "salesinsight"

	fx := &apiFixtures{
		auth:       mockUC.NewMockAuthUsecase(t),
		admin:      mockUC.NewMockAdminUsecase(t),
		catalog:    mockUC.NewMockCatalogUsecase(t),
		forecast:   mockUC.NewMockForecastUsecase(t),
		offers:     mockUC.NewMockOfferUsecase(t),
		training:   mockUC.NewMockTrainingUsecase(t),
		companyID:  uuid.New(),
		companyTok: "company-token",
		adminTok:   "admin-token",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx.echo = newEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		RouterParams: router.RouterParams{
			AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.auth}),
			AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: fx.admin, OfferUC: fx.offers, TrainingUC: fx.training}),
			CompanyHandler:  handler.NewCompanyHandler(handler.CompanyHandlerParams{CatalogUC: fx.catalog, ForecastUC: fx.forecast, TrainingUC: fx.training}),
			OfferHandler:    handler.NewOfferHandler(handler.OfferHandlerParams{OfferUC: fx.offers}),
			TrainingHandler: handler.NewTrainingHandler(handler.TrainingHandlerParams{TrainingUC: fx.training}),
			InfoHandler:     handler.NewInfoHandler(handler.InfoHandlerParams{Config: cfg}),
			AuthMiddleware:  middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: fx.auth}),
			Config:          cfg,
		},
	})

	return fx
}

func (fx *apiFixtures) companyIdentity() *entity.Identity {
	companyID := fx.companyID

	return &entity.Identity{UserID: uuid.MustParse("0193e0b2-7c1a-7000-8000-000000000001"), Role: entity.RoleCompany, CompanyID: &companyID}
}

func (fx *apiFixtures) adminIdentity() *entity.Identity {
	return &entity.Identity{UserID: uuid.MustParse("0193e0b2-7c1a-7000-8000-000000000002"), Role: entity.RoleAdmin}
}

func (fx *apiFixtures) asCompany() string {
	fx.auth.EXPECT().Authenticate(mock.Anything, fx.companyTok).Return(fx.companyIdentity(), nil)

	return fx.companyTok
}

func (fx *apiFixtures) asAdmin() string {
	fx.auth.EXPECT().Authenticate(mock.Anything, fx.adminTok).Return(fx.adminIdentity(), nil)

	return fx.adminTok
}

func (fx *apiFixtures) do(t *testing.T, method, path, token string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (fx *apiFixtures) companyPath(suffix string) string {
	return "/api/companies/" + fx.companyID.String() + suffix
}

func TestServer_PublicRoutes(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, _ := fx.do(t, http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodGet, "/api/info", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"salesinsight"`)
	assert.NotEmpty(t, env.Meta.RequestID)

	rec, _ = fx.do(t, http.MethodGet, "/metrics", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "salesinsight_http_requests_total")

	rec, env = fx.do(t, http.MethodGet, "/nope", "", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
}

func TestServer_Authentication(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodGet, "/api/offers", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)

	fx.auth.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrUserInactive)
	rec, env = fx.do(t, http.MethodGet, "/api/offers", "stale", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "USER_INACTIVE", env.Error.Code)

	// A company caller is stopped at the admin group.
	token := fx.asCompany()
	rec, env = fx.do(t, http.MethodGet, "/api/admin/stats", token, nil, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "AUTHORIZATION_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestServer_Login(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodPost, "/api/auth/login", "", strings.NewReader(`{"email":"not-an-email"}`), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email must be a valid email address")
	assert.Contains(t, env.Error.Details, "password is required")

	fx.auth.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ops@acme.io", Password: "correct-horse"}).
		Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, nil)

	rec, env = fx.do(t, http.MethodPost, "/api/auth/login", "", strings.NewReader(`{"email":"ops@acme.io","password":"correct-horse"}`), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"access_token":"access"`)

	oversized := `{"email":"ops@acme.io","password":"` + strings.Repeat("x", 2048) + `"}`
	rec, env = fx.do(t, http.MethodPost, "/api/auth/login", "", strings.NewReader(oversized), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", env.Error.Code)
}

func TestServer_CompanySales(t *testing.T) {
	fx := newAPIFixtures(t)
	token := fx.asCompany()

	fx.catalog.EXPECT().ListSales(mock.Anything, fx.companyIdentity(), fx.companyID, 25).Return([]*entity.CompanySale{}, nil)
	rec, _ := fx.do(t, http.MethodGet, fx.companyPath("/sales?limit=25"), token, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodGet, fx.companyPath("/sales?limit=many"), token, nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "limit must be an integer", env.Error.Details)

	fx.catalog.EXPECT().
		AddSale(mock.Anything, fx.companyIdentity(), fx.companyID, map[string]string{
			"Model":       "Watch Pro",
			"Sales_Count": "150",
			"Month":       "2026-01",
			"Price_Rs":    "4999.5",
			"Waterproof":  "true",
		}).
		Return(&entity.IngestResult{RowsSucceeded: 1, SalesAdded: 1}, nil)

	body := `{"Model":"Watch Pro","Sales_Count":150,"Month":"2026-01","Price_Rs":4999.5,"Waterproof":true,"Region":null}`
	rec, _ = fx.do(t, http.MethodPost, fx.companyPath("/sales"), token, strings.NewReader(body), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env = fx.do(t, http.MethodPost, fx.companyPath("/sales"), token, strings.NewReader(`{"Model":["a"]}`), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_UpdateProduct(t *testing.T) {
	fx := newAPIFixtures(t)
	token := fx.asCompany()
	productID := uuid.New()
	path := fx.companyPath("/products/" + productID.String())

	fx.catalog.EXPECT().
		UpdateProduct(mock.Anything, fx.companyIdentity(), fx.companyID, productID,
			mock.MatchedBy(func(input *usecase.UpdateProductInput) bool {
				return input.Price != nil && input.Price.Equal(decimal.NewFromInt(24999)) &&
					input.DiscountPrice == nil && input.ClearDiscountPrice &&
					input.BatteryLife == nil && input.Features["GPS"]
			})).
		Return(&entity.Product{ID: productID, ModelName: "Watch Pro", Price: decimal.NewFromInt(24999)}, nil)

	body := `{"price":"24999","clear_discount_price":true,"features":{"GPS":true}}`
	rec, env := fx.do(t, http.MethodPut, path, token, strings.NewReader(body), echo.MIMEApplicationJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var product entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, productID, product.ID)

	fx.catalog.EXPECT().
		UpdateProduct(mock.Anything, mock.Anything, fx.companyID, productID, mock.Anything).
		Return(nil, domainerrors.NotFound("product", productID))

	rec, env = fx.do(t, http.MethodPut, path, token, strings.NewReader(`{"battery_life":7}`), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec, env = fx.do(t, http.MethodPut, path, token, strings.NewReader(`{"price":`), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_UploadSales(t *testing.T) {
	fx := newAPIFixtures(t)
	token := fx.asCompany()

	csv := "Model,Sales_Count,Month,Price_Rs\nWatch Pro,abc,2026-01,4999\n"
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "january.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("notes", " january import "))
	require.NoError(t, writer.Close())

	failed := &domainerrors.IngestionFailedError{Result: &entity.IngestResult{
		Failures: []entity.RowFailure{{Row: 2, Field: "sales_count", Kind: entity.FailureType, Reason: "not an integer"}},
	}}
	fx.catalog.EXPECT().
		IngestCSV(mock.Anything, fx.companyIdentity(), fx.companyID, &usecase.UploadInput{
			Filename: "january.csv",
			Data:     []byte(csv),
			Notes:    "january import",
		}).
		Return(nil, failed)

	rec, env := fx.do(t, http.MethodPost, fx.companyPath("/sales/upload"), token, &buf, writer.FormDataContentType())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "INGESTION_FAILED", env.Error.Code)
	assert.Equal(t, "row 2 sales_count: not an integer", env.Error.Details)

	rec, env = fx.do(t, http.MethodPost, fx.companyPath("/sales/upload"), token, strings.NewReader(""), echo.MIMEMultipartForm+"; boundary=x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_Predictions(t *testing.T) {
	fx := newAPIFixtures(t)
	token := fx.asCompany()

	fx.forecast.EXPECT().
		Predict(mock.Anything, fx.companyIdentity(), fx.companyID, usecase.PredictInput{HorizonMonths: 3, Timeout: 2 * time.Second}).
		Return(&entity.PredictionSet{}, nil)
	rec, _ := fx.do(t, http.MethodGet, fx.companyPath("/predictions?months=3&timeout=2"), token, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	fx.forecast.EXPECT().
		Predict(mock.Anything, fx.companyIdentity(), fx.companyID, usecase.PredictInput{Timeout: 1500 * time.Millisecond}).
		Return(nil, domainerrors.ErrUpstreamTimeout)
	rec, env := fx.do(t, http.MethodGet, fx.companyPath("/predictions?timeout=1500ms"), token, nil, "")
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "UPSTREAM_TIMEOUT", env.Error.Code)

	rec, env = fx.do(t, http.MethodGet, fx.companyPath("/predictions?timeout=soon"), token, nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = fx.do(t, http.MethodGet, "/api/companies/not-a-uuid/predictions", token, nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "companyId must be a UUID", env.Error.Details)
}

func TestServer_TrainingHistory(t *testing.T) {
	fx := newAPIFixtures(t)
	token := fx.asAdmin()

	fx.training.EXPECT().
		History(mock.Anything, fx.adminIdentity(), usecase.HistoryQuery{Limit: 5, Order: usecase.HistoryChronological}).
		Return([]*entity.TrainingRun{}, nil)
	rec, _ := fx.do(t, http.MethodGet, "/api/training/history?limit=5&order=ASC", token, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodGet, "/api/training/history?order=sideways", token, nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "order must be asc or desc", env.Error.Details)

	fx.training.EXPECT().Current(mock.Anything, fx.adminIdentity()).Return(nil, nil)
	rec, env = fx.do(t, http.MethodGet, "/api/training/current", token, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(env.Data))
}

func TestServer_AdminRoutes(t *testing.T) {
	fx := newAPIFixtures(t)
	token := fx.asAdmin()

	fx.admin.EXPECT().
		SetUserActive(mock.Anything, fx.adminIdentity(), fx.companyID, false).
		Return(&entity.User{ID: fx.companyID}, nil)
	rec, _ := fx.do(t, http.MethodPatch, "/api/admin/users/"+fx.companyID.String()+"/active", token, strings.NewReader(`{"active":false}`), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodPatch, "/api/admin/offers/"+fx.companyID.String()+"/active", token, strings.NewReader(`{}`), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "active is required", env.Error.Details)

	fx.training.EXPECT().
		Retrain(mock.Anything, fx.adminIdentity(), &usecase.RetrainInput{Notes: "quarterly"}).
		Return(&entity.TrainingRun{Accuracy: 0.9}, nil)
	rec, _ = fx.do(t, http.MethodPost, "/api/admin/train", token, strings.NewReader(`{"notes":"quarterly"}`), echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusCreated, rec.Code)

	fx.admin.EXPECT().ListCompanies(mock.Anything, fx.adminIdentity()).Return(nil, errors.New("connection reset"))
	rec, env = fx.do(t, http.MethodGet, "/api/admin/companies", token, nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
