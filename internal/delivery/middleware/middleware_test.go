package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salesinsight/config"
	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "client id kept", header: "abc-123", wantKeep: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "abc 123"},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, fromCtx)
			if tt.wantKeep {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_LogsErrorStatusAndIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/x/products", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	companyID := uuid.New()
	deliverycontext.WithIdentity(c, entity.Identity{UserID: uuid.New(), Role: entity.RoleCompany, CompanyID: &companyID})

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return domainerrors.ErrAuthorization
	})
	assert.ErrorIs(t, handler(c), domainerrors.ErrAuthorization)

	out := buf.String()
	assert.Contains(t, out, `"status":403`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, companyID.String())
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Empty(t, buf.String())
}
