package handler

import (
	"net/http"

	"salesinsight/config"
	"salesinsight/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// InfoHandlerParams holds dependencies for InfoHandler, injected by Fx.
type InfoHandlerParams struct {
	fx.In

	Config *config.Config
}

// InfoHandler describes the running service.
type InfoHandler struct {
	cfg *config.Config
}

// NewInfoHandler is the constructor for InfoHandler
func NewInfoHandler(params InfoHandlerParams) *InfoHandler {
	return &InfoHandler{cfg: params.Config}
}

// ServiceInfo is the public description returned by /api/info.
type ServiceInfo struct {
	Name             string `json:"name"`
	Version          string `json:"version"`
	Environment      string `json:"environment"`
	StorageDriver    string `json:"storage_driver"`
	ForecastProvider string `json:"forecast_provider"`
	MaxHorizonMonths int    `json:"max_horizon_months"`
}

func (h *InfoHandler) Info(c echo.Context) error {
	return response.Success(c, http.StatusOK, ServiceInfo{
		Name:             h.cfg.Env.ServiceName,
		Version:          h.cfg.Env.Version,
		Environment:      h.cfg.Env.Env,
		StorageDriver:    h.cfg.Storage.Driver,
		ForecastProvider: h.cfg.Forecast.Provider,
		MaxHorizonMonths: h.cfg.Forecast.MaxHorizon,
	})
}
