package forecast

import (
	"log/slog"
	"net/http"

	"salesinsight/config"
	"salesinsight/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ModelParams holds dependencies for the ForecastModel, injected by Fx
type ModelParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewForecastModel selects the model implementation from forecast.provider.
func NewForecastModel(params ModelParams) (service.ForecastModel, error) {
	cfg := params.Config.Forecast

	switch cfg.Provider {
	case config.ForecastProviderBaseline, "":
		params.Logger.Info("Using in-process baseline forecasting model")

		return NewBaselineModel(), nil
	case config.ForecastProviderHTTP:
		if cfg.BaseURL == "" {
			return nil, errors.New("forecast.baseUrl is required for the http provider")
		}
		params.Logger.Info("Using HTTP forecasting model", slog.String("base_url", cfg.BaseURL))

		return NewHTTPModel(cfg.BaseURL, &http.Client{Transport: http.DefaultTransport}, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown forecast provider: %s", cfg.Provider)
	}
}

// Module provides the forecasting model FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewForecastModel),
)
