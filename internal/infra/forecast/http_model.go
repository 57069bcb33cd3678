// Package forecast adapts the statistical forecasting model behind the domain ForecastModel interface.
package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"salesinsight/internal/domain/service"

	"github.com/pkg/errors"
)

const maxResponseBytes = 4 << 20

// httpModel talks JSON to a model service exposing /train, /predict and /feature-importance.
type httpModel struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type predictRequest struct {
	Product *service.ProductHistory `json:"product"`
	Horizon int                     `json:"horizon"`
}

type predictResponse struct {
	Predictions []service.MonthlyPrediction `json:"predictions"`
}

type trainResponse struct {
	Accuracy *float64 `json:"accuracy"`
}

type importanceResponse struct {
	Features []service.FeatureWeight `json:"features"`
}

// NewHTTPModel creates a client for the model service at baseURL.
// The client carries no timeout of its own: every call is bounded by the caller's context.
func NewHTTPModel(baseURL string, httpClient *http.Client, logger *slog.Logger) service.ForecastModel {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &httpModel{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (m *httpModel) Train(ctx context.Context, dataset *service.TrainingDataset) (float64, error) {
	var resp trainResponse
	if err := m.post(ctx, "/train", dataset, &resp); err != nil {
		return 0, err
	}
	if resp.Accuracy == nil {
		return 0, errors.Wrap(service.ErrMalformedModelResponse, "accuracy missing")
	}

	return *resp.Accuracy, nil
}

func (m *httpModel) Predict(ctx context.Context, history *service.ProductHistory, horizon int) ([]service.MonthlyPrediction, error) {
	var resp predictResponse
	if err := m.post(ctx, "/predict", predictRequest{Product: history, Horizon: horizon}, &resp); err != nil {
		return nil, err
	}

	if err := checkPredictions(resp.Predictions, horizon); err != nil {
		return nil, err
	}

	return resp.Predictions, nil
}

func (m *httpModel) FeatureImportance(ctx context.Context, dataset *service.TrainingDataset) ([]service.FeatureWeight, error) {
	var resp importanceResponse
	if err := m.post(ctx, "/feature-importance", dataset, &resp); err != nil {
		return nil, err
	}

	for _, weight := range resp.Features {
		if strings.TrimSpace(weight.Feature) == "" {
			return nil, errors.Wrap(service.ErrMalformedModelResponse, "feature name missing")
		}
	}

	return resp.Features, nil
}

// checkPredictions requires exactly one row per month index 1..horizon.
func checkPredictions(predictions []service.MonthlyPrediction, horizon int) error {
	if len(predictions) != horizon {
		return errors.Wrapf(service.ErrMalformedModelResponse, "expected %d predictions, got %d", horizon, len(predictions))
	}

	seen := make([]bool, horizon+1)
	for _, p := range predictions {
		if p.MonthIndex < 1 || p.MonthIndex > horizon || seen[p.MonthIndex] {
			return errors.Wrapf(service.ErrMalformedModelResponse, "unexpected month index %d", p.MonthIndex)
		}
		seen[p.MonthIndex] = true
	}

	return nil
}

func (m *httpModel) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		m.logger.WarnContext(ctx, "Forecast model returned an error status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return errors.Errorf("model %s returned status %d: %s", path, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return errors.Wrap(service.ErrMalformedModelResponse, fmt.Sprintf("decode %s: %v", path, err))
	}

	return nil
}
