package forecast

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleHistory() *service.ProductHistory {
	return &service.ProductHistory{
		ProductID: uuid.New(),
		ModelName: "Watch Pro",
		History: []service.HistoryPoint{
			{Month: entity.Month{Year: 2026, Month: time.January}, SalesCount: 100},
			{Month: entity.Month{Year: 2026, Month: time.February}, SalesCount: 120},
		},
	}
}

func TestHTTPModel_Predict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)

		var req predictRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Horizon)
		assert.Len(t, req.Product.History, 2)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{
				{"month": 2, "predicted_sales": 130.4, "confidence": 0.7},
				{"month": 1, "predicted_sales": 125.0, "confidence": 0.8},
			},
		})
	}))
	defer server.Close()

	model := NewHTTPModel(server.URL+"/", server.Client(), newDiscardLogger())

	predictions, err := model.Predict(context.Background(), sampleHistory(), 2)
	require.NoError(t, err)
	require.Len(t, predictions, 2)
	assert.Equal(t, 2, predictions[0].MonthIndex)
	assert.InDelta(t, 130.4, predictions[0].PredictedSales, 1e-9)
}

func TestHTTPModel_PredictMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>"},
		{name: "wrong count", body: `{"predictions":[{"month":1,"predicted_sales":1,"confidence":1}]}`},
		{name: "duplicate index", body: `{"predictions":[{"month":1},{"month":1}]}`},
		{name: "index out of range", body: `{"predictions":[{"month":1},{"month":3}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			model := NewHTTPModel(server.URL, server.Client(), newDiscardLogger())
			_, err := model.Predict(context.Background(), sampleHistory(), 2)
			assert.ErrorIs(t, err, service.ErrMalformedModelResponse)
		})
	}
}

func TestHTTPModel_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	model := NewHTTPModel(server.URL, server.Client(), newDiscardLogger())
	_, err := model.Train(context.Background(), &service.TrainingDataset{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.NotErrorIs(t, err, service.ErrMalformedModelResponse)
}

func TestHTTPModel_DeadlineExceeded(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	model := NewHTTPModel(server.URL, server.Client(), newDiscardLogger())
	_, err := model.Predict(ctx, sampleHistory(), 1)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHTTPModel_TrainAndImportance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/train":
			_, _ = io.WriteString(w, `{"accuracy":0.87}`)
		case "/feature-importance":
			_, _ = io.WriteString(w, `{"features":[{"feature":"heart_rate","importance":0.4,"impact":"+12.0%"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	model := NewHTTPModel(server.URL, server.Client(), newDiscardLogger())

	accuracy, err := model.Train(context.Background(), &service.TrainingDataset{})
	require.NoError(t, err)
	assert.InDelta(t, 0.87, accuracy, 1e-9)

	weights, err := model.FeatureImportance(context.Background(), &service.TrainingDataset{})
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, "+12.0%", weights[0].Impact)
}

func TestHTTPModel_TrainWithoutAccuracy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	model := NewHTTPModel(server.URL, server.Client(), newDiscardLogger())
	_, err := model.Train(context.Background(), &service.TrainingDataset{})
	assert.ErrorIs(t, err, service.ErrMalformedModelResponse)
}
