package forecast

import (
	"context"
	"testing"

	"salesinsight/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineModel_Predict(t *testing.T) {
	model := NewBaselineModel()
	history := &service.ProductHistory{History: []service.HistoryPoint{
		{SalesCount: 90}, {SalesCount: 100}, {SalesCount: 110}, {SalesCount: 120},
	}}

	predictions, err := model.Predict(context.Background(), history, 3)
	require.NoError(t, err)
	require.Len(t, predictions, 3)

	// Window 100,110,120: mean 110, trend 10 per month.
	assert.Equal(t, 1, predictions[0].MonthIndex)
	assert.InDelta(t, 120, predictions[0].PredictedSales, 1e-9)
	assert.InDelta(t, 140, predictions[2].PredictedSales, 1e-9)
	assert.Greater(t, predictions[0].Confidence, predictions[2].Confidence)
}

func TestBaselineModel_PredictNeverNegative(t *testing.T) {
	model := NewBaselineModel()
	history := &service.ProductHistory{History: []service.HistoryPoint{{SalesCount: 100}, {SalesCount: 0}}}

	predictions, err := model.Predict(context.Background(), history, 4)
	require.NoError(t, err)
	for _, p := range predictions {
		assert.GreaterOrEqual(t, p.PredictedSales, 0.0)
		assert.GreaterOrEqual(t, p.Confidence, 0.0)
		assert.LessOrEqual(t, p.Confidence, 1.0)
	}
}

func TestBaselineModel_PredictWithoutHistory(t *testing.T) {
	_, err := NewBaselineModel().Predict(context.Background(), &service.ProductHistory{}, 1)
	assert.Error(t, err)
}

func TestBaselineModel_Train(t *testing.T) {
	model := NewBaselineModel()

	accuracy, err := model.Train(context.Background(), &service.TrainingDataset{Products: []service.ProductHistory{
		{History: []service.HistoryPoint{{SalesCount: 100}, {SalesCount: 100}, {SalesCount: 100}}},
	}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, accuracy, 1e-9)

	accuracy, err = model.Train(context.Background(), &service.TrainingDataset{Products: []service.ProductHistory{
		{History: []service.HistoryPoint{{SalesCount: 100}, {SalesCount: 50}}},
	}})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, accuracy, 1e-9)
}

func TestBaselineModel_FeatureImportance(t *testing.T) {
	model := NewBaselineModel()
	dataset := &service.TrainingDataset{Products: []service.ProductHistory{
		{Features: map[string]bool{"heart_rate": true, "wifi": true}, History: []service.HistoryPoint{{SalesCount: 300}}},
		{Features: map[string]bool{"heart_rate": false, "wifi": true}, History: []service.HistoryPoint{{SalesCount: 100}}},
	}}

	weights, err := model.FeatureImportance(context.Background(), dataset)
	require.NoError(t, err)
	require.Len(t, weights, 2)

	assert.Equal(t, "heart_rate", weights[0].Feature)
	assert.InDelta(t, 1.0, weights[0].Importance, 1e-9)
	assert.Equal(t, "+200.0%", weights[0].Impact)

	assert.Equal(t, "wifi", weights[1].Feature)
	assert.InDelta(t, 0.0, weights[1].Importance, 1e-9)
	assert.Empty(t, weights[1].Impact)
}
