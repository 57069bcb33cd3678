package forecast

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"

	"salesinsight/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	baselineWindow        = 3
	baselineConfidence    = 0.9
	baselineDecay         = 0.05
	baselineMinConfidence = 0.3
	shortHistoryPenalty   = 0.8
)

// baselineModel is a naive moving-average-with-trend forecaster that runs in process.
// It exists so the service works end to end without the external model.
type baselineModel struct{}

// NewBaselineModel returns the in-process naive model.
func NewBaselineModel() service.ForecastModel {
	return baselineModel{}
}

// Train scores one-step naive forecasts (next month = this month) over the dataset.
func (baselineModel) Train(ctx context.Context, dataset *service.TrainingDataset) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	var totalError float64
	var pairs int
	for _, product := range dataset.Products {
		for i := 1; i < len(product.History); i++ {
			actual := float64(product.History[i].SalesCount)
			guess := float64(product.History[i-1].SalesCount)
			totalError += math.Abs(actual-guess) / math.Max(actual, 1)
			pairs++
		}
	}
	if pairs == 0 {
		return 0, nil
	}

	return clamp01(1 - totalError/float64(pairs)), nil
}

// Predict extends the mean of the last months by their average month-over-month change.
func (baselineModel) Predict(ctx context.Context, history *service.ProductHistory, horizon int) ([]service.MonthlyPrediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(history.History) == 0 {
		return nil, errors.New("baseline model needs at least one month of history")
	}

	window := history.History[max(0, len(history.History)-baselineWindow):]
	var sum float64
	for _, point := range window {
		sum += float64(point.SalesCount)
	}
	mean := sum / float64(len(window))

	var trend float64
	if len(window) > 1 {
		trend = float64(window[len(window)-1].SalesCount-window[0].SalesCount) / float64(len(window)-1)
	}

	penalty := 1.0
	if len(history.History) < baselineWindow {
		penalty = shortHistoryPenalty
	}

	predictions := make([]service.MonthlyPrediction, horizon)
	for i := range predictions {
		index := i + 1
		predictions[i] = service.MonthlyPrediction{
			MonthIndex:     index,
			PredictedSales: math.Max(0, mean+trend*float64(index)),
			Confidence:     math.Max(baselineMinConfidence, baselineConfidence-baselineDecay*float64(index)) * penalty,
		}
	}

	return predictions, nil
}

// FeatureImportance weighs each feature by how far the mean units of products with it
// differ from those without it, normalized to sum to 1.
func (baselineModel) FeatureImportance(ctx context.Context, dataset *service.TrainingDataset) ([]service.FeatureWeight, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	names := make(map[string]struct{})
	for _, product := range dataset.Products {
		for name := range product.Features {
			names[name] = struct{}{}
		}
	}

	weights := make([]service.FeatureWeight, 0, len(names))
	var total float64
	for _, name := range slices.Sorted(maps.Keys(names)) {
		var with, without []float64
		for _, product := range dataset.Products {
			units := float64(totalUnits(product.History))
			if product.Features[name] {
				with = append(with, units)
			} else {
				without = append(without, units)
			}
		}

		weight := service.FeatureWeight{Feature: name}
		if len(with) > 0 && len(without) > 0 {
			meanWith, meanWithout := mean(with), mean(without)
			weight.Importance = math.Abs(meanWith - meanWithout)
			if meanWithout > 0 {
				weight.Impact = fmt.Sprintf("%+.1f%%", (meanWith-meanWithout)/meanWithout*100)
			}
		}
		total += weight.Importance
		weights = append(weights, weight)
	}

	if total > 0 {
		for i := range weights {
			weights[i].Importance /= total
		}
	}

	return weights, nil
}

func totalUnits(history []service.HistoryPoint) int64 {
	var units int64
	for _, point := range history {
		units += point.SalesCount
	}

	return units
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
