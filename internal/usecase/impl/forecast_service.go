package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"salesinsight/config"
	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/access"
	"salesinsight/internal/domain/campaign"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/domain/service"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHorizonMonths = 6

	operationPredict           = "predict"
	operationTrain             = "train"
	operationFeatureImportance = "feature_importance"
)

type forecastService struct {
	txManager      repository.TransactionManager
	model          service.ForecastModel
	caller         modelCaller
	maxHorizon     int
	defaultTimeout time.Duration
	maxTimeout     time.Duration
	concurrency    int
	now            func() time.Time
	logger         *slog.Logger
}

// ForecastServiceParams holds dependencies for ForecastService, injected by Fx.
type ForecastServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Model     service.ForecastModel
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewForecastService is the constructor for forecastService.
func NewForecastService(params ForecastServiceParams) usecase.ForecastUsecase {
	cfg := params.Config.Forecast

	return &forecastService{
		txManager:      params.TxManager,
		model:          params.Model,
		caller:         modelCaller{metrics: params.Metrics, now: time.Now},
		maxHorizon:     cmp.Or(cfg.MaxHorizon, 24),
		defaultTimeout: cmp.Or(cfg.DefaultTimeout, 10*time.Second),
		maxTimeout:     cmp.Or(cfg.MaxTimeout, time.Minute),
		concurrency:    cmp.Or(cfg.Concurrency, 4),
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *forecastService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Predict reads the tenant's catalog and the offers from one snapshot, asks the model for every product
// with history, and annotates each predicted month with the overlapping offer.
func (srv *forecastService) Predict(
	ctx context.Context,
	caller *entity.Identity,
	companyID uuid.UUID,
	input usecase.PredictInput,
) (*entity.PredictionSet, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}

	horizon, timeout, err := srv.resolveLimits(input)
	if err != nil {
		return nil, err
	}

	var (
		histories []service.ProductHistory
		skipped   int
		offers    []*entity.Offer
	)
	err = srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		products, listErr := snapshot.ProductRepo().ListProductsByCompany(ctx, companyID)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list products")
		}

		var buildErr error
		histories, skipped, buildErr = buildHistories(ctx, snapshot.SaleRepo(), products)
		if buildErr != nil {
			return buildErr
		}

		offers, listErr = snapshot.OfferRepo().ListOffers(ctx)

		return errors.Wrap(listErr, "failed to list offers")
	})
	if err != nil {
		return nil, err
	}

	if len(histories) == 0 {
		return nil, domainerrors.ErrInsufficientData.WithDetails(
			fmt.Sprintf("company %s has no products with sales history", companyID))
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	forecasts := make([]entity.ProductForecast, len(histories))
	group, groupCtx := errgroup.WithContext(callCtx)
	group.SetLimit(srv.concurrency)
	for i := range histories {
		group.Go(func() error {
			history := &histories[i]

			callErr := srv.caller.call(groupCtx, operationPredict, timeout, func(ctx context.Context) error {
				raw, predictErr := srv.model.Predict(ctx, history, horizon)
				if predictErr != nil {
					return predictErr
				}

				var annotateErr error
				forecasts[i], annotateErr = annotate(history, raw, horizon, offers)

				return annotateErr
			})

			return callErr
		})
	}
	if err := group.Wait(); err != nil {
		srv.log(ctx).Warn("Forecast failed", slog.Any("companyID", companyID), slog.Any("error", err))

		return nil, err
	}

	set := &entity.PredictionSet{
		CompanyID:       companyID,
		HorizonMonths:   horizon,
		GeneratedAt:     srv.now().UTC(),
		Products:        forecasts,
		SkippedProducts: skipped,
		Summary:         summarizeSet(forecasts, horizon),
	}
	srv.log(ctx).Info("Forecast generated",
		slog.Any("companyID", companyID),
		slog.Int("products", len(forecasts)),
		slog.Int("skipped", skipped),
		slog.Int("horizon", horizon),
	)

	return set, nil
}

// FeatureImportance asks the model which product features drive the tenant's sales.
func (srv *forecastService) FeatureImportance(
	ctx context.Context,
	caller *entity.Identity,
	companyID uuid.UUID,
) ([]entity.FeatureImportance, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}

	dataset := &service.TrainingDataset{CompanyID: &companyID}
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		products, listErr := snapshot.ProductRepo().ListProductsByCompany(ctx, companyID)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list products")
		}

		var buildErr error
		dataset.Products, _, buildErr = buildHistories(ctx, snapshot.SaleRepo(), products)

		return buildErr
	})
	if err != nil {
		return nil, err
	}
	if len(dataset.Products) == 0 {
		return nil, domainerrors.ErrInsufficientData.WithDetails(
			fmt.Sprintf("company %s has no products with sales history", companyID))
	}

	var weights []service.FeatureWeight
	err = srv.caller.call(ctx, operationFeatureImportance, srv.defaultTimeout, func(ctx context.Context) error {
		var callErr error
		weights, callErr = srv.model.FeatureImportance(ctx, dataset)

		return callErr
	})
	if err != nil {
		return nil, err
	}

	return rankFeatures(weights), nil
}

func (srv *forecastService) resolveLimits(input usecase.PredictInput) (int, time.Duration, error) {
	horizon := input.HorizonMonths
	if horizon == 0 {
		horizon = defaultHorizonMonths
	}
	if horizon < 1 || horizon > srv.maxHorizon {
		return 0, 0, domainerrors.Validation(fmt.Sprintf("horizon must be between 1 and %d months", srv.maxHorizon))
	}

	timeout := input.Timeout
	if timeout < 0 {
		return 0, 0, domainerrors.Validation("timeout must be positive")
	}
	if timeout == 0 {
		timeout = srv.defaultTimeout
	}
	timeout = min(timeout, srv.maxTimeout)

	return horizon, timeout, nil
}

// annotate validates the raw model rows for one product and maps month indexes to calendar months.
func annotate(
	history *service.ProductHistory,
	raw []service.MonthlyPrediction,
	horizon int,
	offers []*entity.Offer,
) (entity.ProductForecast, error) {
	rows := slices.Clone(raw)
	slices.SortFunc(rows, func(a, b service.MonthlyPrediction) int { return cmp.Compare(a.MonthIndex, b.MonthIndex) })

	if len(rows) != horizon {
		return entity.ProductForecast{}, errors.Wrapf(service.ErrMalformedModelResponse,
			"product %s: expected %d months, got %d", history.ProductID, horizon, len(rows))
	}

	base := lastMonth(history)
	forecast := entity.ProductForecast{
		ProductID:      history.ProductID,
		ModelName:      history.ModelName,
		Region:         history.Region,
		LastKnownMonth: base,
		Predictions:    make([]entity.Prediction, 0, horizon),
	}

	for i, row := range rows {
		if row.MonthIndex != i+1 {
			return entity.ProductForecast{}, errors.Wrapf(service.ErrMalformedModelResponse,
				"product %s: month indexes must run from 1 to %d", history.ProductID, horizon)
		}
		if math.IsNaN(row.PredictedSales) || math.IsInf(row.PredictedSales, 0) {
			return entity.ProductForecast{}, errors.Wrapf(service.ErrMalformedModelResponse,
				"product %s: predicted sales for month %d is not a number", history.ProductID, row.MonthIndex)
		}
		// float64(math.MaxInt64) rounds up to 2^63, the first value int64 cannot hold.
		units := math.Round(max(row.PredictedSales, 0))
		if units >= float64(math.MaxInt64) {
			return entity.ProductForecast{}, errors.Wrapf(service.ErrMalformedModelResponse,
				"product %s: predicted sales for month %d is out of range", history.ProductID, row.MonthIndex)
		}

		hasOffer, offerName := campaign.Resolve(offers, row.MonthIndex, base)
		forecast.Predictions = append(forecast.Predictions, entity.Prediction{
			ProductID:      history.ProductID,
			MonthIndex:     row.MonthIndex,
			Month:          base.AddMonths(row.MonthIndex),
			PredictedSales: int64(units),
			Confidence:     clampUnit(row.Confidence),
			HasActiveOffer: hasOffer,
			OfferName:      offerName,
		})
	}
	forecast.Summary = summarizePredictions(forecast.Predictions)

	return forecast, nil
}

func summarizePredictions(predictions []entity.Prediction) entity.ForecastSummary {
	var summary entity.ForecastSummary
	var confidence float64
	var peak int64 = -1

	for _, prediction := range predictions {
		summary.TotalPredictedUnits = addUnits(summary.TotalPredictedUnits, prediction.PredictedSales)
		confidence += prediction.Confidence
		if prediction.HasActiveOffer {
			summary.PromotionalMonths++
		}
		if prediction.PredictedSales > peak {
			peak = prediction.PredictedSales
			summary.PeakMonthIndex = prediction.MonthIndex
		}
	}
	if len(predictions) > 0 {
		summary.AverageConfidence = round4(confidence / float64(len(predictions)))
	}

	return summary
}

// addUnits sums non-negative unit counts, saturating at math.MaxInt64.
func addUnits(total, units int64) int64 {
	if total > math.MaxInt64-units {
		return math.MaxInt64
	}

	return total + units
}

// summarizeSet adds up the products. Promotional months count product-months; the peak is the month
// index with the highest predicted units across products.
func summarizeSet(forecasts []entity.ProductForecast, horizon int) entity.ForecastSummary {
	var summary entity.ForecastSummary
	var confidence float64
	var count int
	unitsByIndex := make([]int64, horizon+1)

	for _, forecast := range forecasts {
		for _, prediction := range forecast.Predictions {
			summary.TotalPredictedUnits = addUnits(summary.TotalPredictedUnits, prediction.PredictedSales)
			confidence += prediction.Confidence
			count++
			if prediction.HasActiveOffer {
				summary.PromotionalMonths++
			}
			unitsByIndex[prediction.MonthIndex] = addUnits(unitsByIndex[prediction.MonthIndex], prediction.PredictedSales)
		}
	}
	if count > 0 {
		summary.AverageConfidence = round4(confidence / float64(count))
	}

	var peak int64 = -1
	for index := 1; index <= horizon; index++ {
		if unitsByIndex[index] > peak {
			peak = unitsByIndex[index]
			summary.PeakMonthIndex = index
		}
	}

	return summary
}

// rankFeatures orders by importance descending, then name, and fills in missing impact labels.
func rankFeatures(weights []service.FeatureWeight) []entity.FeatureImportance {
	ranked := make([]entity.FeatureImportance, 0, len(weights))
	for _, weight := range weights {
		impact := strings.TrimSpace(weight.Impact)
		if impact == "" {
			impact = fmt.Sprintf("%+.1f%%", weight.Importance*100)
		}
		ranked = append(ranked, entity.FeatureImportance{
			Feature:    weight.Feature,
			Impact:     impact,
			Importance: weight.Importance,
		})
	}
	slices.SortStableFunc(ranked, func(a, b entity.FeatureImportance) int {
		if c := cmp.Compare(b.Importance, a.Importance); c != 0 {
			return c
		}

		return cmp.Compare(a.Feature, b.Feature)
	})

	return ranked
}

func clampUnit(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}

	return min(max(value, 0), 1)
}

func round4(value float64) float64 {
	return math.Round(value*1e4) / 1e4
}
