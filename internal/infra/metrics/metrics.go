// Package metrics exposes Prometheus collectors for HTTP traffic, ingestion, forecasting and training.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"salesinsight/config"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salesinsight"

// Metrics owns a private registry so tests and multiple instances never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ingestRows      *prometheus.CounterVec
	ingestDuration  prometheus.Histogram
	modelCalls      *prometheus.CounterVec
	modelDuration   *prometheus.HistogramVec
	trainingRuns    *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		ingestRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingest_rows_total",
				Help:      "CSV and manual rows processed, by outcome",
			},
			[]string{"outcome"},
		),
		ingestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ingest_duration_seconds",
				Help:      "Duration of one ingestion including the tenant lease wait",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
		modelCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "forecast_model_calls_total",
				Help:      "Calls to the forecasting model, by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		modelDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "forecast_duration_seconds",
				Help:      "Duration of forecasting model calls in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		trainingRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "training_runs_total",
				Help:      "Training runs appended to the ledger, by source",
			},
			[]string{"source"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.ingestRows,
		m.ingestDuration,
		m.modelCalls,
		m.modelDuration,
		m.trainingRuns,
	)

	return m
}

// Registry returns the registry backing the handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and latency by route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = errorStatus(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			labels := []string{c.Request().Method, route, strconv.Itoa(status)}

			m.requests.WithLabelValues(labels...).Inc()
			m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// ObserveIngest implements service.MetricsRecorder.
func (m *Metrics) ObserveIngest(succeeded, failed int, elapsed time.Duration) {
	m.ingestRows.WithLabelValues("succeeded").Add(float64(succeeded))
	m.ingestRows.WithLabelValues("failed").Add(float64(failed))
	m.ingestDuration.Observe(elapsed.Seconds())
}

// ObserveModelCall implements service.MetricsRecorder.
func (m *Metrics) ObserveModelCall(operation, outcome string, elapsed time.Duration) {
	m.modelCalls.WithLabelValues(operation, outcome).Inc()
	m.modelDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// CountTrainingRun implements service.MetricsRecorder.
func (m *Metrics) CountTrainingRun(source entity.TrainingSource) {
	m.trainingRuns.WithLabelValues(string(source)).Inc()
}

func errorStatus(err error) int {
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

// NewFromConfig is the Fx constructor; collectors exist even when the endpoint is disabled.
func NewFromConfig(_ *config.Config) *Metrics {
	return New()
}
