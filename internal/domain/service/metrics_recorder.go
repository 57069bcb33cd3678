package service

import (
	"time"

	"salesinsight/internal/domain/entity"
)

// Outcomes of a forecasting model call.
const (
	ModelOutcomeSuccess   = "success"
	ModelOutcomeTimeout   = "timeout"
	ModelOutcomeError     = "error"
	ModelOutcomeMalformed = "malformed"
)

// MetricsRecorder receives business measurements from the use cases.
type MetricsRecorder interface {
	// ObserveIngest records one finished ingestion.
	ObserveIngest(succeeded, failed int, elapsed time.Duration)

	// ObserveModelCall records one call to the forecasting model.
	ObserveModelCall(operation, outcome string, elapsed time.Duration)

	// CountTrainingRun records an appended training run.
	CountTrainingRun(source entity.TrainingSource)
}
