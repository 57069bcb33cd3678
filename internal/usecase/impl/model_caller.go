package impl

import (
	"context"
	"fmt"
	"time"

	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/service"

	"github.com/pkg/errors"
)

// modelCaller bounds calls to the forecasting model and records their outcome.
type modelCaller struct {
	metrics service.MetricsRecorder
	now     func() time.Time
}

// call runs fn with a deadline of timeout and maps failures to upstream errors.
func (c modelCaller) call(ctx context.Context, operation string, timeout time.Duration, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := c.now()
	err := fn(callCtx)
	c.metrics.ObserveModelCall(operation, modelOutcome(callCtx, err), c.now().Sub(started))

	if err == nil {
		return nil
	}

	return upstreamError(ctx, callCtx, timeout, err)
}

func modelOutcome(callCtx context.Context, err error) string {
	switch {
	case err == nil:
		return service.ModelOutcomeSuccess
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded):
		return service.ModelOutcomeTimeout
	case errors.Is(err, service.ErrMalformedModelResponse):
		return service.ModelOutcomeMalformed
	default:
		return service.ModelOutcomeError
	}
}

// upstreamError classifies a failed call. A caller that went away keeps its own context error and an
// expired deadline becomes a timeout.
func upstreamError(parent, callCtx context.Context, timeout time.Duration, err error) error {
	if parent.Err() != nil && !errors.Is(parent.Err(), context.DeadlineExceeded) {
		return errors.Wrap(parent.Err(), "forecast request cancelled")
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) ||
		errors.Is(parent.Err(), context.DeadlineExceeded) {
		return domainerrors.ErrUpstreamTimeout.WithDetails(fmt.Sprintf("no answer within %s", timeout))
	}

	return domainerrors.ErrUpstream.WithDetails(err.Error())
}
