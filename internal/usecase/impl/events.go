package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/service"

	"github.com/google/uuid"
)

// publishAfterCommit emits an event for state that is already committed. A failed publish is logged and
// never fails the caller's operation.
func publishAfterCommit(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType string,
	companyID *uuid.UUID,
	payload any,
) {
	if publisher == nil {
		return
	}

	event := &service.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if companyID != nil {
		event.CompanyID = companyID.String()
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("type", eventType),
			slog.String("eventID", event.ID),
			slog.Any("error", err),
		)
	}
}
