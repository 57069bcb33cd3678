package service

import (
	"context"
	"time"
)

// Event types published after a commit.
const (
	EventCatalogIngested  = "catalog.ingested"
	EventTrainingRecorded = "training.recorded"
)

// DomainEvent is a fact about committed state, serialized as JSON for subscribers
type DomainEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	CompanyID  string    `json:"company_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends one event; callers publish only after their transaction committed
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
