package service

import (
	"context"

	"petkeeper/internal/domain/entity"
)

// WorkerEventType selects the job a fan-out worker runs for an event.
type WorkerEventType string

const (
	// WorkerEventFamilyNotify runs the full notification chain for CallerID and Event.
	WorkerEventFamilyNotify WorkerEventType = "family.notify"
	// WorkerEventTokensCleanup runs token hygiene for every user in UserIDs.
	WorkerEventTokensCleanup WorkerEventType = "tokens.cleanup"
)

// WorkerEvent represents an event to be processed by the fan-out worker
type WorkerEvent struct {
	RequestID string              `json:"request_id,omitempty"` // For distributed tracing
	EventID   string              `json:"event_id"`
	Type      WorkerEventType     `json:"type"`
	CallerID  string              `json:"caller_id,omitempty"`
	Event     *entity.FamilyEvent `json:"event,omitempty"`
	UserIDs   []string            `json:"user_ids,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishWorkerEvent publishes an event for async processing
	PublishWorkerEvent(ctx context.Context, event *WorkerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
