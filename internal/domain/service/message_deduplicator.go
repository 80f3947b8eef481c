package service

import (
	"context"
)

// MessageDeduplicator remembers which queue deliveries were already handled.
type MessageDeduplicator interface {
	// MarkProcessed records messageID and reports whether this is its first delivery.
	MarkProcessed(ctx context.Context, messageID string) (bool, error)

	// Forget removes messageID so a redelivery is processed again.
	Forget(ctx context.Context, messageID string) error
}
