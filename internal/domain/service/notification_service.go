package service

import (
	"context"

	"petkeeper/internal/domain/entity"
)

// MulticastMessage is one logical multicast request. Title and Body may both be
// empty, in which case the message is data-only.
type MulticastMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
	DryRun bool // Validate tokens against the transport without delivering anything.
}

// SendResponse is the transport result for the token at the same index.
type SendResponse struct {
	Success   bool
	MessageID string
	ErrorCode entity.DeliveryErrorCode
	Err       error
}

// MulticastResult holds one SendResponse per requested token, in request order.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResponse
}

// NotificationService defines the interface for the push transport
type NotificationService interface {
	// SendMulticast sends msg to every token. Per-token failures are reported in the
	// result; an error is returned only when the transport could not be reached at all.
	SendMulticast(ctx context.Context, msg *MulticastMessage) (*MulticastResult, error)
}
