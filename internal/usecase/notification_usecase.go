package usecase

import (
	"context"

	"petkeeper/internal/domain/entity"
)

// NotifyResult is the callable response of a family fan-out.
type NotifyResult struct {
	NotificationsSent int    `json:"notificationsSent"`
	FailureCount      int    `json:"failureCount"`
	TokenCount        int    `json:"tokenCount"`
	Message           string `json:"message,omitempty"`
}

// NotificationUsecase announces family events to every other member's devices.
type NotificationUsecase interface {
	// NotifyFamily validates event, resolves the caller, gathers the other members'
	// tokens and dispatches the composed payload once.
	NotifyFamily(ctx context.Context, callerID string, event *entity.FamilyEvent) (*NotifyResult, error)
}
