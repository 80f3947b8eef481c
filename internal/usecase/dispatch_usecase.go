package usecase

import (
	"context"

	"petkeeper/internal/domain/entity"
)

// DispatchUsecase sends one payload to a set of tokens.
type DispatchUsecase interface {
	// Dispatch performs a single multicast. An empty token set returns an empty
	// result without calling the transport. Per-token failures are reported in
	// the result; only an unreachable transport yields an Internal error.
	Dispatch(ctx context.Context, tokens []string, payload *entity.NotificationPayload) (*entity.DispatchResult, error)
}
