package impl

import (
	"io"
	"log/slog"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func profile(id, familyCode string, tokens ...string) *entity.UserProfile {
	return &entity.UserProfile{
		ID:          id,
		FamilyCode:  familyCode,
		DisplayName: "Member " + id,
		FCMTokens:   tokens,
	}
}

func successResponses(n int) *service.MulticastResult {
	result := &service.MulticastResult{SuccessCount: n}
	for i := 0; i < n; i++ {
		result.Responses = append(result.Responses, service.SendResponse{Success: true, MessageID: "msg"})
	}

	return result
}

func failedResponse(code entity.DeliveryErrorCode) service.SendResponse {
	return service.SendResponse{ErrorCode: code}
}
