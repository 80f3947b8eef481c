package impl

import (
	"context"
	"log/slog"

	deliverycontext "petkeeper/internal/delivery/context"
	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/service"
	"petkeeper/internal/usecase"
)

const (
	tokenLogPrefixLen    = 10
	missingResponseError = "no response from push transport"
)

type dispatchService struct {
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewDispatchService creates a new notification dispatcher
func NewDispatchService(notificationSvc service.NotificationService, logger *slog.Logger) usecase.DispatchUsecase {
	return &dispatchService{
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// Dispatch sends payload to every token in one multicast request
func (s *dispatchService) Dispatch(ctx context.Context, tokens []string, payload *entity.NotificationPayload) (*entity.DispatchResult, error) {
	if len(tokens) == 0 {
		return &entity.DispatchResult{Outcomes: []entity.DeliveryOutcome{}}, nil
	}
	if payload == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("payload is required")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	response, err := s.notificationSvc.SendMulticast(ctx, &service.MulticastMessage{
		Tokens: tokens,
		Title:  payload.Title,
		Body:   payload.Body,
		Data:   payload.Data,
	})
	if err != nil {
		logger.Error("Push transport unreachable",
			slog.Int("token_count", len(tokens)),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewInternalError(err, "multicast send failed")
	}

	result := interpretResponses(tokens, response.Responses)

	logger.Info("Multicast dispatched",
		slog.Int("token_count", result.TokenCount),
		slog.Int("sent", result.SentCount),
		slog.Int("failed", result.FailureCount),
	)

	for _, outcome := range result.Outcomes {
		if outcome.Success {
			continue
		}
		logger.Warn("Token delivery failed",
			slog.String("token_prefix", tokenPrefix(outcome.Token)),
			slog.String("error_code", string(outcome.ErrorCode)),
			slog.String("error", outcome.Error),
		)
	}

	return result, nil
}

// interpretResponses pairs responses[i] with tokens[i]. A token the transport did
// not answer for counts as a failure with an unknown code, which never marks it dead.
func interpretResponses(tokens []string, responses []service.SendResponse) *entity.DispatchResult {
	result := &entity.DispatchResult{
		TokenCount: len(tokens),
		Outcomes:   make([]entity.DeliveryOutcome, len(tokens)),
	}

	for idx, token := range tokens {
		outcome := entity.DeliveryOutcome{Token: token}

		if idx >= len(responses) {
			outcome.ErrorCode = entity.DeliveryErrorUnknown
			outcome.Error = missingResponseError
		} else {
			resp := responses[idx]
			outcome.Success = resp.Success
			outcome.MessageID = resp.MessageID
			if !resp.Success {
				outcome.ErrorCode = resp.ErrorCode
				if outcome.ErrorCode == "" {
					outcome.ErrorCode = entity.DeliveryErrorUnknown
				}
				if resp.Err != nil {
					outcome.Error = resp.Err.Error()
				}
			}
		}

		if outcome.Success {
			result.SentCount++
		} else {
			result.FailureCount++
		}
		result.Outcomes[idx] = outcome
	}

	return result
}

func tokenPrefix(token string) string {
	return token[:min(tokenLogPrefixLen, len(token))]
}
