package notification

import (
	"context"
	"log/slog"

	"petkeeper/config"
	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// maxMulticastTokens is the FCM limit of tokens per multicast call.
const maxMulticastTokens = 500

// multicastSender is the part of *messaging.Client the transport uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
	SendEachForMulticastDryRun(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client    multicastSender
	batchSize int
	logger    *slog.Logger
}

// NewFirebaseService creates the FCM push transport
func NewFirebaseService(client *messaging.Client, cfg *config.Config, logger *slog.Logger) service.NotificationService {
	batchSize := maxMulticastTokens
	if cfg != nil && cfg.Notification != nil && cfg.Notification.MulticastBatchSize > 0 {
		batchSize = min(cfg.Notification.MulticastBatchSize, maxMulticastTokens)
	}

	return newFirebaseService(client, batchSize, logger)
}

func newFirebaseService(client multicastSender, batchSize int, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client:    client,
		batchSize: batchSize,
		logger:    logger,
	}
}

// SendMulticast sends msg in chunks of at most batchSize tokens and stitches the
// per-token responses back together in request order. A chunk whose call fails
// is reported as unavailable for each of its tokens; only when every chunk fails
// is the error returned.
func (s *firebaseService) SendMulticast(ctx context.Context, msg *service.MulticastMessage) (*service.MulticastResult, error) {
	result := &service.MulticastResult{
		Responses: make([]service.SendResponse, 0, len(msg.Tokens)),
	}
	if len(msg.Tokens) == 0 {
		return result, nil
	}

	var (
		lastErr      error
		failedChunks int
		chunks       int
	)

	for start := 0; start < len(msg.Tokens); start += s.batchSize {
		end := min(start+s.batchSize, len(msg.Tokens))
		batch := msg.Tokens[start:end]
		chunks++

		response, err := s.send(ctx, buildMulticastMessage(batch, msg), msg.DryRun)
		if err != nil {
			failedChunks++
			lastErr = err
			s.logger.Error("Multicast chunk failed",
				slog.Int("chunk_start", start),
				slog.Int("chunk_size", len(batch)),
				slog.Bool("dry_run", msg.DryRun),
				slog.Any("error", err),
			)

			for range batch {
				result.Responses = append(result.Responses, service.SendResponse{
					ErrorCode: entity.DeliveryErrorUnavailable,
					Err:       err,
				})
			}
			result.FailureCount += len(batch)

			continue
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount
		for idx := range batch {
			result.Responses = append(result.Responses, toSendResponse(response, idx))
		}
	}

	if failedChunks == chunks {
		return nil, errors.Wrap(lastErr, "failed to send multicast")
	}

	return result, nil
}

func (s *firebaseService) send(ctx context.Context, message *messaging.MulticastMessage, dryRun bool) (*messaging.BatchResponse, error) {
	if dryRun {
		return s.client.SendEachForMulticastDryRun(ctx, message)
	}

	return s.client.SendEachForMulticast(ctx, message)
}

func buildMulticastMessage(tokens []string, msg *service.MulticastMessage) *messaging.MulticastMessage {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Data:   msg.Data,
	}
	if msg.Title != "" || msg.Body != "" {
		message.Notification = &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		}
	}

	return message
}

func toSendResponse(response *messaging.BatchResponse, idx int) service.SendResponse {
	if idx >= len(response.Responses) || response.Responses[idx] == nil {
		return service.SendResponse{ErrorCode: entity.DeliveryErrorUnknown}
	}

	r := response.Responses[idx]
	if r.Success {
		return service.SendResponse{Success: true, MessageID: r.MessageID}
	}

	return service.SendResponse{
		ErrorCode: classifyError(r.Error),
		Err:       r.Error,
	}
}

// classifyError maps an FCM send error to a delivery error code
func classifyError(err error) entity.DeliveryErrorCode {
	switch {
	case err == nil:
		return entity.DeliveryErrorUnknown
	case messaging.IsInvalidArgument(err):
		return entity.DeliveryErrorInvalidArgument
	case messaging.IsUnregistered(err):
		return entity.DeliveryErrorTokenNotRegistered
	case messaging.IsSenderIDMismatch(err):
		return entity.DeliveryErrorSenderIDMismatch
	case messaging.IsQuotaExceeded(err):
		return entity.DeliveryErrorQuotaExceeded
	case messaging.IsUnavailable(err):
		return entity.DeliveryErrorUnavailable
	case messaging.IsInternal(err):
		return entity.DeliveryErrorInternal
	case messaging.IsThirdPartyAuthError(err):
		return entity.DeliveryErrorThirdPartyAuthError
	default:
		return entity.DeliveryErrorUnknown
	}
}
