// Package handler contains the Pub/Sub push handler of the fan-out worker.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"petkeeper/config"
	deliverycontext "petkeeper/internal/delivery/context"
	"petkeeper/internal/domain/constants"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/service"
	"petkeeper/internal/infra/pubsub"
	"petkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errPermanent marks events that can never succeed and must be acked.
var errPermanent = errors.New("permanent event failure")

// PushHandler handles Pub/Sub push deliveries of worker events
type PushHandler struct {
	pushAuth       *pushAuthenticator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
	hygieneUC      usecase.TokenHygieneUsecase
	deduplicator   service.MessageDeduplicator
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
	HygieneUC      usecase.TokenHygieneUsecase
	Deduplicator   service.MessageDeduplicator
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		hygieneUC:      params.HygieneUC,
		deduplicator:   params.Deduplicator,
	}

	// Only real push subscriptions sign their requests
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.pushAuth = newPushAuthenticator(params.Config.PubSub.PushAudience)
	}

	return h
}

// HandlePush acks with 200 unless the event should be redelivered (503)
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.pushAuth != nil {
		if err := h.pushAuth.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeWorkerEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode worker event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope, event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, requestID)
	reqLogger = reqLogger.With(
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("event_type", string(event.Type)),
	)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	messageID := envelope.Message.MessageID
	if messageID == "" {
		messageID = event.EventID
	}

	first, err := h.deduplicator.MarkProcessed(ctx, messageID)
	if err != nil {
		// Processing twice beats dropping the event
		reqLogger.Warn("[Worker] Dedupe check failed", slog.Any("error", err))
		first = true
	}
	if !first {
		reqLogger.Info("[Worker] Skipping redelivered message")

		return c.NoContent(http.StatusOK)
	}

	if err := h.process(ctx, event); err != nil {
		retryable := !errors.Is(err, errPermanent)
		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if !retryable {
			return c.NoContent(http.StatusOK)
		}

		if forgetErr := h.deduplicator.Forget(ctx, messageID); forgetErr != nil {
			reqLogger.Warn("[Worker] Failed to release dedupe key", slog.Any("error", forgetErr))
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Event processed")

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.WorkerEvent) string {
	if requestID := envelope.Message.Attributes[constants.AttributeRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) process(ctx context.Context, event *service.WorkerEvent) error {
	switch event.Type {
	case service.WorkerEventFamilyNotify:
		return h.processFamilyNotify(ctx, event)
	case service.WorkerEventTokensCleanup:
		return h.processTokensCleanup(ctx, event)
	default:
		return errors.Wrapf(errPermanent, "unknown event type %q", event.Type)
	}
}

func (h *PushHandler) processFamilyNotify(ctx context.Context, event *service.WorkerEvent) error {
	if event.CallerID == "" || event.Event == nil {
		return errors.Wrap(errPermanent, "family.notify needs caller_id and event")
	}

	result, err := h.notificationUC.NotifyFamily(ctx, event.CallerID, event.Event)
	if err != nil {
		return classify(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Family notified",
		slog.String("kind", string(event.Event.Kind)),
		slog.Int("notifications_sent", result.NotificationsSent),
		slog.Int("failure_count", result.FailureCount),
	)

	return nil
}

// processTokensCleanup runs hygiene for every owner and asks for a retry when
// any of them hit a transient failure. Hygiene is idempotent, so rerunning the
// owners that already succeeded is harmless.
func (h *PushHandler) processTokensCleanup(ctx context.Context, event *service.WorkerEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var retryErr error
	removed := 0
	for _, userID := range event.UserIDs {
		if userID == "" {
			continue
		}

		result, err := h.hygieneUC.CleanupTokens(ctx, userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				logger.Info("[Worker] Skipping cleanup for missing user", slog.String("user_id", userID))

				continue
			}
			if classified := classify(err); !errors.Is(classified, errPermanent) {
				retryErr = classified
			}
			logger.Warn("[Worker] Token cleanup failed",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			continue
		}
		removed += result.RemovedTokens
	}

	logger.Info("[Worker] Token cleanup finished",
		slog.Int("users", len(event.UserIDs)),
		slog.Int("removed_tokens", removed),
	)

	return retryErr
}

// classify keeps store and transport failures retryable; every other kind is
// a property of the event itself.
func classify(err error) error {
	if domainerrors.KindOf(err) == domainerrors.KindInternal {
		return err
	}

	return errors.Wrap(errPermanent, err.Error())
}
