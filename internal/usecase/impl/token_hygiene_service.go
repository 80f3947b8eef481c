package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "petkeeper/internal/delivery/context"
	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/domain/service"
	"petkeeper/internal/errors"
	"petkeeper/internal/usecase"
)

// dryRunData is the data block of the dry-run check message.
var dryRunData = map[string]string{"test": "true"}

type tokenHygieneService struct {
	userRepo        repository.UserRepository
	notificationSvc service.NotificationService
	metrics         service.MetricsRecorder
	logger          *slog.Logger
}

// NewTokenHygieneService creates a new token hygiene engine
func NewTokenHygieneService(
	userRepo repository.UserRepository,
	notificationSvc service.NotificationService,
	metrics service.MetricsRecorder,
	logger *slog.Logger,
) usecase.TokenHygieneUsecase {
	return &tokenHygieneService{
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		metrics:         metrics,
		logger:          logger,
	}
}

// CleanupTokens removes the user's tokens that a dry-run send proves dead
func (s *tokenHygieneService) CleanupTokens(ctx context.Context, userID string) (*usecase.TokenCleanupResult, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("user_id", userID))

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		logger.Error("Failed to load profile for token cleanup", slog.Any("error", err))

		return nil, domainerrors.NewInternalError(err, "failed to load profile")
	}

	tokens := user.FCMTokens
	if len(tokens) == 0 {
		return &usecase.TokenCleanupResult{}, nil
	}

	candidates, malformed := splitMalformedTokens(tokens)
	if malformed > 0 {
		// The transport rejects a whole batch that contains a blank token.
		logger.Info("Removing malformed tokens without a dry run", slog.Int("count", malformed))
	}

	validTokens := make([]string, 0, len(candidates))
	if len(candidates) > 0 {
		response, err := s.notificationSvc.SendMulticast(ctx, &service.MulticastMessage{
			Tokens: candidates,
			Data:   dryRunData,
			DryRun: true,
		})
		if err != nil {
			logger.Error("Dry-run token check failed", slog.Any("error", err))

			return nil, domainerrors.NewInternalError(err, "dry-run check failed")
		}

		validTokens = retainLiveTokens(logger, interpretResponses(candidates, response.Responses))
	}

	removed := len(tokens) - len(validTokens)
	if removed > 0 {
		if err := s.userRepo.UpdateFCMTokens(ctx, userID, validTokens); err != nil {
			logger.Error("Failed to persist cleaned tokens", slog.Any("error", err))

			return nil, domainerrors.NewInternalError(err, "failed to update tokens")
		}

		s.metrics.RecordTokensRemoved(removed)
		logger.Info("Token cleanup finished",
			slog.Int("removed", removed),
			slog.Int("valid", len(validTokens)),
		)
	}

	return &usecase.TokenCleanupResult{
		RemovedTokens: removed,
		ValidTokens:   len(validTokens),
	}, nil
}

// splitMalformedTokens separates blank entries, which can never be delivered to.
func splitMalformedTokens(tokens []string) (candidates []string, malformed int) {
	candidates = make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			malformed++

			continue
		}
		candidates = append(candidates, token)
	}

	return candidates, malformed
}

// retainLiveTokens keeps every token except those the dry run proved dead.
func retainLiveTokens(logger *slog.Logger, checked *entity.DispatchResult) []string {
	validTokens := make([]string, 0, len(checked.Outcomes))
	for _, outcome := range checked.Outcomes {
		if !outcome.Success && outcome.ErrorCode.IsDeadToken() {
			logger.Info("Removing dead token",
				slog.String("token_prefix", tokenPrefix(outcome.Token)),
				slog.String("error_code", string(outcome.ErrorCode)),
			)

			continue
		}

		if !outcome.Success {
			logger.Warn("Keeping token after inconclusive dry run",
				slog.String("token_prefix", tokenPrefix(outcome.Token)),
				slog.String("error_code", string(outcome.ErrorCode)),
			)
		}
		validTokens = append(validTokens, outcome.Token)
	}

	return validTokens
}
