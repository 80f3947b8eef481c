// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"petkeeper/config"
	deliverycontext "petkeeper/internal/delivery/context"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/errors"
	"petkeeper/internal/usecase"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo        repository.UserRepository
	placeholderName string
	logger          *slog.Logger
}

// NewIdentityService creates a new identity resolver
func NewIdentityService(userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) usecase.IdentityUsecase {
	placeholder := config.DefaultNotificationConfig().PlaceholderName
	if cfg != nil && cfg.Notification != nil && cfg.Notification.PlaceholderName != "" {
		placeholder = cfg.Notification.PlaceholderName
	}

	return &identityService{
		userRepo:        userRepo,
		placeholderName: placeholder,
		logger:          logger,
	}
}

// ResolveCaller loads the caller's profile and extracts its family identity
func (s *identityService) ResolveCaller(ctx context.Context, callerID string) (*usecase.CallerIdentity, error) {
	if callerID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCallerNotFound
		}

		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to load caller profile",
			slog.String("user_id", callerID),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewInternalError(err, "failed to load caller profile")
	}

	if !user.HasFamily() {
		return nil, domainerrors.ErrNoFamilyCode
	}

	displayName := strings.TrimSpace(user.DisplayName)
	if displayName == "" {
		displayName = s.placeholderName
	}

	return &usecase.CallerIdentity{
		UserID:      callerID,
		FamilyCode:  user.FamilyCode,
		DisplayName: displayName,
		Tokens:      user.FCMTokens,
	}, nil
}
