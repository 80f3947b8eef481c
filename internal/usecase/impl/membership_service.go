package impl

import (
	"context"
	"log/slog"

	deliverycontext "petkeeper/internal/delivery/context"
	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/usecase"
)

type membershipService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewMembershipService creates a new family membership gatherer
func NewMembershipService(userRepo repository.UserRepository, logger *slog.Logger) usecase.MembershipUsecase {
	return &membershipService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// FamilyMembersExcluding returns the family's profiles minus excludeUserID
func (s *membershipService) FamilyMembersExcluding(ctx context.Context, familyCode, excludeUserID string) ([]*entity.UserProfile, error) {
	if familyCode == "" {
		return []*entity.UserProfile{}, nil
	}

	users, err := s.userRepo.FindUsersByFamilyCode(ctx, familyCode)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to query family members",
			slog.String("family_code", familyCode),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewInternalError(err, "failed to query family members")
	}

	members := make([]*entity.UserProfile, 0, len(users))
	for _, user := range users {
		if user == nil || user.ID == excludeUserID {
			continue
		}
		members = append(members, user)
	}

	return members, nil
}
