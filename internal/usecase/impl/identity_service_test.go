package impl

import (
	"context"
	"testing"

	"petkeeper/config"
	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/repository"
	mockRepo "petkeeper/internal/mocks/repository"
	"petkeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service  usecase.IdentityUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	return identityServiceFixtures{
		service:  NewIdentityService(userRepo, &config.Config{}, newDiscardLogger()),
		userRepo: userRepo,
	}
}

func TestIdentityService_ResolveCaller_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "caller").Return(&entity.UserProfile{
		ID:          "caller",
		FamilyCode:  "F1",
		DisplayName: "Ana",
		FCMTokens:   []string{"tc"},
	}, nil)

	identity, err := fx.service.ResolveCaller(ctx, "caller")
	require.NoError(t, err)
	assert.Equal(t, "caller", identity.UserID)
	assert.Equal(t, "F1", identity.FamilyCode)
	assert.Equal(t, "Ana", identity.DisplayName)
	assert.Equal(t, []string{"tc"}, identity.Tokens)
}

func TestIdentityService_ResolveCaller_PlaceholderName(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "caller").Return(&entity.UserProfile{ID: "caller", FamilyCode: "F1", DisplayName: "  "}, nil)

	identity, err := fx.service.ResolveCaller(ctx, "caller")
	require.NoError(t, err)
	assert.Equal(t, "Alguém da família", identity.DisplayName)
}

func TestIdentityService_ResolveCaller_ConfiguredPlaceholder(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cfg := &config.Config{Notification: &config.NotificationConfig{PlaceholderName: "Someone"}}
	svc := NewIdentityService(userRepo, cfg, newDiscardLogger())
	ctx := context.Background()

	userRepo.EXPECT().FindUserByID(ctx, "caller").Return(&entity.UserProfile{ID: "caller", FamilyCode: "F1"}, nil)

	identity, err := svc.ResolveCaller(ctx, "caller")
	require.NoError(t, err)
	assert.Equal(t, "Someone", identity.DisplayName)
}

func TestIdentityService_ResolveCaller_Errors(t *testing.T) {
	tests := []struct {
		name     string
		callerID string
		setup    func(fx identityServiceFixtures)
		wantErr  error
		wantKind domainerrors.Kind
	}{
		{
			name:     "empty caller",
			callerID: "",
			setup:    func(identityServiceFixtures) {},
			wantErr:  domainerrors.ErrUnauthenticated,
			wantKind: domainerrors.KindUnauthenticated,
		},
		{
			name:     "profile missing",
			callerID: "ghost",
			setup: func(fx identityServiceFixtures) {
				fx.userRepo.EXPECT().FindUserByID(context.Background(), "ghost").Return(nil, repository.ErrUserNotFound)
			},
			wantErr:  domainerrors.ErrCallerNotFound,
			wantKind: domainerrors.KindNotFound,
		},
		{
			name:     "no family code",
			callerID: "loner",
			setup: func(fx identityServiceFixtures) {
				fx.userRepo.EXPECT().FindUserByID(context.Background(), "loner").Return(&entity.UserProfile{ID: "loner"}, nil)
			},
			wantErr:  domainerrors.ErrNoFamilyCode,
			wantKind: domainerrors.KindFailedPrecondition,
		},
		{
			name:     "store unreachable",
			callerID: "caller",
			setup: func(fx identityServiceFixtures) {
				fx.userRepo.EXPECT().FindUserByID(context.Background(), "caller").Return(nil, errors.New("connection refused"))
			},
			wantKind: domainerrors.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			tt.setup(fx)

			identity, err := fx.service.ResolveCaller(context.Background(), tt.callerID)
			require.Error(t, err)
			assert.Nil(t, identity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
		})
	}
}
