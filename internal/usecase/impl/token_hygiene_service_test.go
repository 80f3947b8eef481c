package impl

import (
	"context"
	"testing"

	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/domain/service"
	mockRepo "petkeeper/internal/mocks/repository"
	mockSvc "petkeeper/internal/mocks/service"
	"petkeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tokenHygieneFixtures struct {
	service         usecase.TokenHygieneUsecase
	userRepo        *mockRepo.MockUserRepository
	notificationSvc *mockSvc.MockNotificationService
	metrics         *mockSvc.MockMetricsRecorder
}

func createTestTokenHygieneService(t *testing.T) tokenHygieneFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	return tokenHygieneFixtures{
		service:         NewTokenHygieneService(userRepo, notificationSvc, metrics, newDiscardLogger()),
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		metrics:         metrics,
	}
}

func isDryRunFor(tokens []string) func(*service.MulticastMessage) bool {
	return func(msg *service.MulticastMessage) bool {
		return msg.DryRun &&
			msg.Title == "" && msg.Body == "" &&
			msg.Data["test"] == "true" &&
			assert.ObjectsAreEqual(tokens, msg.Tokens)
	}
}

func TestTokenHygieneService_RemovesOnlyDeadTokens(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()
	tokens := []string{"A", "B", "C"}

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(profile("u1", "F1", tokens...), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(isDryRunFor(tokens))).
		Return(&service.MulticastResult{
			SuccessCount: 1,
			FailureCount: 2,
			Responses: []service.SendResponse{
				{Success: true},
				failedResponse(entity.DeliveryErrorUnregistered),
				failedResponse(entity.DeliveryErrorInvalidArgument),
			},
		}, nil)
	fx.userRepo.EXPECT().UpdateFCMTokens(ctx, "u1", []string{"A"}).Return(nil).Once()
	fx.metrics.EXPECT().RecordTokensRemoved(2).Return()

	result, err := fx.service.CleanupTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &usecase.TokenCleanupResult{RemovedTokens: 2, ValidTokens: 1}, result)
}

func TestTokenHygieneService_RetainsAmbiguousFailures(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()
	tokens := []string{"A", "B", "C", "D"}

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(profile("u1", "F1", tokens...), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(isDryRunFor(tokens))).
		Return(&service.MulticastResult{
			Responses: []service.SendResponse{
				failedResponse(entity.DeliveryErrorUnavailable),
				failedResponse(entity.DeliveryErrorQuotaExceeded),
				failedResponse(entity.DeliveryErrorInternal),
				{Err: errors.New("weird")},
			},
		}, nil)

	result, err := fx.service.CleanupTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.RemovedTokens)
	assert.Equal(t, 4, result.ValidTokens)
	fx.userRepo.AssertNotCalled(t, "UpdateFCMTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestTokenHygieneService_AllValidNoWrite(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(profile("u1", "F1", "A", "B"), nil)
	fx.notificationSvc.EXPECT().SendMulticast(ctx, mock.Anything).Return(successResponses(2), nil)

	result, err := fx.service.CleanupTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &usecase.TokenCleanupResult{RemovedTokens: 0, ValidTokens: 2}, result)
	fx.userRepo.AssertNotCalled(t, "UpdateFCMTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestTokenHygieneService_NoTokensSkipsDryRun(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(profile("u1", "F1"), nil)

	result, err := fx.service.CleanupTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &usecase.TokenCleanupResult{}, result)
	fx.notificationSvc.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything)
}

func TestTokenHygieneService_UserNotFound(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CleanupTokens(ctx, "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestTokenHygieneService_DryRunUnreachable(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(profile("u1", "F1", "A"), nil)
	fx.notificationSvc.EXPECT().SendMulticast(ctx, mock.Anything).Return(nil, errors.New("unreachable"))

	_, err := fx.service.CleanupTokens(ctx, "u1")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestTokenHygieneService_WriteFailure(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(profile("u1", "F1", "A"), nil)
	fx.notificationSvc.EXPECT().SendMulticast(ctx, mock.Anything).Return(&service.MulticastResult{
		Responses: []service.SendResponse{failedResponse(entity.DeliveryErrorTokenNotRegistered)},
	}, nil)
	fx.userRepo.EXPECT().UpdateFCMTokens(ctx, "u1", []string{}).Return(errors.New("write conflict"))

	_, err := fx.service.CleanupTokens(ctx, "u1")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestTokenHygieneService_EmptyStoredTokenRemovedWithoutDryRun(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(profile("u1", "F1", "", "  "), nil)
	fx.userRepo.EXPECT().UpdateFCMTokens(ctx, "u1", []string{}).Return(nil).Once()
	fx.metrics.EXPECT().RecordTokensRemoved(2).Return()

	result, err := fx.service.CleanupTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &usecase.TokenCleanupResult{RemovedTokens: 2, ValidTokens: 0}, result)
	fx.notificationSvc.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything)
}

func TestTokenHygieneService_EmptyStoredTokenKeptOutOfDryRun(t *testing.T) {
	fx := createTestTokenHygieneService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(profile("u1", "F1", "A", "", "B"), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(isDryRunFor([]string{"A", "B"}))).
		Return(&service.MulticastResult{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []service.SendResponse{
				{Success: true},
				failedResponse(entity.DeliveryErrorUnregistered),
			},
		}, nil)
	fx.userRepo.EXPECT().UpdateFCMTokens(ctx, "u1", []string{"A"}).Return(nil).Once()
	fx.metrics.EXPECT().RecordTokensRemoved(2).Return()

	result, err := fx.service.CleanupTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &usecase.TokenCleanupResult{RemovedTokens: 2, ValidTokens: 1}, result)
}
