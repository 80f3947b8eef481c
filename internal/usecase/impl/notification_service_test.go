package impl

import (
	"context"
	"testing"
	"time"

	"petkeeper/config"
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

// notificationServiceFixtures wires the real resolve/gather/collect/dispatch
// chain over mocked store and transport.
type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	userRepo        *mockRepo.MockUserRepository
	petRepo         *mockRepo.MockPetRepository
	notificationSvc *mockSvc.MockNotificationService
	publisher       *mockSvc.MockEventPublisher
	metrics         *mockSvc.MockMetricsRecorder
}

func createTestNotificationService(t *testing.T, asyncCleanup bool) notificationServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	logger := newDiscardLogger()

	notificationCfg := config.DefaultNotificationConfig()
	notificationCfg.AsyncCleanup = asyncCleanup
	cfg := &config.Config{Notification: notificationCfg}

	svc := NewNotificationService(NotificationServiceParams{
		IdentityUC:   NewIdentityService(userRepo, cfg, logger),
		MembershipUC: NewMembershipService(userRepo, logger),
		DispatchUC:   NewDispatchService(notificationSvc, logger),
		PetRepo:      petRepo,
		Publisher:    publisher,
		Metrics:      metrics,
		Config:       cfg,
		Logger:       logger,
	})

	return notificationServiceFixtures{
		service:         svc,
		userRepo:        userRepo,
		petRepo:         petRepo,
		notificationSvc: notificationSvc,
		publisher:       publisher,
		metrics:         metrics,
	}
}

func (fx notificationServiceFixtures) expectCaller(ctx context.Context, caller *entity.UserProfile) {
	fx.userRepo.EXPECT().FindUserByID(ctx, caller.ID).Return(caller, nil)
}

func TestNotificationService_NotifyFamily_TargetsDeduplicatedFamilyTokens(t *testing.T) {
	fx := createTestNotificationService(t, false)
	ctx := context.Background()
	caller := &entity.UserProfile{ID: "C", FamilyCode: "F1", DisplayName: "Ana", FCMTokens: []string{"tc"}}

	fx.expectCaller(ctx, caller)
	fx.petRepo.EXPECT().FindPetByID(ctx, "p1").Return(&entity.Pet{ID: "p1", FamilyCode: "F1", Name: "Rex"}, nil)
	fx.userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{
		caller,
		profile("m1", "F1", "t1"),
		profile("m2", "F1", "t2", "t1"),
	}, nil)

	var sent *service.MulticastMessage
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.Anything).
		Run(func(_ context.Context, msg *service.MulticastMessage) { sent = msg }).
		Return(successResponses(2), nil).
		Once()
	fx.metrics.EXPECT().RecordDispatch(entity.EventKindNewTask, mock.Anything).Return()

	result, err := fx.service.NotifyFamily(ctx, "C", &entity.FamilyEvent{
		Kind:      entity.EventKindNewTask,
		PetID:     "p1",
		TaskTitle: "Banho",
	})
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.ElementsMatch(t, []string{"t1", "t2"}, sent.Tokens)
	assert.NotContains(t, sent.Tokens, "tc")
	assert.Equal(t, "PetKeeper Lite: Rex", sent.Title)
	assert.Equal(t, "Banho - Ana", sent.Body)
	assert.Equal(t, &usecase.NotifyResult{NotificationsSent: 2, TokenCount: 2}, result)
}

func TestNotificationService_NotifyFamily_CallerTokenSharedWithMember(t *testing.T) {
	fx := createTestNotificationService(t, false)
	ctx := context.Background()
	caller := &entity.UserProfile{ID: "C", FamilyCode: "F1", FCMTokens: []string{"shared"}}

	fx.expectCaller(ctx, caller)
	fx.userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{
		profile("m1", "F1", "shared", "t1"),
	}, nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(msg *service.MulticastMessage) bool {
			return assert.ObjectsAreEqual([]string{"t1"}, msg.Tokens)
		})).
		Return(successResponses(1), nil)
	fx.metrics.EXPECT().RecordDispatch(entity.EventKindCustomMessage, mock.Anything).Return()

	result, err := fx.service.NotifyFamily(ctx, "C", &entity.FamilyEvent{Kind: entity.EventKindCustomMessage, Message: "Oi"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsSent)
}

func TestNotificationService_NotifyFamily_NoTokens(t *testing.T) {
	fx := createTestNotificationService(t, false)
	ctx := context.Background()
	caller := &entity.UserProfile{ID: "C", FamilyCode: "F1"}

	fx.expectCaller(ctx, caller)
	fx.userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{caller, profile("m1", "F1")}, nil)

	result, err := fx.service.NotifyFamily(ctx, "C", &entity.FamilyEvent{
		Kind:       entity.EventKindNewPet,
		PetName:    "Mia",
		PetSpecies: "Gato",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.NotificationsSent)
	assert.Equal(t, NoTokensMessage, result.Message)
	fx.notificationSvc.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything)
}

func TestNotificationService_NotifyFamily_ValidationHappensFirst(t *testing.T) {
	fx := createTestNotificationService(t, false)

	tests := []struct {
		name  string
		event *entity.FamilyEvent
		want  error
	}{
		{"nil event", nil, domainerrors.ErrInvalidArgument},
		{"unknown kind", &entity.FamilyEvent{Kind: "delete_pet"}, domainerrors.ErrUnknownEventKind},
		{"missing task title", &entity.FamilyEvent{Kind: entity.EventKindNewTask, PetID: "p1"}, domainerrors.ErrInvalidArgument},
		{"missing due date", &entity.FamilyEvent{Kind: entity.EventKindNewVaccine, PetID: "p1", VaccineName: "V10"}, domainerrors.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.NotifyFamily(context.Background(), "C", tt.event)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
		})
	}
}

func TestNotificationService_NotifyFamily_Unauthenticated(t *testing.T) {
	fx := createTestNotificationService(t, false)

	_, err := fx.service.NotifyFamily(context.Background(), "", &entity.FamilyEvent{Kind: entity.EventKindCustomMessage, Message: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestNotificationService_NotifyFamily_CallerWithoutFamily(t *testing.T) {
	fx := createTestNotificationService(t, false)
	ctx := context.Background()

	fx.expectCaller(ctx, &entity.UserProfile{ID: "C"})

	_, err := fx.service.NotifyFamily(ctx, "C", &entity.FamilyEvent{Kind: entity.EventKindCustomMessage, Message: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrNoFamilyCode)
	assert.Equal(t, domainerrors.KindFailedPrecondition, domainerrors.KindOf(err))
}

func TestNotificationService_NotifyFamily_PetLookup(t *testing.T) {
	due := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	event := &entity.FamilyEvent{Kind: entity.EventKindOverdueTask, PetID: "p1", TaskTitle: "Vermífugo", DueDate: &due}

	t.Run("missing pet", func(t *testing.T) {
		fx := createTestNotificationService(t, false)
		ctx := context.Background()
		fx.expectCaller(ctx, &entity.UserProfile{ID: "C", FamilyCode: "F1"})
		fx.petRepo.EXPECT().FindPetByID(ctx, "p1").Return(nil, repository.ErrPetNotFound)

		_, err := fx.service.NotifyFamily(ctx, "C", event)
		assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
	})

	t.Run("pet of another family", func(t *testing.T) {
		fx := createTestNotificationService(t, false)
		ctx := context.Background()
		fx.expectCaller(ctx, &entity.UserProfile{ID: "C", FamilyCode: "F1"})
		fx.petRepo.EXPECT().FindPetByID(ctx, "p1").Return(&entity.Pet{ID: "p1", FamilyCode: "F2", Name: "Rex"}, nil)

		_, err := fx.service.NotifyFamily(ctx, "C", event)
		assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
	})

	t.Run("unnamed pet", func(t *testing.T) {
		fx := createTestNotificationService(t, false)
		ctx := context.Background()
		fx.expectCaller(ctx, &entity.UserProfile{ID: "C", FamilyCode: "F1"})
		fx.petRepo.EXPECT().FindPetByID(ctx, "p1").Return(&entity.Pet{ID: "p1", FamilyCode: "F1"}, nil)
		fx.userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{profile("m1", "F1", "t1")}, nil)
		fx.notificationSvc.EXPECT().
			SendMulticast(ctx, mock.MatchedBy(func(msg *service.MulticastMessage) bool {
				return msg.Title == "PetKeeper Lite: Um pet" &&
					msg.Body == "Tarefa vencida: Vermífugo estava prevista para 05/03/2024"
			})).
			Return(successResponses(1), nil)
		fx.metrics.EXPECT().RecordDispatch(entity.EventKindOverdueTask, mock.Anything).Return()

		_, err := fx.service.NotifyFamily(ctx, "C", event)
		require.NoError(t, err)
	})

	t.Run("store unreachable", func(t *testing.T) {
		fx := createTestNotificationService(t, false)
		ctx := context.Background()
		fx.expectCaller(ctx, &entity.UserProfile{ID: "C", FamilyCode: "F1"})
		fx.petRepo.EXPECT().FindPetByID(ctx, "p1").Return(nil, errors.New("unavailable"))

		_, err := fx.service.NotifyFamily(ctx, "C", event)
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})
}

func TestNotificationService_NotifyFamily_PublishesCleanupForDeadTokens(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	caller := &entity.UserProfile{ID: "C", FamilyCode: "F1", DisplayName: "Ana"}

	fx.expectCaller(ctx, caller)
	fx.userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{
		profile("m1", "F1", "t1"),
		profile("m2", "F1", "t2"),
		profile("m3", "F1", "t3"),
	}, nil)
	fx.notificationSvc.EXPECT().SendMulticast(ctx, mock.Anything).Return(&service.MulticastResult{
		SuccessCount: 1,
		FailureCount: 2,
		Responses: []service.SendResponse{
			failedResponse(entity.DeliveryErrorTokenNotRegistered),
			{Success: true},
			failedResponse(entity.DeliveryErrorUnavailable),
		},
	}, nil)
	fx.metrics.EXPECT().RecordDispatch(entity.EventKindCustomMessage, mock.Anything).Return()
	fx.publisher.EXPECT().
		PublishWorkerEvent(ctx, mock.MatchedBy(func(event *service.WorkerEvent) bool {
			return event.Type == service.WorkerEventTokensCleanup &&
				assert.ObjectsAreEqual([]string{"m1"}, event.UserIDs) &&
				event.EventID != ""
		})).
		Return(nil).
		Once()

	result, err := fx.service.NotifyFamily(ctx, "C", &entity.FamilyEvent{Kind: entity.EventKindCustomMessage, Message: "Jantar!"})
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotifyResult{NotificationsSent: 1, FailureCount: 2, TokenCount: 3}, result)
}

func TestNotificationService_NotifyFamily_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()

	fx.expectCaller(ctx, &entity.UserProfile{ID: "C", FamilyCode: "F1"})
	fx.userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{profile("m1", "F1", "t1")}, nil)
	fx.notificationSvc.EXPECT().SendMulticast(ctx, mock.Anything).Return(&service.MulticastResult{
		FailureCount: 1,
		Responses:    []service.SendResponse{failedResponse(entity.DeliveryErrorInvalidArgument)},
	}, nil)
	fx.metrics.EXPECT().RecordDispatch(entity.EventKindCustomMessage, mock.Anything).Return()
	fx.publisher.EXPECT().PublishWorkerEvent(ctx, mock.Anything).Return(errors.New("topic not found"))

	result, err := fx.service.NotifyFamily(ctx, "C", &entity.FamilyEvent{Kind: entity.EventKindCustomMessage, Message: "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FailureCount)
}

func TestNotificationService_NotifyFamily_TransportUnreachable(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()

	fx.expectCaller(ctx, &entity.UserProfile{ID: "C", FamilyCode: "F1"})
	fx.userRepo.EXPECT().FindUsersByFamilyCode(ctx, "F1").Return([]*entity.UserProfile{profile("m1", "F1", "t1")}, nil)
	fx.notificationSvc.EXPECT().SendMulticast(ctx, mock.Anything).Return(nil, errors.New("connection reset"))

	result, err := fx.service.NotifyFamily(ctx, "C", &entity.FamilyEvent{Kind: entity.EventKindCustomMessage, Message: "x"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}
