package impl

import (
	"context"
	"testing"
	"time"

	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	mockRepo "petkeeper/internal/mocks/repository"
	mockUC "petkeeper/internal/mocks/usecase"
	"petkeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsServiceFixtures struct {
	service    *statsService
	identityUC *mockUC.MockIdentityUsecase
	petRepo    *mockRepo.MockPetRepository
	taskRepo   *mockRepo.MockTaskRepository
}

func createTestStatsService(t *testing.T, now time.Time) statsServiceFixtures {
	identityUC := mockUC.NewMockIdentityUsecase(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)

	svc := NewStatsService(identityUC, petRepo, taskRepo, newDiscardLogger()).(*statsService)
	svc.now = func() time.Time { return now }

	return statsServiceFixtures{
		service:    svc,
		identityUC: identityUC,
		petRepo:    petRepo,
		taskRepo:   taskRepo,
	}
}

func TestStatsService_FamilyStats(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	fx := createTestStatsService(t, now)
	ctx := context.Background()

	fx.petRepo.EXPECT().CountPetsByFamilyCode(ctx, "F1").Return(2, nil)
	fx.taskRepo.EXPECT().FindTasksByFamilyCode(ctx, "F1").Return([]*entity.PetTask{
		{ID: "1", Done: true, DueDate: &yesterday},
		{ID: "2", Done: false, DueDate: &yesterday},
		{ID: "3", Done: false, DueDate: &tomorrow},
	}, nil)

	stats, err := fx.service.FamilyStats(ctx, "F1")
	require.NoError(t, err)
	assert.Equal(t, &entity.FamilyStats{
		TotalPets:      2,
		TotalTasks:     3,
		CompletedTasks: 1,
		PendingTasks:   2,
		OverdueTasks:   1,
	}, stats)
	assert.Equal(t, stats.TotalTasks, stats.CompletedTasks+stats.PendingTasks)
}

func TestStatsService_TasksWithoutDueDateAreNeverOverdue(t *testing.T) {
	fx := createTestStatsService(t, time.Now())
	ctx := context.Background()

	fx.petRepo.EXPECT().CountPetsByFamilyCode(ctx, "F1").Return(0, nil)
	fx.taskRepo.EXPECT().FindTasksByFamilyCode(ctx, "F1").Return([]*entity.PetTask{{ID: "1"}, {ID: "2"}}, nil)

	stats, err := fx.service.FamilyStats(ctx, "F1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingTasks)
	assert.Equal(t, 0, stats.OverdueTasks)
}

func TestStatsService_CallerFamilyStats(t *testing.T) {
	fx := createTestStatsService(t, time.Now())
	ctx := context.Background()

	fx.identityUC.EXPECT().ResolveCaller(ctx, "caller").Return(&usecase.CallerIdentity{UserID: "caller", FamilyCode: "F9"}, nil)
	fx.petRepo.EXPECT().CountPetsByFamilyCode(ctx, "F9").Return(1, nil)
	fx.taskRepo.EXPECT().FindTasksByFamilyCode(ctx, "F9").Return(nil, nil)

	stats, err := fx.service.CallerFamilyStats(ctx, "caller")
	require.NoError(t, err)
	assert.Equal(t, &entity.FamilyStats{TotalPets: 1}, stats)
}

func TestStatsService_CallerWithoutFamily(t *testing.T) {
	fx := createTestStatsService(t, time.Now())
	ctx := context.Background()

	fx.identityUC.EXPECT().ResolveCaller(ctx, "loner").Return(nil, domainerrors.ErrNoFamilyCode)

	_, err := fx.service.CallerFamilyStats(ctx, "loner")
	assert.ErrorIs(t, err, domainerrors.ErrNoFamilyCode)
}

func TestStatsService_StoreErrors(t *testing.T) {
	t.Run("pet count", func(t *testing.T) {
		fx := createTestStatsService(t, time.Now())
		ctx := context.Background()
		fx.petRepo.EXPECT().CountPetsByFamilyCode(ctx, "F1").Return(0, errors.New("boom"))

		_, err := fx.service.FamilyStats(ctx, "F1")
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})

	t.Run("task query", func(t *testing.T) {
		fx := createTestStatsService(t, time.Now())
		ctx := context.Background()
		fx.petRepo.EXPECT().CountPetsByFamilyCode(ctx, "F1").Return(1, nil)
		fx.taskRepo.EXPECT().FindTasksByFamilyCode(ctx, "F1").Return(nil, errors.New("boom"))

		_, err := fx.service.FamilyStats(ctx, "F1")
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})
}
