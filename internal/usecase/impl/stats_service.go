package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "petkeeper/internal/delivery/context"
	"petkeeper/internal/domain/entity"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/repository"
	"petkeeper/internal/usecase"
)

type statsService struct {
	identityUC usecase.IdentityUsecase
	petRepo    repository.PetRepository
	taskRepo   repository.TaskRepository
	now        func() time.Time
	logger     *slog.Logger
}

// NewStatsService creates a new family statistics aggregator
func NewStatsService(
	identityUC usecase.IdentityUsecase,
	petRepo repository.PetRepository,
	taskRepo repository.TaskRepository,
	logger *slog.Logger,
) usecase.FamilyStatsUsecase {
	return &statsService{
		identityUC: identityUC,
		petRepo:    petRepo,
		taskRepo:   taskRepo,
		now:        time.Now,
		logger:     logger,
	}
}

// CallerFamilyStats computes the counters for the caller's own family
func (s *statsService) CallerFamilyStats(ctx context.Context, callerID string) (*entity.FamilyStats, error) {
	caller, err := s.identityUC.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return s.FamilyStats(ctx, caller.FamilyCode)
}

// FamilyStats counts pets and classifies tasks against the current time
func (s *statsService) FamilyStats(ctx context.Context, familyCode string) (*entity.FamilyStats, error) {
	if familyCode == "" {
		return nil, domainerrors.ErrNoFamilyCode
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	totalPets, err := s.petRepo.CountPetsByFamilyCode(ctx, familyCode)
	if err != nil {
		logger.Error("Failed to count family pets", slog.String("family_code", familyCode), slog.Any("error", err))

		return nil, domainerrors.NewInternalError(err, "failed to count pets")
	}

	tasks, err := s.taskRepo.FindTasksByFamilyCode(ctx, familyCode)
	if err != nil {
		logger.Error("Failed to query family tasks", slog.String("family_code", familyCode), slog.Any("error", err))

		return nil, domainerrors.NewInternalError(err, "failed to query tasks")
	}

	stats := &entity.FamilyStats{
		TotalPets:  totalPets,
		TotalTasks: len(tasks),
	}

	now := s.now()
	for _, task := range tasks {
		if task.Done {
			stats.CompletedTasks++

			continue
		}

		stats.PendingTasks++
		if task.IsOverdue(now) {
			stats.OverdueTasks++
		}
	}

	return stats, nil
}
