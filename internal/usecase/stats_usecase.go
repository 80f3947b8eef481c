package usecase

import (
	"context"

	"petkeeper/internal/domain/entity"
)

// FamilyStatsUsecase aggregates a family's pets and tasks.
type FamilyStatsUsecase interface {
	// FamilyStats computes the counters for familyCode.
	FamilyStats(ctx context.Context, familyCode string) (*entity.FamilyStats, error)

	// CallerFamilyStats resolves the caller's family first, then computes its counters.
	CallerFamilyStats(ctx context.Context, callerID string) (*entity.FamilyStats, error)
}
