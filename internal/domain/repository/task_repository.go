package repository

import (
	"context"

	"petkeeper/internal/domain/entity"
)

// TaskRepository defines the read operations on the pet_tasks collection.
type TaskRepository interface {
	// FindTasksByFamilyCode retrieves every task registered under familyCode.
	// Filtering happens in the store; callers never see other families' tasks.
	FindTasksByFamilyCode(ctx context.Context, familyCode string) ([]*entity.PetTask, error)
}
