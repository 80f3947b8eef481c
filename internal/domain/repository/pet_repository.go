package repository

import (
	"context"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/errors"
)

// ErrPetNotFound is returned when no pet exists for the given ID.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository defines the read operations on the pets collection.
type PetRepository interface {
	// FindPetByID retrieves a single pet by its ID.
	FindPetByID(ctx context.Context, id string) (*entity.Pet, error)

	// CountPetsByFamilyCode counts the pets registered under familyCode.
	CountPetsByFamilyCode(ctx context.Context, familyCode string) (int, error)
}
