// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the application layer and the document store.
package repository

import (
	"context"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/errors"
)

// ErrUserNotFound is returned when no profile exists for the given ID.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations on the users collection.
type UserRepository interface {
	// FindUserByID retrieves a single profile by its user ID.
	FindUserByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// FindUsersByFamilyCode retrieves every profile whose family code equals familyCode.
	FindUsersByFamilyCode(ctx context.Context, familyCode string) ([]*entity.UserProfile, error)

	// UpdateFCMTokens replaces the user's token list and refreshes its update timestamp.
	UpdateFCMTokens(ctx context.Context, id string, tokens []string) error
}
