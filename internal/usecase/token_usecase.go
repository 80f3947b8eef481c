package usecase

import (
	"context"
)

// TokenCleanupResult reports what a hygiene run did to the user's token list.
type TokenCleanupResult struct {
	RemovedTokens int `json:"removedTokens"`
	ValidTokens   int `json:"validTokens"`
}

// TokenHygieneUsecase prunes dead push tokens from a profile.
type TokenHygieneUsecase interface {
	// CleanupTokens checks every token of userID with a dry-run send and removes only
	// those the transport reports as dead. The profile is written only when the
	// token count changes.
	CleanupTokens(ctx context.Context, userID string) (*TokenCleanupResult, error)
}
