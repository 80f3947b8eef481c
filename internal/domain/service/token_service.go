package service

import (
	"context"
)

// VerifiedCaller is the identity proven by a bearer token.
type VerifiedCaller struct {
	UserID string
	Email  string
}

// TokenVerifier authenticates callers of the HTTP surface.
type TokenVerifier interface {
	// VerifyToken checks the bearer token and returns the caller it was issued to.
	VerifyToken(ctx context.Context, token string) (*VerifiedCaller, error)
}
