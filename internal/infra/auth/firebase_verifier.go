// Package auth provides the bearer-token verifiers for the HTTP surface.
package auth

import (
	"context"

	"petkeeper/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// idTokenVerifier is the part of *auth.Client used to check Firebase ID tokens.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier creates a TokenVerifier for Firebase Auth ID tokens
func NewFirebaseVerifier(client *auth.Client) service.TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (*service.VerifiedCaller, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify firebase id token")
	}
	if decoded.UID == "" {
		return nil, errors.New("firebase id token has no uid")
	}

	caller := &service.VerifiedCaller{UserID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		caller.Email = email
	}

	return caller, nil
}
