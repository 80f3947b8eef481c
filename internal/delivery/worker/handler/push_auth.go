package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

type idTokenValidateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// pushAuthenticator checks the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
type pushAuthenticator struct {
	audience string
	validate idTokenValidateFunc
}

func newPushAuthenticator(audience string) *pushAuthenticator {
	return &pushAuthenticator{audience: audience, validate: idtoken.Validate}
}

func (a *pushAuthenticator) verify(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := a.validate(req.Context(), token, a.expectedAudience(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// expectedAudience falls back to the push endpoint URL, the subscription default.
func (a *pushAuthenticator) expectedAudience(req *http.Request) string {
	if a.audience != "" {
		return a.audience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
