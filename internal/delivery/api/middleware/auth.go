// Package middleware holds the API-only echo middleware: authentication and error rendering.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "petkeeper/internal/delivery/context"
	domainerrors "petkeeper/internal/domain/errors"
	"petkeeper/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const userIDKey = "userID"

// AuthMiddleware authenticates bearer tokens through the configured TokenVerifier.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid bearer token and records the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("missing bearer token")
		}

		ctx := c.Request().Context()
		caller, err := m.verifier.VerifyToken(ctx, strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		c.Set(userIDKey, caller.UserID)
		ctx = deliverycontext.WithCallerID(ctx, caller.UserID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("caller_id", caller.UserID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated caller set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(userIDKey).(string)

	return userID, ok && userID != ""
}
