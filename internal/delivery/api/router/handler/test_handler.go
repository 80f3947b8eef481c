package handler

import (
	"net/http"

	"petkeeper/internal/delivery/api/middleware"
	"petkeeper/internal/delivery/api/response"
	domainerrors "petkeeper/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DevTokenIssuer mints bearer tokens for local testing.
type DevTokenIssuer interface {
	IssueToken(userID, email string) (string, error)
}

// TestHandlerParams holds dependencies for TestHandler. Issuer is only present
// when the jwt auth provider is configured.
type TestHandlerParams struct {
	fx.In

	Issuer DevTokenIssuer `optional:"true"`
}

// TestHandler handles test endpoints, registered only when test routes are enabled
type TestHandler struct {
	issuer DevTokenIssuer
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{issuer: params.Issuer}
}

// DevTokenRequest is the body of POST /test/token.
type DevTokenRequest struct {
	UserID string `json:"userId" validate:"required,max=128"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
}

// DevTokenResponse carries a freshly minted bearer token.
type DevTokenResponse struct {
	response.Envelope
	Token string `json:"token"`
}

// CallerResponse echoes the authenticated caller.
type CallerResponse struct {
	response.Envelope
	UserID string `json:"userId"`
}

// TestPublicEndpoint tests a public endpoint
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, response.OK(c))
}

// TestAuthMiddleware returns the caller resolved by the auth middleware
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, CallerResponse{
		Envelope: response.OK(c),
		UserID:   userID,
	})
}

// IssueDevToken mints a token for any user ID
func (h *TestHandler) IssueDevToken(c echo.Context) error {
	if h.issuer == nil {
		return echo.NewHTTPError(http.StatusNotFound, "dev tokens require the jwt auth provider")
	}

	var req DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.issuer.IssueToken(req.UserID, req.Email)
	if err != nil {
		return domainerrors.AsInternal(err, "failed to issue dev token")
	}

	return response.Success(c, http.StatusOK, DevTokenResponse{
		Envelope: response.OK(c),
		Token:    token,
	})
}
