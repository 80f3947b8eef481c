// Package response renders the callable response envelopes.
package response

import (
	"net/http"

	deliverycontext "petkeeper/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Envelope is embedded in every response body; successful payload fields sit
// beside it at the top level.
type Envelope struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Envelope
	Error *ErrorInfo `json:"error"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error kind, e.g. "not-found"
	Reason  string `json:"reason,omitempty"`  // Business error code, e.g. "PET_NOT_FOUND"
	Message string `json:"message"`           // User-facing message
	Details string `json:"details,omitempty"` // Only for 4xx other than 401/403
}

// OK builds a successful envelope for c
func OK(c echo.Context) Envelope {
	return Envelope{
		Success:   true,
		RequestID: deliverycontext.GetRequestID(c),
	}
}

// Success writes body, which should embed the envelope returned by OK
func Success(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, info *ErrorInfo) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Envelope: Envelope{
			Success:   false,
			RequestID: deliverycontext.GetRequestID(c),
		},
		Error: info,
	})
}
