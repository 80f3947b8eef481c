package middleware

import (
	"log/slog"
	"net/http"

	"petkeeper/internal/delivery/api/response"
	deliverycontext "petkeeper/internal/delivery/context"
	domainerrors "petkeeper/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler error as an error envelope
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is the echo HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind() == domainerrors.KindInternal {
			logger.Error("Internal error",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), &response.ErrorInfo{
			Code:    string(appErr.Kind()),
			Reason:  appErr.ErrorCode(),
			Message: appErr.Message(),
			Details: appErr.Details(),
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, &response.ErrorInfo{
			Code:    kindForStatus(httpErr.Code),
			Reason:  "HTTP_ERROR",
			Message: message,
		})

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, &response.ErrorInfo{
		Code:    string(domainerrors.KindInternal),
		Reason:  domainerrors.ErrInternal.ErrorCode(),
		Message: domainerrors.ErrInternal.Message(),
	})
}

func kindForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return string(domainerrors.KindUnauthenticated)
	case status == http.StatusNotFound:
		return string(domainerrors.KindNotFound)
	case status >= 500:
		return string(domainerrors.KindInternal)
	default:
		return string(domainerrors.KindInvalidArgument)
	}
}
