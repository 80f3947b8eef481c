package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"petkeeper/config"
	deliverycontext "petkeeper/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	buf := &bytes.Buffer{}
	e := newTestEcho(buf, false)

	var seenID string
	e.GET("/ping", func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-in")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-in", seenID)
		assert.Equal(t, "req-in", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, seenID)
		assert.NotEqual(t, "req-in", seenID)
		assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet outside debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := newTestEcho(buf, false)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.NotContains(t, buf.String(), "HTTP Request")
	})

	t.Run("server errors always logged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := newTestEcho(buf, false)
		e.GET("/boom", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusBadGateway, "upstream")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, buf.String(), "HTTP Request")
		assert.Contains(t, buf.String(), "status=502")
		assert.Contains(t, buf.String(), "request_id=")
	})

	t.Run("debug logs everything", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := newTestEcho(buf, true)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Contains(t, buf.String(), "status=200")
	})
}
