package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestScope(t *testing.T) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, nil))

	ctx, reqLogger := WithRequestScope(context.Background(), base, "req-1")
	reqLogger.Info("hello")

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, reqLogger, GetLogger(ctx))
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Nil(t, GetLogger(context.Background()))
}

func TestCallerID(t *testing.T) {
	assert.Empty(t, GetCallerID(context.Background()))
	assert.Equal(t, "u1", GetCallerID(WithCallerID(context.Background(), "u1")))
}

func TestEchoRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", GetRequestID(c))
}
