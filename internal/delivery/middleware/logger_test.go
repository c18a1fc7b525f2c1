package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoggedRequest(t *testing.T, debug bool, status int) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	m := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/menu/dishes?category=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Handle(func(c echo.Context) error {
		return c.NoContent(status)
	})
	require.NoError(t, handler(c))

	return &buf
}

func TestLoggerMiddleware_DisabledOutsideDebug(t *testing.T) {
	buf := runLoggedRequest(t, false, http.StatusOK)

	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_LogsRequestInDebug(t *testing.T) {
	buf := runLoggedRequest(t, true, http.StatusOK)

	out := buf.String()
	assert.Contains(t, out, "HTTP request")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "category=2")
}

func TestLoggerMiddleware_ElevatesLevelForErrors(t *testing.T) {
	buf := runLoggedRequest(t, true, http.StatusInternalServerError)

	assert.Contains(t, buf.String(), "level=ERROR")
}
