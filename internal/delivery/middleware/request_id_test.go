package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bistro/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, headerValue string) (*httptest.ResponseRecorder, context.Context) {
	t.Helper()

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if headerValue != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, headerValue)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotCtx context.Context
	handler := m.Process(func(c echo.Context) error {
		gotCtx = c.Request().Context()

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, gotCtx
}

func TestRequestID_ClientSuppliedIDIsKept(t *testing.T) {
	rec, ctx := runRequestID(t, "req-123")

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(ctx))
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	rec, ctx := runRequestID(t, "")

	requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	_, err := uuid.Parse(requestID)
	require.NoError(t, err)
	assert.Equal(t, requestID, deliverycontext.GetRequestIDFromContext(ctx))
}

func TestRequestID_ScopedLoggerOnContext(t *testing.T) {
	_, ctx := runRequestID(t, "req-123")

	assert.NotNil(t, deliverycontext.GetLogger(ctx))
}
