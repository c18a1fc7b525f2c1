package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentityMiddleware() *IdentityMiddleware {
	return NewIdentityMiddleware(&config.Config{
		Restaurant: &config.RestaurantConfig{
			AdminIDs: []int64{1000},
		},
	})
}

func performRequest(m echo.MiddlewareFunc, userIDHeader string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if userIDHeader != "" {
		req.Header.Set("X-User-Id", userIDHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec, c
}

func TestRequireUser_SetsIdentity(t *testing.T) {
	m := newTestIdentityMiddleware()

	rec, c := performRequest(m.RequireUser, "42")

	assert.Equal(t, http.StatusOK, rec.Code)
	userID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestRequireUser_MissingHeader(t *testing.T) {
	m := newTestIdentityMiddleware()

	rec, _ := performRequest(m.RequireUser, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUser_RejectsBadValues(t *testing.T) {
	m := newTestIdentityMiddleware()

	for _, raw := range []string{"abc", "-1", "0", "4.2"} {
		rec, _ := performRequest(m.RequireUser, raw)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", raw)
	}
}

func TestRequireAdmin_AllowsConfiguredAdmin(t *testing.T) {
	m := newTestIdentityMiddleware()

	chained := func(next echo.HandlerFunc) echo.HandlerFunc {
		return m.RequireUser(m.RequireAdmin(next))
	}
	rec, _ := performRequest(chained, "1000")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_ForbidsRegularUser(t *testing.T) {
	m := newTestIdentityMiddleware()

	chained := func(next echo.HandlerFunc) echo.HandlerFunc {
		return m.RequireUser(m.RequireAdmin(next))
	}
	rec, _ := performRequest(chained, "42")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_WithoutIdentity(t *testing.T) {
	m := newTestIdentityMiddleware()

	rec, _ := performRequest(m.RequireAdmin, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserID_AbsentByDefault(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := UserID(c)

	assert.False(t, ok)
}
