package middleware

import (
	"strconv"

	"bistro/config"
	"bistro/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key carrying the caller's identity.
const ContextKeyUserID = "userID"

// IdentityMiddleware resolves the caller's identity. The conversation driver
// sits in front of this API and forwards the platform-assigned user ID in
// the X-User-Id header; there is no credential auth surface here.
type IdentityMiddleware struct {
	adminIDs map[int64]struct{}
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(cfg *config.Config) *IdentityMiddleware {
	adminIDs := make(map[int64]struct{})
	if cfg.Restaurant != nil {
		for _, id := range cfg.Restaurant.AdminIDs {
			adminIDs[id] = struct{}{}
		}
	}

	return &IdentityMiddleware{adminIDs: adminIDs}
}

// RequireUser validates the X-User-Id header and stores the ID on the context.
func (m *IdentityMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get("X-User-Id")
		if raw == "" {
			return response.Unauthorized(c, "MISSING_IDENTITY", "X-User-Id header is required")
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return response.Unauthorized(c, "INVALID_IDENTITY", "X-User-Id must be a positive integer")
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// RequireAdmin allows only the configured operator accounts through.
// It must be used AFTER RequireUser.
func (m *IdentityMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(ContextKeyUserID).(int64)
		if !ok {
			return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
		}

		if _, isAdmin := m.adminIDs[userID]; !isAdmin {
			return response.Forbidden(c, "NOT_ADMIN", "administrator access required")
		}

		return next(c)
	}
}

// UserID extracts the caller's identity set by RequireUser.
func UserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(ContextKeyUserID).(int64)

	return userID, ok
}
