package service

import (
	"context"

	"bistro/internal/domain/entity"
)

// SessionStore persists in-flight conversation sessions keyed by user.
// Sessions carry their own TTL so abandoned flows expire on their own.
type SessionStore interface {
	// Get retrieves the user's active session, or ErrSessionNotFound when
	// none exists or it has expired.
	Get(ctx context.Context, userID int64) (*entity.Session, error)

	// Save stores the session and refreshes its TTL.
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes the user's session. Deleting an absent session is a
	// no-op.
	Delete(ctx context.Context, userID int64) error
}
