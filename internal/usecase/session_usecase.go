package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// SessionUsecase drives the per-user conversation state machine. This is
// suspended-dialog state, not order state: abandoning a session leaves no
// committed rows behind.
type SessionUsecase interface {
	// Begin starts a flow at its first step, replacing any previous session.
	Begin(ctx context.Context, userID int64, flow entity.SessionFlow) (*entity.Session, error)

	// Advance moves the session to a later step of its flow, merging data
	// collected at the current step. Backward or cross-flow moves fail.
	Advance(ctx context.Context, userID int64, next entity.SessionStep, data map[string]string) (*entity.Session, error)

	// Get retrieves the active session.
	Get(ctx context.Context, userID int64) (*entity.Session, error)

	// Abandon drops the session. Idempotent.
	Abandon(ctx context.Context, userID int64) error
}
