package repository

import (
	"context"
	"errors"
	"time"

	"bistro/internal/domain/entity"
)

// ErrFeedbackNotFound is a domain-specific error returned when feedback is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines the standard operations for feedback persistence.
type FeedbackRepository interface {
	// Create persists a feedback entry and fills in its generated ID.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// CountForMonth counts the user's feedback entries created within the
	// given calendar month. This is the durable loyalty counter: it must
	// survive restarts, so it is a query rather than process state.
	CountForMonth(ctx context.Context, userID int64, month time.Month, year int) (int64, error)

	// FindByOrder retrieves the feedback left for one order, or
	// ErrFeedbackNotFound.
	FindByOrder(ctx context.Context, orderID int64) (*entity.Feedback, error)

	// FindByUser returns the user's feedback entries, most recent first.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Feedback, error)

	// FindAll returns every feedback entry, most recent first.
	FindAll(ctx context.Context) ([]*entity.Feedback, error)
}
