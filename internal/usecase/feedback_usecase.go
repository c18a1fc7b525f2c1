package usecase

import (
	"context"
	"time"

	"bistro/internal/domain/entity"
)

// AddFeedbackInput carries a new feedback entry.
type AddFeedbackInput struct {
	UserID  int64  `json:"user_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
	OrderID *int64 `json:"order_id"`
}

// AddFeedbackOutput reports the stored entry and whether this submission
// reached the monthly loyalty threshold.
type AddFeedbackOutput struct {
	Feedback      *entity.Feedback `json:"feedback"`
	MonthlyCount  int64            `json:"monthly_count"`
	RewardEarned  bool             `json:"reward_earned"`
}

// FeedbackUsecase defines the feedback ledger use cases.
type FeedbackUsecase interface {
	// Add stores a rating in [1, 5] with an optional comment and order
	// reference, and reports the loyalty state for the current month.
	Add(ctx context.Context, input *AddFeedbackInput) (*AddFeedbackOutput, error)

	// MonthlyCount counts the user's feedback entries in a calendar month.
	MonthlyCount(ctx context.Context, userID int64, month time.Month, year int) (int64, error)

	// ListForUser returns the user's feedback, most recent first.
	ListForUser(ctx context.Context, userID int64) ([]*entity.Feedback, error)

	// ListAll returns every feedback entry, most recent first.
	ListAll(ctx context.Context) ([]*entity.Feedback, error)
}
