package impl

import (
	"context"
	"log/slog"
	"time"

	"bistro/config"
	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLoyaltyThreshold = 3

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	txManager        repository.TransactionManager
	feedbackRepo     repository.FeedbackRepository
	loyaltyThreshold int
	logger           *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FeedbackRepo repository.FeedbackRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	threshold := defaultLoyaltyThreshold
	if params.Config != nil && params.Config.Loyalty != nil && params.Config.Loyalty.MonthlyThreshold > 0 {
		threshold = params.Config.Loyalty.MonthlyThreshold
	}

	return &feedbackService{
		txManager:        params.TxManager,
		feedbackRepo:     params.FeedbackRepo,
		loyaltyThreshold: threshold,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add stores a feedback entry and reports the loyalty state for the current
// month. The insert and the count share one transaction, so the count the
// caller sees includes exactly this entry.
func (srv *feedbackService) Add(ctx context.Context, input *usecase.AddFeedbackInput) (*usecase.AddFeedbackOutput, error) {
	if !entity.RatingInRange(input.Rating) {
		return nil, domainerrors.ErrRatingOutOfRange
	}

	now := time.Now().UTC()
	feedback := &entity.Feedback{
		UserID:    input.UserID,
		OrderID:   input.OrderID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
	}

	var monthlyCount int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedbackRepo := repoFactory.FeedbackRepo()

		if err := feedbackRepo.Create(ctx, feedback); err != nil {
			return errors.Wrap(err, "failed to create feedback")
		}

		count, err := feedbackRepo.CountForMonth(ctx, input.UserID, now.Month(), now.Year())
		if err != nil {
			return errors.Wrap(err, "failed to count monthly feedback")
		}
		monthlyCount = count

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add feedback", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	// The reward fires exactly once, on the submission that reaches the
	// threshold.
	rewardEarned := monthlyCount == int64(srv.loyaltyThreshold)
	if rewardEarned {
		srv.log(ctx).Info("Loyalty reward threshold reached",
			slog.Int64("userID", input.UserID), slog.Int64("monthlyCount", monthlyCount))
	}

	return &usecase.AddFeedbackOutput{
		Feedback:     feedback,
		MonthlyCount: monthlyCount,
		RewardEarned: rewardEarned,
	}, nil
}

// MonthlyCount counts the user's feedback entries in a calendar month.
func (srv *feedbackService) MonthlyCount(ctx context.Context, userID int64, month time.Month, year int) (int64, error) {
	count, err := srv.feedbackRepo.CountForMonth(ctx, userID, month, year)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count monthly feedback")
	}

	return count, nil
}

// ListForUser returns the user's feedback, most recent first.
func (srv *feedbackService) ListForUser(ctx context.Context, userID int64) ([]*entity.Feedback, error) {
	entries, err := srv.feedbackRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return entries, nil
}

// ListAll returns every feedback entry, most recent first.
func (srv *feedbackService) ListAll(ctx context.Context) ([]*entity.Feedback, error) {
	entries, err := srv.feedbackRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all feedback")
	}

	return entries, nil
}
