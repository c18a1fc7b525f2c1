package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// feedbackServiceFixtures holds all test dependencies for feedback service tests.
type feedbackServiceFixtures struct {
	service      usecase.FeedbackUsecase
	txManager    *mockRepo.MockTransactionManager
	feedbackRepo *mockRepo.MockFeedbackRepository
}

func createTestFeedbackService(t *testing.T) feedbackServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	svc := NewFeedbackService(FeedbackServiceParams{
		TxManager:    txManager,
		FeedbackRepo: feedbackRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return feedbackServiceFixtures{
		service:      svc,
		txManager:    txManager,
		feedbackRepo: feedbackRepo,
	}
}

func expectFeedbackInsert(t *testing.T, fx feedbackServiceFixtures, ctx context.Context, userID int64, monthlyCount int64) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFeedbackRepo := mockRepo.NewMockFeedbackRepository(t)

			mockFactory.EXPECT().FeedbackRepo().Return(mockFeedbackRepo)
			mockFeedbackRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Feedback")).
				RunAndReturn(func(_ context.Context, feedback *entity.Feedback) error {
					feedback.ID = 55

					return nil
				})
			mockFeedbackRepo.EXPECT().
				CountForMonth(ctx, userID, mock.AnythingOfType("time.Month"), mock.AnythingOfType("int")).
				Return(monthlyCount, nil)

			return fn(mockFactory)
		})
}

func TestFeedbackService_Add_Success(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	expectFeedbackInsert(t, fx, ctx, 42, 1)

	out, err := fx.service.Add(ctx, &usecase.AddFeedbackInput{
		UserID:  42,
		Rating:  5,
		Comment: "great pasta",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(55), out.Feedback.ID)
	assert.Equal(t, int64(1), out.MonthlyCount)
	assert.False(t, out.RewardEarned)
}

func TestFeedbackService_Add_RewardAtThreshold(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	expectFeedbackInsert(t, fx, ctx, 42, 3)

	out, err := fx.service.Add(ctx, &usecase.AddFeedbackInput{UserID: 42, Rating: 4})

	require.NoError(t, err)
	assert.True(t, out.RewardEarned)
}

func TestFeedbackService_Add_NoRewardPastThreshold(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	expectFeedbackInsert(t, fx, ctx, 42, 4)

	out, err := fx.service.Add(ctx, &usecase.AddFeedbackInput{UserID: 42, Rating: 4})

	require.NoError(t, err)
	assert.False(t, out.RewardEarned)
}

func TestFeedbackService_Add_RatingOutOfRange(t *testing.T) {
	fx := createTestFeedbackService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.Add(context.Background(), &usecase.AddFeedbackInput{UserID: 42, Rating: rating})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
	}
}

func TestFeedbackService_MonthlyCount(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	fx.feedbackRepo.EXPECT().CountForMonth(ctx, int64(42), time.March, 2026).Return(2, nil)

	count, err := fx.service.MonthlyCount(ctx, 42, time.March, 2026)

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFeedbackService_ListForUser(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	entries := []*entity.Feedback{{ID: 1, UserID: 42, Rating: 5}}

	fx.feedbackRepo.EXPECT().FindByUser(ctx, int64(42)).Return(entries, nil)

	got, err := fx.service.ListForUser(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestFeedbackService_Add_ThresholdFromConfig(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	cfg := newTestConfig()
	cfg.Loyalty.MonthlyThreshold = 2
	svc := NewFeedbackService(FeedbackServiceParams{
		TxManager:    txManager,
		FeedbackRepo: feedbackRepo,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})
	fx := feedbackServiceFixtures{service: svc, txManager: txManager, feedbackRepo: feedbackRepo}

	ctx := context.Background()
	expectFeedbackInsert(t, fx, ctx, 42, 2)

	out, err := fx.service.Add(ctx, &usecase.AddFeedbackInput{UserID: 42, Rating: 5})

	require.NoError(t, err)
	assert.True(t, out.RewardEarned)
}
