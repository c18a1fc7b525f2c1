package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service   usecase.StatsUsecase
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewStatsService(StatsServiceParams{
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return statsServiceFixtures{
		service:   svc,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func TestStatsService_Summary(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	stats := &entity.OrderStats{TotalOrders: 12, AverageTotal: 540.5, TotalRevenue: 6486}
	orders := []*entity.Order{{ID: 100, Status: entity.OrderStatusCancelled, TotalAmount: 850}}
	users := []*entity.User{{ID: 42, FullName: "Jamie"}}

	fx.orderRepo.EXPECT().Stats(ctx).Return(stats, nil)
	fx.orderRepo.EXPECT().FindRecent(ctx, 5).Return(orders, nil)
	fx.userRepo.EXPECT().FindRecent(ctx, 5).Return(users, nil)

	summary, err := fx.service.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, stats, summary.Stats)
	assert.Equal(t, orders, summary.RecentOrders)
	assert.Equal(t, users, summary.RecentUsers)
}

func TestStatsService_Summary_StatsFailure(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.orderRepo.EXPECT().Stats(ctx).Return(nil, dbErr)

	_, err := fx.service.Summary(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
