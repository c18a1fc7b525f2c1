package impl

import (
	"context"
	"log/slog"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recentLimit caps the recent-orders and recent-users lists on the admin
// summary.
const recentLimit = 5

// statsService implements the StatsUsecase interface.
type statsService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Summary returns the admin dashboard aggregate. Revenue and averages span
// every status, cancelled orders included.
func (srv *statsService) Summary(ctx context.Context) (*usecase.StatsSummary, error) {
	stats, err := srv.orderRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute order stats")
	}

	recentOrders, err := srv.orderRepo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	recentUsers, err := srv.userRepo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent users")
	}

	srv.log(ctx).Debug("Stats summary computed", slog.Int64("totalOrders", stats.TotalOrders))

	return &usecase.StatsSummary{
		Stats:        stats,
		RecentOrders: recentOrders,
		RecentUsers:  recentUsers,
	}, nil
}
