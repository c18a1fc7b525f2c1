package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// StatsSummary is the admin dashboard aggregate.
type StatsSummary struct {
	Stats        *entity.OrderStats `json:"stats"`
	RecentOrders []*entity.Order    `json:"recent_orders"`
	RecentUsers  []*entity.User     `json:"recent_users"`
}

// StatsUsecase defines the admin aggregation use cases.
type StatsUsecase interface {
	// Summary returns order count, average total, total revenue across all
	// statuses, plus the most recent orders and registrations.
	Summary(ctx context.Context) (*StatsSummary, error)
}
