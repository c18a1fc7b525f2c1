package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists the order header and all of its items in one insert.
// GORM cascades the association, so header and items share the caller's
// transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindByID retrieves an order with its frozen items.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser returns the user's orders, most recent first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus sets the status column.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Stats computes the admin aggregates over all orders regardless of status.
func (repo *orderRepository) Stats(ctx context.Context) (*entity.OrderStats, error) {
	var row struct {
		TotalOrders  int64
		AverageTotal float64
		TotalRevenue float64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS total_orders, COALESCE(AVG(total_amount), 0) AS average_total, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute order stats")
	}

	return &entity.OrderStats{
		TotalOrders:  row.TotalOrders,
		AverageTotal: row.AverageTotal,
		TotalRevenue: row.TotalRevenue,
	}, nil
}

// FindRecent returns up to limit orders, most recent first.
func (repo *orderRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:           data.ID,
		UserID:       data.UserID,
		TotalAmount:  data.TotalAmount,
		DeliveryType: entity.DeliveryType(data.DeliveryType),
		Address:      data.Address,
		Phone:        data.Phone,
		Status:       entity.OrderStatus(data.Status),
		CreatedAt:    data.CreatedAt,
	}

	if len(data.Items) > 0 {
		order.Items = make([]*entity.OrderItem, 0, len(data.Items))
		for _, itemM := range data.Items {
			order.Items = append(order.Items, toOrderItemDomain(itemM))
		}
	}

	return order
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:       data.ID,
		OrderID:  data.OrderID,
		DishID:   data.DishID,
		Name:     data.Name,
		Quantity: data.Quantity,
		Price:    data.Price,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:           data.ID,
		UserID:       data.UserID,
		TotalAmount:  data.TotalAmount,
		DeliveryType: string(data.DeliveryType),
		Address:      data.Address,
		Phone:        data.Phone,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
	}

	if len(data.Items) > 0 {
		orderM.Items = make([]*model.OrderItemModel, 0, len(data.Items))
		for _, item := range data.Items {
			orderM.Items = append(orderM.Items, &model.OrderItemModel{
				ID:       item.ID,
				OrderID:  item.OrderID,
				DishID:   item.DishID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
	}

	return orderM
}
