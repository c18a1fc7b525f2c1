package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bistro/config"
	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	publisher  service.EventPublisher
	qrcode     service.QRCodeService
	promoCodes map[string]float64
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	promoCodes := map[string]float64{}
	if params.Config != nil && params.Config.Promo != nil {
		promoCodes = params.Config.Promo.Codes
	}

	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		publisher:  params.Publisher,
		qrcode:     params.QRCode,
		promoCodes: promoCodes,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout freezes the cart into an order. The order row, its items and the
// cart clear commit or roll back as one transaction; the created event is
// published only after the commit.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if !input.DeliveryType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown delivery type")
	}

	phone := entity.NormalizePhone(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrPhoneRequired
	}

	address := strings.TrimSpace(input.Address)
	if input.DeliveryType == entity.DeliveryTypeDelivery && address == "" {
		return nil, domainerrors.ErrAddressRequired
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		lines, err := cartRepo.FindLines(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to read cart")
		}
		if len(lines) == 0 {
			return domainerrors.ErrEmptyCart
		}

		subtotal := entity.CartTotal(lines)
		total := subtotal
		if discount, ok := srv.promoCodes[strings.TrimSpace(input.PromoCode)]; ok {
			total = subtotal * (1 - discount)
		}

		items := make([]*entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, &entity.OrderItem{
				DishID:   line.DishID,
				Name:     line.DishName,
				Quantity: line.Quantity,
				Price:    line.UnitPrice,
			})
		}

		order = &entity.Order{
			UserID:       input.UserID,
			TotalAmount:  total,
			DeliveryType: input.DeliveryType,
			Address:      address,
			Phone:        phone,
			Status:       entity.OrderStatusNew,
			CreatedAt:    time.Now().UTC(),
			Items:        items,
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return cartRepo.DeleteByUser(ctx, input.UserID)
	})
	if err != nil {
		srv.log(ctx).Error("Checkout failed", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Int64("orderID", order.ID), slog.Int64("userID", order.UserID), slog.Float64("total", order.TotalAmount))

	srv.publish(ctx, &service.OrderEvent{
		Type:       service.EventOrderCreated,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		Total:      order.TotalAmount,
		OccurredAt: time.Now().UTC(),
	})

	return order, nil
}

// AdvanceStatus moves an order along the status machine. The read and the
// write share one transaction so two admins cannot race past a terminal
// status.
func (srv *orderService) AdvanceStatus(ctx context.Context, orderID int64, next entity.OrderStatus) error {
	if !next.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	var prev entity.OrderStatus
	var userID int64
	var total float64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !order.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				"cannot move from " + string(order.Status) + " to " + string(next))
		}

		prev = order.Status
		userID = order.UserID
		total = order.TotalAmount

		return orderRepo.UpdateStatus(ctx, orderID, next)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Order status changed",
		slog.Int64("orderID", orderID), slog.String("from", string(prev)), slog.String("to", string(next)))

	srv.publish(ctx, &service.OrderEvent{
		Type:       service.EventOrderStatusChanged,
		OrderID:    orderID,
		UserID:     userID,
		Status:     next,
		PrevStatus: prev,
		Total:      total,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// GetDetails retrieves an order with its frozen items.
func (srv *orderService) GetDetails(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListForUser returns the user's orders, most recent first.
func (srv *orderService) ListForUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// PickupCode renders the order's pickup reference as a PNG QR code.
func (srv *orderService) PickupCode(ctx context.Context, orderID int64) ([]byte, error) {
	if _, err := srv.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	png, err := srv.qrcode.GeneratePickupCode(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup code")
	}

	return png, nil
}

// publish sends an order event after the owning transaction committed.
// Publishing is best effort: a broker failure is logged, never surfaced.
func (srv *orderService) publish(ctx context.Context, event *service.OrderEvent) {
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", event.Type), slog.Int64("orderID", event.OrderID), slog.Any("error", err))
	}
}
