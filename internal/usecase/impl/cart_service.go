package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add puts qty units of a dish into the cart. The dish check and the write
// share one transaction. Two adds racing past the line lookup both reach
// Insert; its conflict clause folds them into one accumulated line.
func (srv *cartService) Add(ctx context.Context, userID, dishID int64, qty int) error {
	if qty < 1 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.DishRepo().FindByID(ctx, dishID); err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return domainerrors.ErrDishNotFound
			}

			return errors.Wrap(err, "failed to verify dish")
		}

		cartRepo := repoFactory.CartRepo()
		line, err := cartRepo.FindLine(ctx, userID, dishID)
		if err == nil {
			return cartRepo.UpdateQuantity(ctx, line.ID, line.Quantity+qty)
		}
		if !errors.Is(err, repository.ErrCartLineNotFound) {
			return errors.Wrap(err, "failed to find cart line")
		}

		return cartRepo.Insert(ctx, &entity.CartLine{
			UserID:   userID,
			DishID:   dishID,
			Quantity: qty,
			AddedAt:  time.Now().UTC(),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add to cart",
			slog.Int64("userID", userID), slog.Int64("dishID", dishID), slog.Any("error", err))

		return err
	}

	return nil
}

// RemoveLine deletes one line. Removing an absent line is a no-op.
func (srv *cartService) RemoveLine(ctx context.Context, userID, lineID int64) error {
	if err := srv.cartRepo.DeleteLine(ctx, userID, lineID); err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

// ChangeQuantity adjusts a line's quantity by delta. A result of zero or
// less deletes the line, so a stored quantity below one never exists.
func (srv *cartService) ChangeQuantity(ctx context.Context, userID, dishID int64, delta int) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		line, err := cartRepo.FindLine(ctx, userID, dishID)
		if err != nil {
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound
			}

			return errors.Wrap(err, "failed to find cart line")
		}

		newQty := line.Quantity + delta
		if newQty <= 0 {
			return cartRepo.DeleteLine(ctx, userID, line.ID)
		}

		return cartRepo.UpdateQuantity(ctx, line.ID, newQty)
	})
}

// View returns the cart with live prices and the running total.
func (srv *cartService) View(ctx context.Context, userID int64) (*usecase.CartView, error) {
	lines, err := srv.cartRepo.FindLines(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to view cart")
	}

	return &usecase.CartView{
		Lines: lines,
		Total: entity.CartTotal(lines),
	}, nil
}

// Total computes the live cart total.
func (srv *cartService) Total(ctx context.Context, userID int64) (float64, error) {
	lines, err := srv.cartRepo.FindLines(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to total cart")
	}

	return entity.CartTotal(lines), nil
}

// Clear empties the cart. Idempotent.
func (srv *cartService) Clear(ctx context.Context, userID int64) error {
	if err := srv.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
