// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minCategoryNameLen = 2

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	dishRepo     repository.DishRepository
	menuCache    service.MenuCache
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	DishRepo     repository.DishRepository
	MenuCache    service.MenuCache
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		dishRepo:     params.DishRepo,
		menuCache:    params.MenuCache,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// invalidateMenuCache drops cached menus after a mutation. Cache failures
// degrade to slower reads, never to user-visible errors.
func (srv *catalogService) invalidateMenuCache(ctx context.Context) {
	if err := srv.menuCache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Failed to invalidate menu cache", slog.Any("error", err))
	}
}

// AddCategory creates a category.
func (srv *catalogService) AddCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minCategoryNameLen {
		return nil, domainerrors.ErrCategoryNameTooShort
	}

	category := &entity.Category{Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.invalidateMenuCache(ctx)

	return category, nil
}

// DeleteCategory removes an empty category. The dish count check and the
// delete run in one transaction so a concurrent dish insert cannot slip in
// between them.
func (srv *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.DishRepo().CountByCategory(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count dishes in category")
		}
		if count > 0 {
			return domainerrors.ErrCategoryInUse
		}

		if err := repoFactory.CategoryRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.invalidateMenuCache(ctx)

	return nil
}

// ListCategories returns all categories, served from cache when possible.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	cached, err := srv.menuCache.GetCategories(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Menu cache read failed, falling back to database", slog.Any("error", err))
	}

	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	if err := srv.menuCache.SetCategories(ctx, categories); err != nil {
		srv.log(ctx).Warn("Failed to cache categories", slog.Any("error", err))
	}

	return categories, nil
}

// AddDish creates a dish after validating price and category existence.
func (srv *catalogService) AddDish(ctx context.Context, input *usecase.AddDishInput) (*entity.Dish, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("dish name is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrInvalidPrice
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to verify category")
	}

	dish := &entity.Dish{
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
	}
	if err := srv.dishRepo.Create(ctx, dish); err != nil {
		srv.log(ctx).Error("Failed to create dish", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create dish")
	}

	srv.invalidateMenuCache(ctx)

	return dish, nil
}

// UpdateDish applies a partial update to a dish.
func (srv *catalogService) UpdateDish(ctx context.Context, id int64, update *entity.DishUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	if update.Price != nil && *update.Price < 0 {
		return domainerrors.ErrInvalidPrice
	}

	if update.CategoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *update.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to verify category")
		}
	}

	if err := srv.dishRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return domainerrors.ErrDishNotFound
		}

		return errors.Wrap(err, "failed to update dish")
	}

	srv.invalidateMenuCache(ctx)

	return nil
}

// DeleteDish removes a dish from the menu. Frozen order items keep their
// copy of the name and price.
func (srv *catalogService) DeleteDish(ctx context.Context, id int64) error {
	if err := srv.dishRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return domainerrors.ErrDishNotFound
		}

		return errors.Wrap(err, "failed to delete dish")
	}

	srv.invalidateMenuCache(ctx)

	return nil
}

// GetDish retrieves one dish.
func (srv *catalogService) GetDish(ctx context.Context, id int64) (*entity.Dish, error) {
	dish, err := srv.dishRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	return dish, nil
}

// ListDishes returns the dishes of one category, served from cache when possible.
func (srv *catalogService) ListDishes(ctx context.Context, categoryID int64) ([]*entity.Dish, error) {
	cached, err := srv.menuCache.GetDishes(ctx, categoryID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Menu cache read failed, falling back to database", slog.Any("error", err))
	}

	dishes, err := srv.dishRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dishes")
	}

	if err := srv.menuCache.SetDishes(ctx, categoryID, dishes); err != nil {
		srv.log(ctx).Warn("Failed to cache dishes", slog.Any("error", err))
	}

	return dishes, nil
}

// ListAllDishes returns the whole menu.
func (srv *catalogService) ListAllDishes(ctx context.Context) ([]*entity.Dish, error) {
	dishes, err := srv.dishRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all dishes")
	}

	return dishes, nil
}
