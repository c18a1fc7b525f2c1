package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindLines returns the user's cart joined with live dish data, in insertion order.
func (repo *cartRepository) FindLines(ctx context.Context, userID int64) ([]*entity.CartLine, error) {
	var cartModels []*model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Dish").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&cartModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart lines")
	}

	lines := make([]*entity.CartLine, 0, len(cartModels))
	for _, cartM := range cartModels {
		lines = append(lines, toCartLineDomain(cartM))
	}

	return lines, nil
}

// FindLine retrieves the single line for (user, dish).
func (repo *cartRepository) FindLine(ctx context.Context, userID, dishID int64) (*entity.CartLine, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Dish").
		Where("user_id = ? AND dish_id = ?", userID, dishID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	return toCartLineDomain(&cartM), nil
}

// Insert adds a new line. A concurrent insert for the same (user, dish)
// pair lands on the unique index; the conflict clause folds it into the
// existing line by adding the quantities.
func (repo *cartRepository) Insert(ctx context.Context, line *entity.CartLine) error {
	cartM := fromCartLineDomain(line)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "dish_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart.quantity + EXCLUDED.quantity"),
			}),
		}).
		Create(cartM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDishNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert cart line")
	}

	line.ID = cartM.ID
	line.AddedAt = cartM.AddedAt

	return nil
}

// UpdateQuantity sets the stored quantity of a line.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, lineID int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", lineID).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLine removes one line owned by the user. Absent lines are a no-op.
func (repo *cartRepository) DeleteLine(ctx context.Context, userID, lineID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, lineID).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart line")
	}

	return nil
}

// DeleteByUser clears the whole cart. Idempotent.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartLineDomain converts a GORM CartModel to a domain CartLine entity.
// Dish name and price are joined in from the preloaded dish when present.
func toCartLineDomain(data *model.CartModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	line := &entity.CartLine{
		ID:       data.ID,
		UserID:   data.UserID,
		DishID:   data.DishID,
		Quantity: data.Quantity,
		AddedAt:  data.AddedAt,
	}

	if data.Dish != nil {
		line.DishName = data.Dish.Name
		line.UnitPrice = data.Dish.Price
	}

	return line
}

// fromCartLineDomain converts a domain CartLine entity to a GORM CartModel.
func fromCartLineDomain(data *entity.CartLine) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:       data.ID,
		UserID:   data.UserID,
		DishID:   data.DishID,
		Quantity: data.Quantity,
		AddedAt:  data.AddedAt,
	}
}
