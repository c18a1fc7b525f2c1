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

// dishRepository implements the repository.DishRepository interface.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{
		db: db,
	}
}

// Create persists a new dish.
func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Create(dishM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required dish information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID

	return nil
}

// FindByID retrieves a dish by its identifier.
func (repo *dishRepository) FindByID(ctx context.Context, id int64) (*entity.Dish, error) {
	var dishM model.DishModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dishM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish by ID")
	}

	return toDishDomain(&dishM), nil
}

// FindByCategory retrieves the dishes of one category ordered by name.
func (repo *dishRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*entity.Dish, error) {
	var dishModels []*model.DishModel

	if err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&dishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dishes by category")
	}

	dishes := make([]*entity.Dish, 0, len(dishModels))
	for _, dishM := range dishModels {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes, nil
}

// FindAll returns every dish ordered by category then name.
func (repo *dishRepository) FindAll(ctx context.Context) ([]*entity.Dish, error) {
	var dishModels []*model.DishModel

	if err := repo.db.WithContext(ctx).
		Order("category_id ASC, name ASC").
		Find(&dishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dishes")
	}

	dishes := make([]*entity.Dish, 0, len(dishModels))
	for _, dishM := range dishModels {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes, nil
}

// Update applies a partial update to a dish.
func (repo *dishRepository) Update(ctx context.Context, id int64, update *entity.DishUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Price != nil {
		columns["price"] = *update.Price
	}
	if update.CategoryID != nil {
		columns["category_id"] = *update.CategoryID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DishModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(result.Error, "failed to update dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// Delete removes a dish. Frozen order items are untouched.
func (repo *dishRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DishModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// CountByCategory reports how many dishes reference a category.
func (repo *dishRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DishModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count dishes by category")
	}

	return count, nil
}

// --- Mapper Functions ---

// toDishDomain converts a GORM DishModel to a domain Dish entity.
func toDishDomain(data *model.DishModel) *entity.Dish {
	if data == nil {
		return nil
	}

	return &entity.Dish{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
	}
}

// fromDishDomain converts a domain Dish entity to a GORM DishModel.
func fromDishDomain(data *entity.Dish) *model.DishModel {
	if data == nil {
		return nil
	}

	return &model.DishModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
	}
}
