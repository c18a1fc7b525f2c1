package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	mockRepo "bistro/internal/mocks/repository"
	mockSvc "bistro/internal/mocks/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
	dishRepo     *mockRepo.MockDishRepository
	menuCache    *mockSvc.MockMenuCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	dishRepo := mockRepo.NewMockDishRepository(t)
	menuCache := mockSvc.NewMockMenuCache(t)
	svc := NewCatalogService(CatalogServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		DishRepo:     dishRepo,
		MenuCache:    menuCache,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      svc,
		txManager:    txManager,
		categoryRepo: categoryRepo,
		dishRepo:     dishRepo,
		menuCache:    menuCache,
	}
}

func TestCatalogService_AddCategory_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).
		RunAndReturn(func(_ context.Context, category *entity.Category) error {
			category.ID = 1

			return nil
		})
	fx.menuCache.EXPECT().Invalidate(ctx).Return(nil)

	category, err := fx.service.AddCategory(ctx, "  Desserts  ")

	require.NoError(t, err)
	assert.Equal(t, int64(1), category.ID)
	assert.Equal(t, "Desserts", category.Name)
}

func TestCatalogService_AddCategory_NameTooShort(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.AddCategory(context.Background(), " X ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTooShort)
}

func TestCatalogService_AddCategory_MultibyteNameCounted(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	// Two runes pass the length check even when they span more bytes.
	fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
	fx.menuCache.EXPECT().Invalidate(ctx).Return(nil)

	_, err := fx.service.AddCategory(ctx, "Чай")

	require.NoError(t, err)
}

func TestCatalogService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := int64(3)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockDishRepo.EXPECT().CountByCategory(ctx, categoryID).Return(0, nil)
			mockCategoryRepo.EXPECT().Delete(ctx, categoryID).Return(nil)

			return fn(mockFactory)
		})
	fx.menuCache.EXPECT().Invalidate(ctx).Return(nil)

	err := fx.service.DeleteCategory(ctx, categoryID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteCategory_StillHasDishes(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := int64(3)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockDishRepo.EXPECT().CountByCategory(ctx, categoryID).Return(4, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteCategory(ctx, categoryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
}

func TestCatalogService_ListCategories_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	cached := []*entity.Category{{ID: 1, Name: "Drinks"}}

	fx.menuCache.EXPECT().GetCategories(ctx).Return(cached, nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, categories)
}

func TestCatalogService_ListCategories_CacheMissFallsBack(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	stored := []*entity.Category{{ID: 1, Name: "Drinks"}, {ID: 2, Name: "Mains"}}

	fx.menuCache.EXPECT().GetCategories(ctx).Return(nil, service.ErrCacheMiss)
	fx.categoryRepo.EXPECT().FindAll(ctx).Return(stored, nil)
	fx.menuCache.EXPECT().SetCategories(ctx, stored).Return(nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, categories)
}

func TestCatalogService_ListCategories_CacheFailureFallsBack(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	stored := []*entity.Category{{ID: 1, Name: "Drinks"}}

	fx.menuCache.EXPECT().GetCategories(ctx).Return(nil, errors.New("redis down"))
	fx.categoryRepo.EXPECT().FindAll(ctx).Return(stored, nil)
	fx.menuCache.EXPECT().SetCategories(ctx, stored).Return(errors.New("redis down"))

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, categories)
}

func TestCatalogService_AddDish_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.AddDishInput{
		Name:       "Pasta",
		Price:      350,
		CategoryID: 2,
	}

	fx.categoryRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Category{ID: 2, Name: "Mains"}, nil)
	fx.dishRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Dish")).
		RunAndReturn(func(_ context.Context, dish *entity.Dish) error {
			dish.ID = 7

			return nil
		})
	fx.menuCache.EXPECT().Invalidate(ctx).Return(nil)

	dish, err := fx.service.AddDish(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), dish.ID)
	assert.Equal(t, "Pasta", dish.Name)
}

func TestCatalogService_AddDish_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.AddDishInput{Name: "Pasta", Price: -1, CategoryID: 2}

	_, err := fx.service.AddDish(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
}

func TestCatalogService_AddDish_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.AddDishInput{Name: "Pasta", Price: 350, CategoryID: 99}

	fx.categoryRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.AddDish(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_UpdateDish_EmptyUpdateIsNoop(t *testing.T) {
	fx := createTestCatalogService(t)

	err := fx.service.UpdateDish(context.Background(), 7, &entity.DishUpdate{})

	require.NoError(t, err)
}

func TestCatalogService_UpdateDish_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	name := "Lasagna"
	update := &entity.DishUpdate{Name: &name}

	fx.dishRepo.EXPECT().Update(ctx, int64(404), update).Return(repository.ErrDishNotFound)

	err := fx.service.UpdateDish(ctx, 404, update)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDishNotFound)
}

func TestCatalogService_ListDishes_CacheMissFallsBack(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	stored := []*entity.Dish{{ID: 7, Name: "Pasta", CategoryID: 2, Price: 350}}

	fx.menuCache.EXPECT().GetDishes(ctx, int64(2)).Return(nil, service.ErrCacheMiss)
	fx.dishRepo.EXPECT().FindByCategory(ctx, int64(2)).Return(stored, nil)
	fx.menuCache.EXPECT().SetDishes(ctx, int64(2), stored).Return(nil)

	dishes, err := fx.service.ListDishes(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, stored, dishes)
}
