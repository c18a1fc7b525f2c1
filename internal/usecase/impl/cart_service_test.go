package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	cartRepo  *mockRepo.MockCartRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	service := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		Logger:    newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:   service,
		txManager: txManager,
		cartRepo:  cartRepo,
	}
}

func TestCartService_Add_NewLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := int64(42)
	dishID := int64(7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockDishRepo.EXPECT().FindByID(ctx, dishID).Return(&entity.Dish{ID: dishID, Name: "Pasta"}, nil)
			mockCartRepo.EXPECT().FindLine(ctx, userID, dishID).Return(nil, repository.ErrCartLineNotFound)
			mockCartRepo.EXPECT().Insert(ctx, mock.AnythingOfType("*entity.CartLine")).
				RunAndReturn(func(_ context.Context, line *entity.CartLine) error {
					assert.Equal(t, userID, line.UserID)
					assert.Equal(t, dishID, line.DishID)
					assert.Equal(t, 2, line.Quantity)

					return nil
				})

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Add(ctx, userID, dishID, 2)

	require.NoError(t, err)
}

func TestCartService_Add_AccumulatesQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := int64(42)
	dishID := int64(7)
	existing := &entity.CartLine{ID: 11, UserID: userID, DishID: dishID, Quantity: 2}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockDishRepo.EXPECT().FindByID(ctx, dishID).Return(&entity.Dish{ID: dishID}, nil)
			mockCartRepo.EXPECT().FindLine(ctx, userID, dishID).Return(existing, nil)
			mockCartRepo.EXPECT().UpdateQuantity(ctx, existing.ID, 5).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Add(ctx, userID, dishID, 3)

	require.NoError(t, err)
}

func TestCartService_Add_UnknownDish(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockDishRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrDishNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Add(ctx, 42, 99, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDishNotFound)
}

func TestCartService_Add_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.Add(context.Background(), 42, 7, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_ChangeQuantity_DeletesAtZero(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := int64(42)
	dishID := int64(7)
	existing := &entity.CartLine{ID: 11, UserID: userID, DishID: dishID, Quantity: 2}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindLine(ctx, userID, dishID).Return(existing, nil)
			mockCartRepo.EXPECT().DeleteLine(ctx, userID, existing.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ChangeQuantity(ctx, userID, dishID, -2)

	require.NoError(t, err)
}

func TestCartService_ChangeQuantity_MissingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindLine(ctx, int64(42), int64(7)).Return(nil, repository.ErrCartLineNotFound)

			return fn(mockFactory)
		})

	err := fx.service.ChangeQuantity(ctx, 42, 7, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCartService_View_ComputesTotal(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	lines := []*entity.CartLine{
		{ID: 1, DishID: 7, Quantity: 2, DishName: "Pasta", UnitPrice: 350},
		{ID: 2, DishID: 8, Quantity: 1, DishName: "Salad", UnitPrice: 150},
	}

	fx.cartRepo.EXPECT().FindLines(ctx, int64(42)).Return(lines, nil)

	view, err := fx.service.View(ctx, 42)

	require.NoError(t, err)
	assert.Len(t, view.Lines, 2)
	assert.InDelta(t, 850.0, view.Total, 0.0001)
}

func TestCartService_View_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().FindLines(ctx, int64(42)).Return(nil, nil)

	view, err := fx.service.View(ctx, 42)

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
}

func TestCartService_RemoveLine_PropagatesError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.cartRepo.EXPECT().DeleteLine(ctx, int64(42), int64(11)).Return(dbErr)

	err := fx.service.RemoveLine(ctx, 42, 11)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().DeleteByUser(ctx, int64(42)).Return(nil)

	err := fx.service.Clear(ctx, 42)

	require.NoError(t, err)
}
