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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
	qrcode    *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		QRCode:    qrcode,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
		qrcode:    qrcode,
	}
}

func testCartLines() []*entity.CartLine {
	return []*entity.CartLine{
		{ID: 1, UserID: 42, DishID: 7, Quantity: 2, DishName: "Pasta", UnitPrice: 350},
		{ID: 2, UserID: 42, DishID: 8, Quantity: 1, DishName: "Salad", UnitPrice: 150},
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CheckoutInput{
		UserID:       42,
		DeliveryType: entity.DeliveryTypePickup,
		Phone:        "+7 900 123-45-67",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockCartRepo.EXPECT().FindLines(ctx, int64(42)).Return(testCartLines(), nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
				RunAndReturn(func(_ context.Context, order *entity.Order) error {
					order.ID = 100

					return nil
				})
			mockCartRepo.EXPECT().DeleteByUser(ctx, int64(42)).Return(nil)

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.Checkout(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, entity.OrderStatusNew, order.Status)
	assert.Equal(t, "+79001234567", order.Phone)
	assert.InDelta(t, 850.0, order.TotalAmount, 0.0001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Pasta", order.Items[0].Name)
	assert.InDelta(t, 350.0, order.Items[0].Price, 0.0001)
}

func TestOrderService_Checkout_AppliesPromoCode(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CheckoutInput{
		UserID:       42,
		DeliveryType: entity.DeliveryTypePickup,
		Phone:        "79001234567",
		PromoCode:    "WELCOME10",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockCartRepo.EXPECT().FindLines(ctx, int64(42)).Return(testCartLines(), nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			mockCartRepo.EXPECT().DeleteByUser(ctx, int64(42)).Return(nil)

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.Checkout(ctx, input)

	require.NoError(t, err)
	assert.InDelta(t, 765.0, order.TotalAmount, 0.0001)
}

func TestOrderService_Checkout_IgnoresUnknownPromoCode(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CheckoutInput{
		UserID:       42,
		DeliveryType: entity.DeliveryTypePickup,
		Phone:        "79001234567",
		PromoCode:    "NOPE",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockCartRepo.EXPECT().FindLines(ctx, int64(42)).Return(testCartLines(), nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			mockCartRepo.EXPECT().DeleteByUser(ctx, int64(42)).Return(nil)

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.Checkout(ctx, input)

	require.NoError(t, err)
	assert.InDelta(t, 850.0, order.TotalAmount, 0.0001)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CheckoutInput{
		UserID:       42,
		DeliveryType: entity.DeliveryTypePickup,
		Phone:        "79001234567",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindLines(ctx, int64(42)).Return(nil, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Checkout(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_Checkout_DeliveryRequiresAddress(t *testing.T) {
	fx := createTestOrderService(t)

	input := &usecase.CheckoutInput{
		UserID:       42,
		DeliveryType: entity.DeliveryTypeDelivery,
		Phone:        "79001234567",
		Address:      "   ",
	}

	_, err := fx.service.Checkout(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAddressRequired)
}

func TestOrderService_Checkout_RequiresPhone(t *testing.T) {
	fx := createTestOrderService(t)

	input := &usecase.CheckoutInput{
		UserID:       42,
		DeliveryType: entity.DeliveryTypePickup,
		Phone:        "call me",
	}

	_, err := fx.service.Checkout(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPhoneRequired)
}

func TestOrderService_Checkout_RollsBackOnCreateFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CheckoutInput{
		UserID:       42,
		DeliveryType: entity.DeliveryTypePickup,
		Phone:        "79001234567",
	}
	dbErr := errors.New("insert failed")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockCartRepo.EXPECT().FindLines(ctx, int64(42)).Return(testCartLines(), nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(dbErr)

			// The cart clear must never run when the insert fails.
			return fn(mockFactory)
		})

	_, err := fx.service.Checkout(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestOrderService_Checkout_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CheckoutInput{
		UserID:       42,
		DeliveryType: entity.DeliveryTypePickup,
		Phone:        "79001234567",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockCartRepo.EXPECT().FindLines(ctx, int64(42)).Return(testCartLines(), nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			mockCartRepo.EXPECT().DeleteByUser(ctx, int64(42)).Return(nil)

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(errors.New("broker down"))

	order, err := fx.service.Checkout(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_AdvanceStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := int64(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).
				Return(&entity.Order{ID: orderID, UserID: 42, Status: entity.OrderStatusNew, TotalAmount: 850}, nil)
			mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusProcessing).Return(nil)

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.OrderEvent")).
		RunAndReturn(func(_ context.Context, event *service.OrderEvent) error {
			assert.Equal(t, service.EventOrderStatusChanged, event.Type)
			assert.Equal(t, entity.OrderStatusNew, event.PrevStatus)
			assert.Equal(t, entity.OrderStatusProcessing, event.Status)

			return nil
		})

	err := fx.service.AdvanceStatus(ctx, orderID, entity.OrderStatusProcessing)

	require.NoError(t, err)
}

func TestOrderService_AdvanceStatus_RejectsTerminalOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := int64(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).
				Return(&entity.Order{ID: orderID, Status: entity.OrderStatusCompleted}, nil)

			return fn(mockFactory)
		})

	err := fx.service.AdvanceStatus(ctx, orderID, entity.OrderStatusCancelled)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_AdvanceStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.AdvanceStatus(context.Background(), 100, entity.OrderStatus("shipped"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetDetails_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetDetails(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_PickupCode(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := int64(100)
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
	fx.qrcode.EXPECT().GeneratePickupCode(orderID).Return(png, nil)

	got, err := fx.service.PickupCode(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestOrderService_PickupCode_UnknownOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.PickupCode(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
