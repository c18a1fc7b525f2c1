package impl

import (
	"context"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/service"
	mockSvc "bistro/internal/mocks/service"
	"bistro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service usecase.SessionUsecase
	store   *mockSvc.MockSessionStore
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	store := mockSvc.NewMockSessionStore(t)
	svc := NewSessionService(SessionServiceParams{
		Store:  store,
		Logger: newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service: svc,
		store:   store,
	}
}

func TestSessionService_Begin_StartsAtFirstStep(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.store.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	session, err := fx.service.Begin(ctx, 42, entity.FlowCheckout)

	require.NoError(t, err)
	assert.Equal(t, entity.FlowCheckout, session.Flow)
	assert.Equal(t, entity.StepCheckoutDelivery, session.Step)
	assert.NotNil(t, session.Data)
}

func TestSessionService_Begin_UnknownFlow(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Begin(context.Background(), 42, entity.SessionFlow("smalltalk"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_Advance_MergesData(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	current := &entity.Session{
		UserID:    42,
		Flow:      entity.FlowCheckout,
		Step:      entity.StepCheckoutDelivery,
		Data:      map[string]string{"delivery_type": "delivery"},
		UpdatedAt: time.Now().UTC(),
	}

	fx.store.EXPECT().Get(ctx, int64(42)).Return(current, nil)
	fx.store.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	session, err := fx.service.Advance(ctx, 42, entity.StepCheckoutAddress, map[string]string{"address": "1 Main St"})

	require.NoError(t, err)
	assert.Equal(t, entity.StepCheckoutAddress, session.Step)
	assert.Equal(t, "delivery", session.Data["delivery_type"])
	assert.Equal(t, "1 Main St", session.Data["address"])
}

func TestSessionService_Advance_SkipsOptionalStep(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	current := &entity.Session{
		UserID: 42,
		Flow:   entity.FlowCheckout,
		Step:   entity.StepCheckoutDelivery,
	}

	// A pickup order jumps straight over the address step.
	fx.store.EXPECT().Get(ctx, int64(42)).Return(current, nil)
	fx.store.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	session, err := fx.service.Advance(ctx, 42, entity.StepCheckoutPhone, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.StepCheckoutPhone, session.Step)
}

func TestSessionService_Advance_RejectsBackwardStep(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	current := &entity.Session{
		UserID: 42,
		Flow:   entity.FlowCheckout,
		Step:   entity.StepCheckoutPhone,
	}

	fx.store.EXPECT().Get(ctx, int64(42)).Return(current, nil)

	_, err := fx.service.Advance(ctx, 42, entity.StepCheckoutDelivery, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSessionStep)
}

func TestSessionService_Advance_RejectsForeignFlowStep(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	current := &entity.Session{
		UserID: 42,
		Flow:   entity.FlowRegistration,
		Step:   entity.StepRegistrationPhone,
	}

	fx.store.EXPECT().Get(ctx, int64(42)).Return(current, nil)

	_, err := fx.service.Advance(ctx, 42, entity.StepCheckoutPhone, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSessionStep)
}

func TestSessionService_Advance_NoActiveSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.store.EXPECT().Get(ctx, int64(42)).Return(nil, service.ErrSessionNotFound)

	_, err := fx.service.Advance(ctx, 42, entity.StepCheckoutAddress, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_Abandon(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.store.EXPECT().Delete(ctx, int64(42)).Return(nil)

	err := fx.service.Abandon(ctx, 42)

	require.NoError(t, err)
}
