package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:  svc,
		userRepo: userRepo,
	}
}

func TestProfileService_Register_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		ID:       42,
		Username: "pasta_fan",
		FullName: "  Jamie Oliver  ",
		Phone:    "+7 (900) 123-45-67",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Jamie Oliver", user.FullName)
	assert.Equal(t, "+79001234567", user.Phone)
	assert.False(t, user.RegisteredAt.IsZero())
}

func TestProfileService_Register_IsUpsert(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	// Registering twice with the same ID replaces the profile instead of
	// failing on a duplicate key.
	fx.userRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Times(2)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{ID: 42, FullName: "Jamie", Phone: "79001234567"})
	require.NoError(t, err)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{ID: 42, FullName: "James", Phone: "79001234567"})
	require.NoError(t, err)
	assert.Equal(t, "James", user.FullName)
}

func TestProfileService_Register_MissingName(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		ID:    42,
		Phone: "79001234567",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_Register_InvalidPhone(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		ID:       42,
		FullName: "Jamie",
		Phone:    "not a phone",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPhoneRequired)
}

func TestProfileService_Get_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 42, FullName: "Jamie"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(stored, nil)

	user, err := fx.service.Get(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestProfileService_Get_NotRegistered(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Get(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
