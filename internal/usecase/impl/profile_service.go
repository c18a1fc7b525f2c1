package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register upserts the profile keyed by the platform identifier.
func (srv *profileService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name is required")
	}

	phone := entity.NormalizePhone(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrPhoneRequired
	}

	user := &entity.User{
		ID:           input.ID,
		Username:     input.Username,
		FullName:     fullName,
		Phone:        phone,
		RegisteredAt: time.Now().UTC(),
		ProfilePhoto: input.ProfilePhoto,
	}

	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to register user", slog.Int64("userID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return user, nil
}

// Get retrieves a profile by the platform identifier.
func (srv *profileService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
