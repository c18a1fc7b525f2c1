package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// RegisterInput carries a registration submitted by the conversation driver.
// The ID is the platform-assigned user identifier.
type RegisterInput struct {
	ID           int64  `json:"id" validate:"required"`
	Username     string `json:"username"`
	FullName     string `json:"full_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	ProfilePhoto string `json:"profile_photo"`
}

// ProfileUsecase defines the registration and profile use cases.
type ProfileUsecase interface {
	// Register upserts the profile keyed by the platform identifier.
	// Re-registering refreshes the stored profile.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Get retrieves a profile by the platform identifier.
	Get(ctx context.Context, id int64) (*entity.User, error)
}
