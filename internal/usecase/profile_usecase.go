package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	// UpdateProfile changes the profile of userID on behalf of subjectID.
	// Only the account owner may update it.
	UpdateProfile(ctx context.Context, subjectID, userID int64, input *UpdateProfileInput) (*entity.User, error)
	// GetProfilePhoto returns the stored profile photo of a user.
	GetProfilePhoto(ctx context.Context, userID int64) (*FileOutput, error)
}

// UpdateProfileInput is a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Age   *int    `json:"age,omitempty" validate:"omitempty,min=1,max=150"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
