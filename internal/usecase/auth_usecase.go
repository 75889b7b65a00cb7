// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// UploadedFile is a file received from a multipart form.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte `validate:"required"`
}

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Name            string        `validate:"required,max=100"`
	Email           string        `validate:"required,email"`
	Password        string        `validate:"required,min=8,max=64"`
	ConfirmPassword string        `validate:"required"`
	Age             *int          `validate:"omitempty,min=1,max=150"`
	ProfilePhoto    *UploadedFile `validate:"omitempty"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// SessionOutput carries the signed token and the account it was issued for.
type SessionOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// AuthUsecase defines signup and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SessionOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
}
