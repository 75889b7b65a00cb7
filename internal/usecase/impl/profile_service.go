package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	blobStore service.BlobStore
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	BlobStore service.BlobStore
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		blobStore: params.BlobStore,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a user; the password hash never leaves the entity layer.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Int64("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies a partial update. Only the account owner may change it.
func (srv *profileService) UpdateProfile(ctx context.Context, subjectID, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if subjectID != userID {
		srv.log(ctx).Warn("Rejected profile update for another account",
			slog.Int64("subjectID", subjectID), slog.Int64("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "cannot update another user's profile")
	}

	srv.log(ctx).Info("Updating user profile", slog.Int64("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != nil && *input.Email != user.Email {
			other, err := userRepo.FindByEmail(ctx, *input.Email)
			if err == nil && other.ID != user.ID {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to look up email")
			}
			user.Email = *input.Email
		}
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Age != nil {
			user.Age = input.Age
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}
			if errors.Is(err, repository.ErrEmailTaken) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, transactionError(err, "failed to update user profile")
	}

	return updated, nil
}

// GetProfilePhoto loads the photo uploaded at signup.
func (srv *profileService) GetProfilePhoto(ctx context.Context, userID int64) (*usecase.FileOutput, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ProfilePhotoKey == "" {
		return nil, errors.WithStack(domainerrors.ErrImageNotFound)
	}

	blob, err := srv.blobStore.Get(ctx, user.ProfilePhotoKey)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrImageNotFound)
		}

		return nil, errors.Wrap(err, "failed to read profile photo")
	}

	return &usecase.FileOutput{ContentType: blob.ContentType, Data: blob.Data}, nil
}
