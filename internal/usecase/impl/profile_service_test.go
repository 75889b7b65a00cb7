package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	blobStore *mockSvc.MockBlobStore
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	f := profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		blobStore: mockSvc.NewMockBlobStore(t),
	}
	f.service = NewProfileService(ProfileServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		BlobStore: f.blobStore,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func (f profileServiceFixtures) withTx(t *testing.T, txUserRepo *mockRepo.MockUserRepository) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(txUserRepo)

			return fn(factory)
		})
}

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile_Success(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	expected := &entity.User{ID: 4, Name: "Alice", Email: "alice@example.com"}

	f.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(expected, nil)

	user, err := f.service.GetProfile(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetProfile(ctx, 4)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	age := 30
	existing := &entity.User{ID: 4, Name: "Alice", Email: "alice@example.com"}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByID(ctx, int64(4)).Return(existing, nil)
	txUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Update(ctx, existing).Return(nil)
	f.withTx(t, txUserRepo)

	updated, err := f.service.UpdateProfile(ctx, 4, 4, &usecase.UpdateProfileInput{
		Name:  strPtr("Alicia"),
		Age:   &age,
		Email: strPtr("new@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 30, *updated.Age)
}

func TestProfileService_UpdateProfile_OtherAccountForbidden(t *testing.T) {
	f := createTestProfileService(t)

	_, err := f.service.UpdateProfile(context.Background(), 4, 5, &usecase.UpdateProfileInput{Name: strPtr("Mallory")})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_UpdateProfile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mockRepo.MockUserRepository)
		input    *usecase.UpdateProfileInput
		expected error
	}{
		{
			name: "user missing",
			setup: func(repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByID(mock.Anything, int64(4)).Return(nil, repository.ErrUserNotFound)
			},
			input:    &usecase.UpdateProfileInput{Name: strPtr("Alicia")},
			expected: domainerrors.ErrUserNotFound,
		},
		{
			name: "email used by someone else",
			setup: func(repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByID(mock.Anything, int64(4)).Return(&entity.User{ID: 4, Email: "alice@example.com"}, nil)
				repo.EXPECT().FindByEmail(mock.Anything, "bob@example.com").Return(&entity.User{ID: 9}, nil)
			},
			input:    &usecase.UpdateProfileInput{Email: strPtr("bob@example.com")},
			expected: domainerrors.ErrUserAlreadyExists,
		},
		{
			name: "update rejected",
			setup: func(repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByID(mock.Anything, int64(4)).Return(&entity.User{ID: 4}, nil)
				repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.User")).Return(errors.New("connection reset"))
			},
			input:    &usecase.UpdateProfileInput{Name: strPtr("Alicia")},
			expected: domainerrors.ErrUserUpdateFailed,
		},
		{
			name: "lookup fails inside transaction",
			setup: func(repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByID(mock.Anything, int64(4)).Return(nil, errors.New("connection reset"))
			},
			input:    &usecase.UpdateProfileInput{Name: strPtr("Alicia")},
			expected: domainerrors.ErrTransactionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProfileService(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			tt.setup(txUserRepo)
			f.withTx(t, txUserRepo)

			_, err := f.service.UpdateProfile(context.Background(), 4, 4, tt.input)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestProfileService_GetProfilePhoto(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.User{ID: 4, ProfilePhotoKey: "profiles/abc"}, nil)
	f.blobStore.EXPECT().Get(ctx, "profiles/abc").Return(&service.Blob{Data: []byte{1}, ContentType: "image/png"}, nil)

	out, err := f.service.GetProfilePhoto(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, []byte{1}, out.Data)
}

func TestProfileService_GetProfilePhoto_Missing(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.User{ID: 4}, nil)

	_, err := f.service.GetProfilePhoto(ctx, 4)

	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}

func TestProfileService_GetProfilePhoto_BlobGone(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.User{ID: 4, ProfilePhotoKey: "profiles/abc"}, nil)
	f.blobStore.EXPECT().Get(ctx, "profiles/abc").Return(nil, errors.Wrap(service.ErrBlobNotFound, "profiles/abc"))

	_, err := f.service.GetProfilePhoto(ctx, 4)

	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}
