package handler

import (
	"net/http"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileEcho(t *testing.T, decision *entity.AuthDecision) (*echo.Echo, *mockUC.MockProfileUsecase) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{
		ProfileUC: profileUC,
		Config:    &config.Config{Auth: &config.AuthConfig{}},
	})

	e := newTestEcho(decision)
	e.GET("/api/profile", h.GetProfile)
	e.PUT("/api/profile", h.UpdateProfile)
	e.GET("/api/profile/photo", h.GetProfilePhoto)

	return e, profileUC
}

func TestProfileHandler_GetProfileRequiresSession(t *testing.T) {
	e, _ := newTestProfileEcho(t, &entity.AuthDecision{State: entity.GateStateNoToken, Error: "no token"})

	rec := serve(e, jsonRequest(t, http.MethodGet, "/api/profile?userId=3", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileHandler_GetProfile(t *testing.T) {
	e, profileUC := newTestProfileEcho(t, authenticatedAs(3, "Alice"))

	profileUC.EXPECT().GetProfile(mock.Anything, int64(4)).
		Return(&entity.User{ID: 4, Name: "Bob", Email: "bob@example.com", PasswordHash: "secret-hash"}, nil)

	rec := serve(e, jsonRequest(t, http.MethodGet, "/api/profile?userId=4", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"bob@example.com"`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestProfileHandler_GetProfileDefaultsToCaller(t *testing.T) {
	e, profileUC := newTestProfileEcho(t, authenticatedAs(3, "Alice"))

	profileUC.EXPECT().GetProfile(mock.Anything, int64(3)).Return(&entity.User{ID: 3, Name: "Alice"}, nil)

	rec := serve(e, jsonRequest(t, http.MethodGet, "/api/profile", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_GetProfileNotFound(t *testing.T) {
	e, profileUC := newTestProfileEcho(t, authenticatedAs(3, "Alice"))

	profileUC.EXPECT().GetProfile(mock.Anything, int64(9)).Return(nil, errors.WithStack(domainerrors.ErrUserNotFound))

	rec := serve(e, jsonRequest(t, http.MethodGet, "/api/profile?userId=9", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestProfileHandler_BadUserID(t *testing.T) {
	e, _ := newTestProfileEcho(t, authenticatedAs(3, "Alice"))

	rec := serve(e, jsonRequest(t, http.MethodGet, "/api/profile?userId=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileHandler_UpdateRefreshesNameCookie(t *testing.T) {
	e, profileUC := newTestProfileEcho(t, authenticatedAs(3, "Alice"))

	profileUC.EXPECT().UpdateProfile(mock.Anything, int64(3), int64(3), mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.Name != nil && *in.Name == "Alicia" && in.Email == nil
	})).Return(&entity.User{ID: 3, Name: "Alicia"}, nil)

	rec := serve(e, jsonRequest(t, http.MethodPut, "/api/profile?userId=3", map[string]any{"name": "Alicia"}))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, constants.CookieUserName)
	require.NotNil(t, cookie)
	assert.Equal(t, "Alicia", cookie.Value)
	assert.Nil(t, findCookie(rec, constants.CookieAccessToken))
}

func TestProfileHandler_UpdateOtherAccountForbidden(t *testing.T) {
	e, profileUC := newTestProfileEcho(t, authenticatedAs(3, "Alice"))

	profileUC.EXPECT().UpdateProfile(mock.Anything, int64(3), int64(4), mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrForbidden, "cannot update another user's profile"))

	rec := serve(e, jsonRequest(t, http.MethodPut, "/api/profile?userId=4", map[string]any{"name": "Mallory"}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, findCookie(rec, constants.CookieUserName))
}

func TestProfileHandler_UpdateValidation(t *testing.T) {
	e, _ := newTestProfileEcho(t, authenticatedAs(3, "Alice"))

	rec := serve(e, jsonRequest(t, http.MethodPut, "/api/profile?userId=3", map[string]any{"email": "nope"}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "email must be a valid email address")
}

func TestProfileHandler_GetProfilePhoto(t *testing.T) {
	e, profileUC := newTestProfileEcho(t, authenticatedAs(3, "Alice"))

	profileUC.EXPECT().GetProfilePhoto(mock.Anything, int64(3)).
		Return(&usecase.FileOutput{ContentType: "image/png", Data: []byte{1, 2}}, nil)

	rec := serve(e, jsonRequest(t, http.MethodGet, "/api/profile/photo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{1, 2}, rec.Body.Bytes())
}
