package handler

import (
	"io"
	"log/slog"
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

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Config: &config.Config{Auth: &config.AuthConfig{CookieSecure: true}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, authUC
}

func registerAuthRoutes(e *echo.Echo, h *AuthHandler) {
	e.POST("/authFunction/signup", h.Signup)
	e.POST("/authFunction/login", h.Login)
	e.GET("/api/users", h.Status)
	e.POST("/api/users", h.Logout)
}

func TestAuthHandler_SignupJSONSetsCookies(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	e := newTestEcho(nil)
	registerAuthRoutes(e, h)

	authUC.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool {
		return in.Email == "alice@example.com" && in.Age != nil && *in.Age == 21
	})).Return(&usecase.SessionOutput{
		User:        &entity.User{ID: 7, Name: "Alice", Email: "alice@example.com", PasswordHash: "secret-hash"},
		AccessToken: "signed.token",
		ExpiresAt:   sessionExpiry,
	}, nil)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/authFunction/signup", map[string]any{
		"name":            "Alice",
		"email":           "alice@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"age":             21,
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	token := findCookie(rec, constants.CookieAccessToken)
	require.NotNil(t, token)
	assert.Equal(t, "signed.token", token.Value)
	assert.True(t, token.HttpOnly)
	assert.True(t, token.Secure)
	assert.Equal(t, http.SameSiteLaxMode, token.SameSite)
	assert.Equal(t, "/", token.Path)

	userID := findCookie(rec, constants.CookieUserID)
	require.NotNil(t, userID)
	assert.Equal(t, "7", userID.Value)
	assert.False(t, userID.HttpOnly)
	assert.Equal(t, "Alice", findCookie(rec, constants.CookieUserName).Value)
}

func TestAuthHandler_SignupFormWithPhoto(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	e := newTestEcho(nil)
	registerAuthRoutes(e, h)

	authUC.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool {
		return in.Age == nil && in.ProfilePhoto != nil && in.ProfilePhoto.ContentType == "image/png"
	})).Return(&usecase.SessionOutput{
		User:        &entity.User{ID: 8, Name: "Bob", ProfilePhotoKey: "profiles/x"},
		AccessToken: "signed.token",
		ExpiresAt:   sessionExpiry,
	}, nil)

	req := multipartRequest(t, "/authFunction/signup", map[string]string{
		"name":            "Bob",
		"email":           "bob@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"age":             "",
	}, formUpload{field: "profilePhoto", filename: "me.png", contentType: "image/png", data: []byte{0x89, 'P', 'N', 'G'}})

	rec := serve(e, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	e := newTestEcho(nil)
	registerAuthRoutes(e, h)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/authFunction/signup", map[string]any{
		"name":            "Alice",
		"email":           "not-an-email",
		"password":        "short",
		"confirmPassword": "short",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email must be a valid email address")
	assert.Contains(t, env.Error.Details, "password must be at least 8")
}

func TestAuthHandler_SignupConflict(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	e := newTestEcho(nil)
	registerAuthRoutes(e, h)

	authUC.EXPECT().Signup(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	rec := serve(e, jsonRequest(t, http.MethodPost, "/authFunction/signup", map[string]any{
		"name":            "Alice",
		"email":           "alice@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
	}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Nil(t, findCookie(rec, constants.CookieAccessToken))
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	e := newTestEcho(nil)
	registerAuthRoutes(e, h)

	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong-password"}).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := serve(e, jsonRequest(t, http.MethodPost, "/authFunction/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Status(t *testing.T) {
	tests := []struct {
		name         string
		decision     *entity.AuthDecision
		expectedCode int
		contains     []string
	}{
		{
			name:         "authenticated",
			decision:     authenticatedAs(7, "Alice"),
			expectedCode: http.StatusOK,
			contains:     []string{`"isLoggedIn":true`, `"id":"7"`, `"name":"Alice"`},
		},
		{
			name: "expired token",
			decision: &entity.AuthDecision{
				State:     entity.GateStateInvalid,
				Error:     "Token has expired",
				ErrorCode: domainerrors.CodeExpired,
			},
			expectedCode: http.StatusUnauthorized,
			contains:     []string{"Token has expired", domainerrors.CodeExpired},
		},
		{
			name:         "gate error without code",
			decision:     &entity.AuthDecision{State: entity.GateStateNoToken, Error: "no token"},
			expectedCode: http.StatusUnauthorized,
			contains:     []string{"no token", "UNKNOWN"},
		},
		{
			name:         "anonymous",
			decision:     &entity.AuthDecision{State: entity.GateStatePublic},
			expectedCode: http.StatusOK,
			contains:     []string{`"isLoggedIn":false`, `"user":null`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestAuthHandler(t)
			e := newTestEcho(tt.decision)
			registerAuthRoutes(e, h)

			rec := serve(e, jsonRequest(t, http.MethodGet, "/api/users", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestAuthHandler_LogoutClearsCookies(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	e := newTestEcho(authenticatedAs(7, "Alice"))
	registerAuthRoutes(e, h)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/api/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	for _, name := range []string{constants.CookieAccessToken, constants.CookieUserID, constants.CookieUserName} {
		cookie := findCookie(rec, name)
		require.NotNil(t, cookie, name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}
