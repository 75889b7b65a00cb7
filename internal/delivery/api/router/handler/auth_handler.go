// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/middleware"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves signup, login, logout and the session status.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies middleware.SessionCookies
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		cookies: middleware.SessionCookies{Secure: params.Config.Auth.CookieSecure},
		logger:  params.Logger,
	}
}

// signupRequest accepts JSON or a form post. Age arrives as text in forms.
type signupRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	Age             *int   `json:"age" form:"-"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Signup creates an account and opens a session for it.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid signup input")
	}

	input := &usecase.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Age:             req.Age,
	}

	if isFormRequest(c) {
		age, err := optionalInt("age", c.FormValue("age"))
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.Age = age

		photo, err := formFile(c, "profilePhoto")
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.ProfilePhoto = photo
	}

	if err := c.Validate(input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Signup(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.openSession(c, http.StatusCreated, output)
}

// Login checks the credentials and sets the session cookies.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	input := &usecase.LoginInput{Email: req.Email, Password: req.Password}
	if err := c.Validate(input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.openSession(c, http.StatusOK, output)
}

func (h *AuthHandler) openSession(c echo.Context, status int, output *usecase.SessionOutput) error {
	h.cookies.Set(c, output.AccessToken, output.User.ID, output.User.Name, output.ExpiresAt)

	return response.Success(c, status, &sessionResponse{
		User:      toUserResponse(output.User),
		ExpiresAt: output.ExpiresAt,
	})
}

// Status reports the gate's view of the caller. A gate error is returned as
// 401 with the gate's message and code.
func (h *AuthHandler) Status(c echo.Context) error {
	decision := deliverycontext.GetAuthDecision(c)

	if decision.Authenticated {
		return response.Success(c, http.StatusOK, &authStatusResponse{
			IsLoggedIn: true,
			User: &sessionUser{
				ID:   strconv.FormatInt(decision.SubjectID, 10),
				Name: decision.SubjectName,
			},
		})
	}

	if decision.Error != "" {
		code := decision.ErrorCode
		if code == "" {
			code = "UNKNOWN"
		}

		return response.Unauthorized(c, code, decision.Error)
	}

	return response.Success(c, http.StatusOK, &authStatusResponse{IsLoggedIn: false})
}

// Logout clears the session cookies. Tokens are not revoked server side.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}
