package handler

import (
	"net/http"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/middleware"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Profile photos are private to the session but rarely change.
const photoCacheControl = "private, max-age=3600"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
}

// ProfileHandler serves account profile reads and updates.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	cookies   middleware.SessionCookies
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		cookies:   middleware.SessionCookies{Secure: params.Config.Auth.CookieSecure},
	}
}

// GetProfile returns the account named by ?userId=, defaulting to the caller.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	decision, err := requireSubject(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, err := h.targetUser(c, decision)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile applies a partial update to the caller's own account.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	decision, err := requireSubject(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, err := h.targetUser(c, decision)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), decision.SubjectID, userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if input.Name != nil && !decision.ExpiresAt.IsZero() {
		h.cookies.SetUserName(c, user.Name, decision.ExpiresAt)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// GetProfilePhoto streams the photo uploaded at signup.
func (h *ProfileHandler) GetProfilePhoto(c echo.Context) error {
	decision, err := requireSubject(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, err := h.targetUser(c, decision)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	photo, err := h.profileUC.GetProfilePhoto(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, photo.ContentType, photoCacheControl, photo.Data)
}

func (h *ProfileHandler) targetUser(c echo.Context, decision *entity.AuthDecision) (int64, error) {
	raw := c.QueryParam("userId")
	if raw == "" {
		return decision.SubjectID, nil
	}

	return positiveID("userId", raw)
}
