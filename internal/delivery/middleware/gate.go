package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const noTokenMessage = "no token"

// GateParams holds dependencies for GateMiddleware, injected by Fx
type GateParams struct {
	fx.In

	Config       *config.Config
	TokenService service.TokenService
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// GateMiddleware decides once per request whether it is public, carries no
// token, carries a valid token or carries an invalid one. Browser paths are
// redirected to the login surface; programmatic paths are always forwarded
// with x-auth-* annotations so the handler decides.
type GateMiddleware struct {
	tokens               service.TokenService
	publicRoutes         []string
	programmaticPrefixes []string
	loginPath            string
	cookies              SessionCookies
	metrics              *metrics.Metrics
	logger               *slog.Logger
}

// NewGateMiddleware creates the request gate
func NewGateMiddleware(params GateParams) *GateMiddleware {
	gate := params.Config.Gate

	return &GateMiddleware{
		tokens:               params.TokenService,
		publicRoutes:         gate.PublicRoutes,
		programmaticPrefixes: gate.ProgrammaticPrefixes,
		loginPath:            gate.LoginPath,
		cookies:              SessionCookies{Secure: params.Config.Auth.CookieSecure},
		metrics:              params.Metrics,
		logger:               params.Logger,
	}
}

// Handle runs the gate in front of next
func (m *GateMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		stripAuthHeaders(req.Header)

		path := req.URL.Path
		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).With(slog.String("path", path))

		if matchesRoute(path, m.publicRoutes) {
			return m.forward(c, next, &entity.AuthDecision{State: entity.GateStatePublic})
		}

		programmatic := matchesRoute(path, m.programmaticPrefixes)

		cookie, err := c.Cookie(constants.CookieAccessToken)
		if err != nil || cookie.Value == "" {
			decision := &entity.AuthDecision{State: entity.GateStateNoToken, Error: noTokenMessage}
			if programmatic {
				logger.Debug("Gate forwarding request without token")

				return m.forward(c, next, decision)
			}

			logger.Debug("Gate redirecting request without token")
			m.metrics.GateDecisions.WithLabelValues(string(decision.State)).Inc()

			return c.Redirect(http.StatusTemporaryRedirect, m.loginPath)
		}

		claims, err := m.tokens.Verify(cookie.Value)
		if err == nil {
			logger.Debug("Gate accepted token", slog.Int64("user_id", claims.SubjectID))

			return m.forward(c, next, &entity.AuthDecision{
				State:         entity.GateStateValid,
				Authenticated: true,
				SubjectID:     claims.SubjectID,
				SubjectName:   claims.SubjectName,
				ExpiresAt:     claims.ExpiresAt,
			})
		}

		decision := invalidDecision(err)
		var tokenErr *domainerrors.TokenError
		if errors.As(err, &tokenErr) && tokenErr.IsConfig() {
			logger.Error("Gate cannot verify tokens", slog.Any("error", err))
		} else {
			logger.Warn("Gate rejected token", slog.String("code", decision.ErrorCode), slog.String("reason", decision.Error))
		}

		if programmatic {
			return m.forward(c, next, decision)
		}

		m.metrics.GateDecisions.WithLabelValues(string(decision.State)).Inc()
		m.cookies.Clear(c)

		return c.Redirect(http.StatusTemporaryRedirect, m.loginPath)
	}
}

// forward annotates the request with the decision and hands it to next.
// Public requests are forwarded unchanged apart from the stripped headers.
func (m *GateMiddleware) forward(c echo.Context, next echo.HandlerFunc, decision *entity.AuthDecision) error {
	m.metrics.GateDecisions.WithLabelValues(string(decision.State)).Inc()

	if decision.State != entity.GateStatePublic {
		annotate(c.Request().Header, decision)
	}
	deliverycontext.SetAuthDecision(c, decision)

	return next(c)
}

func invalidDecision(err error) *entity.AuthDecision {
	decision := &entity.AuthDecision{State: entity.GateStateInvalid, Error: err.Error()}

	var tokenErr *domainerrors.TokenError
	if errors.As(err, &tokenErr) {
		decision.Error = tokenErr.Error()
		decision.ErrorCode = tokenErr.Code()
	}

	return decision
}

func annotate(h http.Header, decision *entity.AuthDecision) {
	h.Set(constants.HeaderAuthStatus, decision.Status())
	if decision.Authenticated {
		h.Set(constants.HeaderAuthUserID, strconv.FormatInt(decision.SubjectID, 10))
		h.Set(constants.HeaderAuthUserName, decision.SubjectName)

		return
	}

	if decision.Error != "" {
		h.Set(constants.HeaderAuthError, decision.Error)
	}
	if decision.ErrorCode != "" {
		h.Set(constants.HeaderAuthErrorCode, decision.ErrorCode)
	}
}

// stripAuthHeaders drops every inbound x-auth-* header so only the gate can set them.
func stripAuthHeaders(h http.Header) {
	for key := range h {
		if strings.HasPrefix(strings.ToLower(key), constants.HeaderAuthPrefix) {
			h.Del(key)
		}
	}
}

// matchesRoute reports an exact match or a match on a whole leading segment:
// "/api" matches "/api" and "/api/items" but not "/apix".
func matchesRoute(path string, routes []string) bool {
	for _, route := range routes {
		if path == route {
			return true
		}
		prefix := strings.TrimSuffix(route, "/") + "/"
		if route != "/" && strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
