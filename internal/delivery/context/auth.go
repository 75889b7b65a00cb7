package context

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyAuthDecision is the key for storing the gate's decision in context.
const KeyAuthDecision ContextKey = "auth_decision"

// SetAuthDecision stores the decision in echo.Context and in the request context.
func SetAuthDecision(c echo.Context, decision *entity.AuthDecision) {
	c.Set(string(KeyAuthDecision), decision)
	req := c.Request()
	c.SetRequest(req.WithContext(WithAuthDecision(req.Context(), decision)))
}

// GetAuthDecision returns the decision made for this request.
// Requests that never passed the gate get an unauthenticated decision.
func GetAuthDecision(c echo.Context) *entity.AuthDecision {
	if decision, ok := c.Get(string(KeyAuthDecision)).(*entity.AuthDecision); ok && decision != nil {
		return decision
	}
	if decision := AuthDecisionFromContext(c.Request().Context()); decision != nil {
		return decision
	}

	return &entity.AuthDecision{State: entity.GateStateNoToken}
}

// WithAuthDecision returns a new context carrying the decision.
func WithAuthDecision(ctx context.Context, decision *entity.AuthDecision) context.Context {
	return context.WithValue(ctx, KeyAuthDecision, decision)
}

// AuthDecisionFromContext extracts the decision from standard context.Context, or nil.
func AuthDecisionFromContext(ctx context.Context) *entity.AuthDecision {
	if decision, ok := ctx.Value(KeyAuthDecision).(*entity.AuthDecision); ok {
		return decision
	}

	return nil
}
