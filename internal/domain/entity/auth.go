package entity

import "time"

// SessionClaims is the verified payload of a session token.
type SessionClaims struct {
	SubjectID   int64
	SubjectName string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// GateState is the outcome class the request gate assigned to a request.
type GateState string

const (
	GateStatePublic  GateState = "PUBLIC"
	GateStateNoToken GateState = "NO_TOKEN"
	GateStateValid   GateState = "VALID"
	GateStateInvalid GateState = "INVALID"
)

// Values of the x-auth-status header.
const (
	AuthStatusAuthenticated    = "authenticated"
	AuthStatusNotAuthenticated = "not-authenticated"
)

// AuthDecision is produced once per request by the request gate and handed to
// downstream handlers through the request context. It is never persisted.
type AuthDecision struct {
	State         GateState
	Authenticated bool
	SubjectID     int64
	SubjectName   string
	ExpiresAt     time.Time // Session expiry, zero unless authenticated.
	Error         string    // Failure message, empty when authenticated or public.
	ErrorCode     string    // Machine code of the failure, empty when unknown.
}

// Status renders the decision as an x-auth-status value.
func (d *AuthDecision) Status() string {
	if d != nil && d.Authenticated {
		return AuthStatusAuthenticated
	}

	return AuthStatusNotAuthenticated
}

// IsSubject reports whether the decision authenticates the given user.
func (d *AuthDecision) IsSubject(userID int64) bool {
	return d != nil && d.Authenticated && d.SubjectID == userID
}
