// Package constants collects configuration values shared across layers.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session cookie names
const (
	CookieAccessToken = "accessToken"
	CookieUserID      = "userId"
	CookieUserName    = "userName"
)

// Request headers written by the request gate for downstream handlers
const (
	HeaderAuthStatus    = "x-auth-status"
	HeaderAuthUserID    = "x-auth-user-id"
	HeaderAuthUserName  = "x-auth-user-name"
	HeaderAuthError     = "x-auth-error"
	HeaderAuthErrorCode = "x-auth-error-code"
)

// HeaderAuthPrefix is stripped from every inbound request before the gate runs.
const HeaderAuthPrefix = "x-auth-"
