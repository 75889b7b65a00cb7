package errors

// TokenErrorKind classifies why a session token could not be issued or verified.
type TokenErrorKind int

const (
	TokenKindConfig TokenErrorKind = iota + 1
	TokenKindMalformed
	TokenKindInvalidSignature
	TokenKindExpired
)

// Machine readable failure codes forwarded to downstream handlers in x-auth-error-code.
const (
	CodeSecretMissing             = "ERR_JWT_SECRET_MISSING"
	CodeMalformed                 = "ERR_JWT_MALFORMED"
	CodeSignatureVerificationFail = "ERR_JWS_SIGNATURE_VERIFICATION_FAILED"
	CodeExpired                   = "ERR_JWT_EXPIRED"
)

// TokenError is returned by token issuance and verification.
type TokenError struct {
	kind    TokenErrorKind
	code    string
	message string
}

func (e *TokenError) Error() string {
	return e.message
}

func (e *TokenError) Kind() TokenErrorKind {
	return e.kind
}

func (e *TokenError) Code() string {
	return e.code
}

// Is matches on kind so wrapped copies compare equal to the sentinels below.
func (e *TokenError) Is(target error) bool {
	t, ok := target.(*TokenError)
	if !ok {
		return false
	}

	return t.kind == e.kind
}

// IsConfig reports whether the error is a deployment problem rather than a bad token.
func (e *TokenError) IsConfig() bool {
	return e.kind == TokenKindConfig
}

var (
	ErrMissingSigningSecret = &TokenError{kind: TokenKindConfig, code: CodeSecretMissing, message: "JWT secret is not defined"}
	ErrMalformedToken       = &TokenError{kind: TokenKindMalformed, code: CodeMalformed, message: "Token payload is malformed"}
	ErrInvalidSignature     = &TokenError{kind: TokenKindInvalidSignature, code: CodeSignatureVerificationFail, message: "signature verification failed"}
	ErrTokenExpired         = &TokenError{kind: TokenKindExpired, code: CodeExpired, message: "Token has expired"}
)
