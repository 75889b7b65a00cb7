package service

import (
	"marketplace/internal/domain/entity"
)

// TokenService issues and verifies session tokens. Implementations are pure
// functions of their inputs, the signing secret and an injected clock.
type TokenService interface {
	// Issue signs a token for the subject that expires after lifetime.
	// lifetime uses the <number><unit> grammar with unit in s, m, h, d, w.
	Issue(subjectID int64, subjectName, lifetime string) (string, error)

	// Verify checks the signature, then the payload, then expiry.
	// Failures are *errors.TokenError values.
	Verify(token string) (*entity.SessionClaims, error)
}
