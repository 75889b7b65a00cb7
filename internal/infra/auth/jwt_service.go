// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/base64"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

var lifetimePattern = regexp.MustCompile(`^(\d+)([smhdw])$`)

var lifetimeUnits = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
	"w": 7 * 24 * time.Hour,
}

// ParseLifetime parses <number><unit> durations such as "7d" or "30m".
// Anything that does not match the grammar, or that overflows a
// time.Duration, yields zero.
func ParseLifetime(lifetime string) time.Duration {
	m := lifetimePattern.FindStringSubmatch(lifetime)
	if m == nil {
		return 0
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}

	unit := lifetimeUnits[m[2]]
	if n > math.MaxInt64/int64(unit) {
		return 0
	}

	return time.Duration(n) * unit
}

// sessionClaims is the signed payload: subject id and name plus iat/exp.
type sessionClaims struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// jwtService issues and verifies HS256 session tokens.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// Option customizes a token service.
type Option func(*jwtService)

// WithClock replaces time.Now, which makes expiry deterministic in tests.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService builds the token service from configuration and refuses to
// start without a signing secret or with a lifetime that would issue tokens
// already expired.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingSigningSecret, "jwt secret must be provided")
	}
	if ParseLifetime(cfg.Auth.TokenLifetime) <= 0 {
		return nil, errors.Errorf("auth.tokenLifetime %q must be a positive <number><s|m|h|d|w> duration", cfg.Auth.TokenLifetime)
	}

	return NewTokenService(cfg.Auth.JWTSecret), nil
}

// NewTokenService creates a token service over a raw secret. An empty secret is
// accepted here; every Issue and Verify call then fails with ErrMissingSigningSecret.
func NewTokenService(secret string, opts ...Option) service.TokenService {
	s := &jwtService{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *jwtService) Issue(subjectID int64, subjectName, lifetime string) (string, error) {
	if len(s.secret) == 0 {
		return "", domainerrors.ErrMissingSigningSecret
	}

	issuedAt := s.now().Truncate(time.Second)
	claims := sessionClaims{
		ID:   subjectID,
		Name: subjectName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ParseLifetime(lifetime))),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

func (s *jwtService) Verify(token string) (*entity.SessionClaims, error) {
	if len(s.secret) == 0 {
		return nil, domainerrors.ErrMissingSigningSecret
	}

	if err := s.verifySignature(token); err != nil {
		return nil, err
	}

	claims := &sessionClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if _, err := parser.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrMalformedToken
	}

	if claims.ID <= 0 || claims.Name == "" || claims.IssuedAt == nil {
		return nil, domainerrors.ErrMalformedToken
	}

	return &entity.SessionClaims{
		SubjectID:   claims.ID,
		SubjectName: claims.Name,
		IssuedAt:    claims.IssuedAt.Time,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// verifySignature checks the MAC over the raw header.payload bytes before any
// payload parsing, so every tampered byte surfaces as an invalid signature.
func (s *jwtService) verifySignature(token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return domainerrors.ErrInvalidSignature
	}

	sig, err := base64.RawURLEncoding.Strict().DecodeString(parts[2])
	if err != nil {
		return domainerrors.ErrInvalidSignature
	}

	if err := jwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], sig, s.secret); err != nil {
		return domainerrors.ErrInvalidSignature
	}

	return nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}
