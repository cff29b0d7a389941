package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autohaus/dealership/internal/core/domain"
)

// DefaultTTL is the lifetime of both user and admin tokens.
const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Subject is the identity embedded in a token.
type Subject struct {
	ID    string
	Email string
	Name  string
}

// Claims is the signed payload of a session token.
type Claims struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts verified claims to a request identity.
func (c *Claims) Identity() *domain.Identity {
	return &domain.Identity{ID: c.Subject, Email: c.Email, Name: c.Name, Role: c.Role}
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// TokenOption customizes a TokenService.
type TokenOption func(*TokenService)

// WithClock overrides the wall clock used for issuing and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(t *TokenService) { t.now = now }
}

// NewTokenService returns a TokenService signing with secret.
func NewTokenService(secret string, opts ...TokenOption) *TokenService {
	t := &TokenService{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Issue signs a token for subject with the given role and lifetime. A
// non-positive ttl uses DefaultTTL.
func (t *TokenService) Issue(subject Subject, role domain.Role, ttl time.Duration) (string, time.Time, error) {
	if !role.Valid() {
		return "", time.Time{}, fmt.Errorf("issue token: unknown role %q", role)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	issuedAt := t.now()
	expiresAt := issuedAt.Add(ttl)
	claims := &Claims{
		Email: subject.Email,
		Name:  subject.Name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, structure and expiry and returns the claims.
// Failures are ErrTokenExpired or ErrTokenInvalid.
func (t *TokenService) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
