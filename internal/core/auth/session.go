package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/autohaus/dealership/internal/core/domain"
)

// Cookie names carrying session tokens.
const (
	UserCookie  = "auth_token"
	AdminCookie = "admin_auth_token"
)

// CookieName returns the cookie that carries tokens for role.
func CookieName(role domain.Role) string {
	if role == domain.RoleAdmin {
		return AdminCookie
	}
	return UserCookie
}

// RevocationPolicy selects, per role, whether a verified token must still be
// backed by a live account. Roles absent from the map are not checked.
type RevocationPolicy map[domain.Role]bool

// DefaultRevocationPolicy checks admins against the store and trusts user
// tokens until they expire.
func DefaultRevocationPolicy() RevocationPolicy {
	return RevocationPolicy{domain.RoleAdmin: true, domain.RoleUser: false}
}

// AccountFinder is the slice of the account store the resolver needs.
type AccountFinder interface {
	FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error)
}

// SessionResolver turns the session cookie of a request into an identity.
type SessionResolver struct {
	tokens   *TokenService
	accounts AccountFinder
	policy   RevocationPolicy
}

// NewSessionResolver wires a resolver. A nil policy means
// DefaultRevocationPolicy.
func NewSessionResolver(tokens *TokenService, accounts AccountFinder, policy RevocationPolicy) *SessionResolver {
	if policy == nil {
		policy = DefaultRevocationPolicy()
	}
	return &SessionResolver{tokens: tokens, accounts: accounts, policy: policy}
}

// ResolveUser resolves the storefront user of req.
func (s *SessionResolver) ResolveUser(req *http.Request) (*domain.Identity, error) {
	return s.Resolve(req, domain.RoleUser)
}

// ResolveAdmin resolves the back-office admin of req.
func (s *SessionResolver) ResolveAdmin(req *http.Request) (*domain.Identity, error) {
	return s.Resolve(req, domain.RoleAdmin)
}

// Resolve returns the identity for role, or nil when the request is not
// authenticated as that role. A non-nil error means the account store
// failed; it never signals a bad or missing token.
func (s *SessionResolver) Resolve(req *http.Request, role domain.Role) (*domain.Identity, error) {
	cookie, err := req.Cookie(CookieName(role))
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	claims, err := s.tokens.Verify(cookie.Value)
	if err != nil {
		return nil, nil
	}
	if claims.Role != role {
		return nil, nil
	}

	if !s.policy[role] {
		return claims.Identity(), nil
	}

	account, err := s.accounts.FindByEmail(req.Context(), role, claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve %s session: %w", role, err)
	}
	if account.ID != claims.Subject {
		return nil, nil
	}
	return account.Identity(), nil
}
