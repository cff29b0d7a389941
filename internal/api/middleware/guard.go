package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/api/metrics"
	"github.com/autohaus/dealership/internal/core/domain"
)

const identityKey = "identity"

// SessionResolver turns a request into the authenticated identity for role.
// A nil identity with a nil error means the request carries no valid session.
type SessionResolver interface {
	Resolve(req *http.Request, role domain.Role) (*domain.Identity, error)
}

// RequireRole rejects requests without a valid session for role with 401 and
// never invokes next for them. On success the identity is stored on the
// echo context.
func RequireRole(resolver SessionResolver, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who, err := resolver.Resolve(c.Request(), role)
			if err != nil {
				return err
			}
			if who == nil {
				metrics.GuardDenialsTotal.WithLabelValues(string(role)).Inc()
				return domain.ErrUnauthenticated
			}
			c.Set(identityKey, who)
			return next(c)
		}
	}
}

// RequireUser guards storefront routes.
func RequireUser(resolver SessionResolver) echo.MiddlewareFunc {
	return RequireRole(resolver, domain.RoleUser)
}

// RequireAdmin guards back-office routes.
func RequireAdmin(resolver SessionResolver) echo.MiddlewareFunc {
	return RequireRole(resolver, domain.RoleAdmin)
}

// IdentityFrom returns the identity stored by RequireRole, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	who, _ := c.Get(identityKey).(*domain.Identity)
	return who
}
