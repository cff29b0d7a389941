package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/api/middleware"
	"github.com/autohaus/dealership/internal/core/domain"
)

// currentIdentity returns the caller placed on the context by the route
// guard. Handlers behind a guard always have one; the check keeps a
// mis-wired route from running unauthenticated.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	who := middleware.IdentityFrom(c)
	if who == nil {
		return nil, domain.ErrUnauthenticated
	}
	return who, nil
}
