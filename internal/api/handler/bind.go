package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/core/domain"
)

// errorBody documents the error envelope for swagger.
type errorBody struct {
	Error string `json:"error"`
}

var errInvalidPayload = domain.Validation("invalid payload")

// bindAndValidate decodes the request into dst and runs struct validation.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errInvalidPayload
	}
	return c.Validate(dst)
}
