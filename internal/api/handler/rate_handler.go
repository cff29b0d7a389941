package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/api/metrics"
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

type RateHandler struct {
	rates ports.RateService
}

func NewRateHandler(rates ports.RateService) *RateHandler {
	return &RateHandler{rates: rates}
}

// Rate converts between two currencies.
//
// @Summary      Exchange rate
// @Tags         rates
// @Produce      json
// @Param        from  query     string  true  "ISO currency code"
// @Param        to    query     string  true  "ISO currency code"
// @Success      200   {object}  domain.Rate
// @Failure      400   {object}  errorBody
// @Failure      503   {object}  errorBody
// @Router       /api/rates [get]
func (h *RateHandler) Rate(c echo.Context) error {
	rate, err := h.rates.Rate(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		if errors.Is(err, domain.ErrRateUnavailable) {
			metrics.RateLookupsTotal.WithLabelValues("unavailable").Inc()
		}
		return err
	}
	metrics.RateLookupsTotal.WithLabelValues(string(rate.Source)).Inc()
	return c.JSON(http.StatusOK, rate)
}
