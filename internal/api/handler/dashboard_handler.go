package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/api/metrics"
	"github.com/autohaus/dealership/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats computes the dashboard snapshot on demand.
//
// @Summary      Dashboard statistics
// @Tags         admin-dashboard
// @Produce      json
// @Success      200  {object}  domain.Snapshot
// @Failure      401  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Router       /api/admin/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	start := time.Now()
	snapshot, err := h.dashboard.ComputeDashboard(c.Request().Context())
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.DashboardDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshot)
}
