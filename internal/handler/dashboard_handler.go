package handler

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/response"
	"backoffice/internal/service"
)

// DashboardHandler serves the admin landing-page summary.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// @Summary Dashboard counters and top lists
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, stats)
}
