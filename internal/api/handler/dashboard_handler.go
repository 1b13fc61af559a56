package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/console/internal/core/ports"
)

// DashboardHandler renders the landing payload of each role. Dashboards never
// fail; unavailable lists come back empty.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

func (h *DashboardHandler) Admin(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboards.Admin(c.Request().Context()))
}

func (h *DashboardHandler) Employee(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboards.Employee(c.Request().Context()))
}

func (h *DashboardHandler) Client(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboards.Client(c.Request().Context()))
}
