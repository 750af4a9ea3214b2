package handlers

import (
	"storetrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves read-only summaries.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/reports/dashboard", h.HandleDashboard)
}

// HandleDashboard returns the dashboard counters.
func (h *ReportHandler) HandleDashboard(c *fiber.Ctx) error {
	dash, err := h.service.Dashboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dash)
}
