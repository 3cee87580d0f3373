package handler

import (
	"strconv"

	"go-inventory-dash/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns the overview card numbers.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetStats())
}

// GetStockLevels returns per-item chart rows (stock vs reorder point).
func (h *DashboardHandler) GetStockLevels(c *fiber.Ctx) error {
	return c.JSON(h.service.GetStockLevels())
}

// GetAlerts returns items at or below their reorder point.
func (h *DashboardHandler) GetAlerts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetLowStockItems())
}

// GetRecentTransactions returns the newest transactions.
// Query params: limit (default 5)
func (h *DashboardHandler) GetRecentTransactions(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}
	return c.JSON(h.service.GetRecentTransactions(limit))
}
