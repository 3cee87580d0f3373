package handler

import (
	"errors"
	"time"

	"go-inventory-dash/internal/model"
	"go-inventory-dash/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) GetStockCount(c *fiber.Ctx) error {
	return c.JSON(h.service.GetStockCount())
}

func (h *ReportHandler) GetByCategory(c *fiber.Ctx) error {
	return c.JSON(h.service.GetByCategory())
}

func (h *ReportHandler) GetReorderAlerts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetReorderAlerts())
}

// GetItemMovement returns one item's transactions.
// Query params: item_id (required), start, end (optional, 2006-01-02)
func (h *ReportHandler) GetItemMovement(c *fiber.Ctx) error {
	itemID := c.Query("item_id")
	if itemID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "item_id is required"})
	}

	var from, to time.Time
	var err error
	if start := c.Query("start"); start != "" {
		if from, err = time.Parse(model.DateLayout, start); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start date"})
		}
	}
	if end := c.Query("end"); end != "" {
		if to, err = time.Parse(model.DateLayout, end); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end date"})
		}
	}

	return c.JSON(h.service.GetItemMovement(itemID, from, to))
}

func (h *ReportHandler) GetSupplierAccount(c *fiber.Ctx) error {
	return c.JSON(h.service.GetSupplierAccount(c.Params("id")))
}

func (h *ReportHandler) GetCustomerAccount(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCustomerAccount(c.Params("id")))
}

// GetCogs returns cost of goods sold for the current period.
// Query params: period (week|month|year, default month)
func (h *ReportHandler) GetCogs(c *fiber.Ctx) error {
	period := service.Period(c.Query("period", string(service.PeriodMonth)))

	report, err := h.service.GetCogs(period)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPeriod) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid period. Use week, month, or year"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}
	return c.JSON(report)
}
