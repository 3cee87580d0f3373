package handler

import (
	"errors"
	"strings"

	"go-inventory-dash/internal/ai"
	"go-inventory-dash/internal/store"

	"github.com/gofiber/fiber/v2"
)

// AssistantHandler fronts the optional AI collaborator. When no credential
// is configured it reports degraded mode instead of failing; the store is
// never affected either way.
type AssistantHandler struct {
	store     *store.Store
	assistant *ai.Assistant
}

func NewAssistantHandler(st *store.Store, assistant *ai.Assistant) *AssistantHandler {
	return &AssistantHandler{store: st, assistant: assistant}
}

type chatRequest struct {
	Question string `json:"question"`
}

func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "question is required"})
	}

	snap := ai.Snapshot{
		Items:        h.store.Items(),
		Suppliers:    h.store.Suppliers(),
		Customers:    h.store.Customers(),
		Transactions: h.store.Transactions(),
	}

	answer, err := h.assistant.Chat(c.Context(), req.Question, snap)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			return c.Status(503).JSON(fiber.Map{"error": "AI assistant is not available", "degraded": true})
		}
		return c.Status(502).JSON(fiber.Map{"error": "Failed to get an answer. Please try again"})
	}

	return c.JSON(fiber.Map{"answer": answer})
}

func (h *AssistantHandler) Avatar(c *fiber.Ctx) error {
	img, err := h.assistant.Avatar(c.Context())
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			return c.Status(503).JSON(fiber.Map{"error": "AI assistant is not available", "degraded": true})
		}
		return c.Status(502).JSON(fiber.Map{"error": "Failed to generate avatar"})
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(img)
}
