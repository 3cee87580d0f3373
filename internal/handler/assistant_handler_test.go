package handler_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"go-inventory-dash/internal/ai"
	"go-inventory-dash/internal/handler"
	"go-inventory-dash/internal/store"
)

func newAssistantApp() *fiber.App {
	h := handler.NewAssistantHandler(store.New(), ai.New(context.Background(), ""))

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/assistant/chat", h.Chat)
	api.Get("/assistant/avatar", h.Avatar)
	return app
}

func TestChatDegradedWithoutCredential(t *testing.T) {
	app := newAssistantApp()

	status, body := doJSON(t, app, "POST", "/api/v1/assistant/chat", fiber.Map{"question": "What is running low?"})
	assert.Equal(t, 503, status)
	assert.Contains(t, string(body), "degraded")
}

func TestChatRequiresQuestion(t *testing.T) {
	app := newAssistantApp()

	status, _ := doJSON(t, app, "POST", "/api/v1/assistant/chat", fiber.Map{"question": "  "})
	assert.Equal(t, 400, status)
}

func TestAvatarDegradedWithoutCredential(t *testing.T) {
	app := newAssistantApp()

	status, _ := doJSON(t, app, "GET", "/api/v1/assistant/avatar", nil)
	assert.Equal(t, 503, status)
}
