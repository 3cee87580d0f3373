package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-dash/internal/ai"
	"go-inventory-dash/internal/config"
	"go-inventory-dash/internal/handler"
	"go-inventory-dash/internal/service"
	"go-inventory-dash/internal/store"
	"go-inventory-dash/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// 2. Setup Store with seed data (process-lifetime only, lost on restart)
	st := store.NewSeeded()

	// 3. Setup WebSocket Hub and subscribe it to store mutations
	wsHub := ws.NewHub()
	go wsHub.Run()
	st.Subscribe(wsHub.BroadcastEvent)

	// 4. Optional AI assistant (disabled without a credential)
	assistant := ai.New(context.Background(), cfg.Gemini.APIKey)

	// 5. Dependency Injection (Wiring Layers)
	dashService := service.NewDashboardService(st)
	reportService := service.NewReportService(st)

	invHandler := handler.NewInventoryHandler(st)
	dashHandler := handler.NewDashboardHandler(dashService)
	reportHandler := handler.NewReportHandler(reportService)
	assistantHandler := handler.NewAssistantHandler(st, assistant)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// Item Routes
	api.Get("/items", invHandler.GetItems)
	api.Get("/items/:id", invHandler.GetItem)
	api.Post("/items", invHandler.CreateItem)
	api.Put("/items/:id", invHandler.UpdateItem)
	api.Delete("/items/:id", invHandler.DeleteItem)

	// Supplier Routes
	api.Get("/suppliers", invHandler.GetSuppliers)
	api.Post("/suppliers", invHandler.CreateSupplier)
	api.Put("/suppliers/:id", invHandler.UpdateSupplier)
	api.Delete("/suppliers/:id", invHandler.DeleteSupplier)

	// Customer Routes
	api.Get("/customers", invHandler.GetCustomers)
	api.Post("/customers", invHandler.CreateCustomer)
	api.Put("/customers/:id", invHandler.UpdateCustomer)
	api.Delete("/customers/:id", invHandler.DeleteCustomer)

	// Transaction Routes (append-only, no update/delete)
	api.Get("/transactions", invHandler.GetTransactions)
	api.Get("/transactions/:id", invHandler.GetTransaction)
	api.Post("/transactions", invHandler.CreateTransaction)

	// Dashboard Routes
	api.Get("/dashboard/stats", dashHandler.GetStats)
	api.Get("/dashboard/stock-levels", dashHandler.GetStockLevels)
	api.Get("/dashboard/alerts", dashHandler.GetAlerts)
	api.Get("/dashboard/recent-transactions", dashHandler.GetRecentTransactions)

	// Report Routes
	api.Get("/reports/stock-count", reportHandler.GetStockCount)
	api.Get("/reports/by-category", reportHandler.GetByCategory)
	api.Get("/reports/reorder-alerts", reportHandler.GetReorderAlerts)
	api.Get("/reports/item-movement", reportHandler.GetItemMovement)
	api.Get("/reports/supplier-account/:id", reportHandler.GetSupplierAccount)
	api.Get("/reports/customer-account/:id", reportHandler.GetCustomerAccount)
	api.Get("/reports/cogs", reportHandler.GetCogs)

	// Assistant Routes (degraded mode without a credential)
	api.Post("/assistant/chat", assistantHandler.Chat)
	api.Get("/assistant/avatar", assistantHandler.Avatar)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
