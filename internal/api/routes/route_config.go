package routes

import (
	"Pantry-Inventory/domain"
	"Pantry-Inventory/internal/api/handlers"
	"Pantry-Inventory/internal/api/presenters"
	"Pantry-Inventory/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	InventoryHandler handlers.InventoryHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Inventory()
	c.Notifications()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPing)
	})
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/inventory/:userId")

	inventory.Get("", c.InventoryHandler.GetIngredients)
	inventory.Get("/dashboard", c.InventoryHandler.GetDashboardStats)
	inventory.Post("/add", c.InventoryHandler.AddIngredient)
	inventory.Delete("/delete/:ingredientId", c.InventoryHandler.DeleteIngredient)
}

func (c *Config) Notifications() {
	c.App.Get("/notifications/:userId", c.InventoryHandler.GetExpiringSoon)
}
