package config

import (
	"Pantry-Inventory/internal/api/handlers"
	"Pantry-Inventory/internal/api/routes"
	"Pantry-Inventory/internal/middleware"
	"Pantry-Inventory/internal/utils"
	"Pantry-Inventory/pkg/inventory"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

func NewApp(inventoryRepository inventory.InventoryRepository) (*fiber.App, error) {
	utils.InitValidator()
	cfg := utils.GetAppConfig()

	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		cfg.LogFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(middlewares.LoggerMiddleware(file))
	app.Use(middlewares.LimiterMiddleware(cfg.RateLimitMax))

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	ids, err := inventory.NewIDGenerator(cfg.NodeID)
	if err != nil {
		return nil, err
	}

	// Service
	inventoryService := inventory.NewInventoryService(
		inventoryRepository,
		ids,
		inventory.NewExpiryWindow(cfg.ExpiryWindowDays, location),
	)

	// Handler
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		InventoryHandler: inventoryHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
