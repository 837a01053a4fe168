package main

import (
	"Pantry-Inventory/cmd/config"
	"Pantry-Inventory/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inventoryRepository, err := config.NewInventoryRepository(ctx)
	if err != nil {
		log.Fatalf("error opening record store: %v", err)
	}

	app, err := config.NewApp(inventoryRepository)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("error shutting down: %v", err)
		}
	}()

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
