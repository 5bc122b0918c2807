package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dcwlabs/candleworks-backend/config"
	"github.com/dcwlabs/candleworks-backend/internal/app/controller"
	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/internal/app/service"
	"github.com/dcwlabs/candleworks-backend/internal/db"
	"github.com/dcwlabs/candleworks-backend/internal/router"
	"github.com/dcwlabs/candleworks-backend/internal/scheduler"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"github.com/dcwlabs/candleworks-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Candleworks Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations and make sure the calculator settings row exists
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	if err := db.EnsureSettings(&cfg.Calculator); err != nil {
		logger.Fatal("Failed to seed calculator settings", err)
	}

	// Redis backs the nightly valuation cache; the server still works
	// without it, so a connection failure is only a warning.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, valuation cache disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close redis connection", err)
		}
	}()

	// Initialize repositories
	productRepo := repository.NewProductRepository(db.GetDB())
	scentRepo := repository.NewScentRepository(db.GetDB())
	baseOilRepo := repository.NewBaseOilRepository(db.GetDB())
	wickRepo := repository.NewWickTypeRepository(db.GetDB())
	containerRepo := repository.NewContainerRepository(db.GetDB())
	settingsRepo := repository.NewSettingsRepository(db.GetDB())

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, scentRepo)
	materialService := service.NewMaterialService(scentRepo, baseOilRepo, wickRepo, containerRepo)
	settingsService := service.NewSettingsService(settingsRepo, model.CalculatorSettings{
		WaxCostPerOz:    cfg.Calculator.WaxCostPerOz,
		WaterToWaxRatio: cfg.Calculator.WaterToWaxRatio,
		FragranceLoad:   cfg.Calculator.FragranceLoad,
	})
	costingService := service.NewCostingService(materialService, settingsService, baseOilRepo)
	batchService := service.NewBatchService(costingService, materialService)
	draftService := service.NewDraftService(productRepo)
	valuationService := service.NewValuationService(productRepo, containerRepo)

	// Initialize controllers
	productController := controller.NewProductController(catalogService, draftService)
	materialController := controller.NewMaterialController(materialService)
	settingsController := controller.NewSettingsController(settingsService)
	costingController := controller.NewCostingController(costingService)
	batchController := controller.NewBatchController(batchService)
	draftController := controller.NewDraftController(draftService)
	inventoryController := controller.NewInventoryController(valuationService)

	// Nightly inventory valuation snapshot
	valuationScheduler := scheduler.NewValuationScheduler(valuationService)
	if err := valuationScheduler.Start(); err != nil {
		logger.Fatal("Failed to start valuation scheduler", err)
	}
	defer valuationScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		productController,
		materialController,
		settingsController,
		costingController,
		batchController,
		draftController,
		inventoryController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
