package db

import (
	"errors"

	"github.com/dcwlabs/candleworks-backend/config"
	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Product{},
		&model.ProductSize{},
		&model.ProductWick{},
		&model.VariantStock{},
		&model.GlobalScent{},
		&model.ScentProduct{},
		&model.ScentComponent{},
		&model.BaseOil{},
		&model.WickType{},
		&model.Container{},
		&model.CalculatorSettings{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// EnsureSettings seeds the calculator settings row from the configured
// defaults when it does not exist yet. Existing values are never
// overwritten: settings only change through an explicit save.
func EnsureSettings(cfg *config.CalculatorConfig) error {
	var settings model.CalculatorSettings
	err := DB.First(&settings).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	settings = model.CalculatorSettings{
		WaxCostPerOz:    cfg.WaxCostPerOz,
		WaterToWaxRatio: cfg.WaterToWaxRatio,
		FragranceLoad:   cfg.FragranceLoad,
	}
	if err := DB.Create(&settings).Error; err != nil {
		logger.Error("Failed to seed calculator settings", err)
		return err
	}

	logger.Info("Calculator settings seeded from defaults", map[string]interface{}{
		"wax_cost_per_oz":    settings.WaxCostPerOz,
		"water_to_wax_ratio": settings.WaterToWaxRatio,
		"fragrance_load":     settings.FragranceLoad,
	})
	return nil
}
