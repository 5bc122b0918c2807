package repository

import (
	"errors"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get() (*model.CalculatorSettings, error)
	Save(settings *model.CalculatorSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the single settings row, or gorm.ErrRecordNotFound when the
// row has never been seeded.
func (r *settingsRepository) Get() (*model.CalculatorSettings, error) {
	var settings model.CalculatorSettings
	if err := r.db.First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to load calculator settings", err, nil)
		}
		return nil, err
	}
	return &settings, nil
}

// Save writes the settings row, creating it on first save. There is never
// more than one row.
func (r *settingsRepository) Save(settings *model.CalculatorSettings) error {
	logger.Debug("Saving calculator settings", map[string]interface{}{
		"wax_cost_per_oz":    settings.WaxCostPerOz,
		"water_to_wax_ratio": settings.WaterToWaxRatio,
		"fragrance_load":     settings.FragranceLoad,
	})

	existing := model.CalculatorSettings{}
	err := r.db.First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = r.db.Create(settings).Error
	case err == nil:
		settings.ID = existing.ID
		err = r.db.Save(settings).Error
	}
	if err != nil {
		logger.Error("Failed to save calculator settings", err, nil)
	}
	return err
}
