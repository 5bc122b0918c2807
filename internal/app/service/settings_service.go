package service

import (
	"errors"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrInvalidSettings = errors.New("calculator settings values must be positive")

type SettingsService interface {
	Get() (*model.CalculatorSettings, error)
	Save(settings *model.CalculatorSettings) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	defaults     model.CalculatorSettings
}

// NewSettingsService wires the repository plus the configured defaults used
// when no settings row exists yet.
func NewSettingsService(settingsRepo repository.SettingsRepository, defaults model.CalculatorSettings) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

func (s *settingsService) Get() (*model.CalculatorSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			d := s.defaults
			return &d, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Save(settings *model.CalculatorSettings) error {
	if settings.WaxCostPerOz <= 0 || settings.WaterToWaxRatio <= 0 || settings.FragranceLoad <= 0 {
		return ErrInvalidSettings
	}

	logger.Info("Saving calculator settings", map[string]interface{}{
		"wax_cost_per_oz":    settings.WaxCostPerOz,
		"water_to_wax_ratio": settings.WaterToWaxRatio,
		"fragrance_load":     settings.FragranceLoad,
	})
	return s.settingsRepo.Save(settings)
}
