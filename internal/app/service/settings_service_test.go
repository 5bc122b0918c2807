package service

import (
	"testing"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSettingsServiceTest(t *testing.T) SettingsService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	settingsRepo := repository.NewSettingsRepository(testDB)
	return NewSettingsService(settingsRepo, model.CalculatorSettings{
		WaxCostPerOz:    157.64 / 720.0,
		WaterToWaxRatio: 0.90,
		FragranceLoad:   0.08,
	})
}

func TestSettingsService_DefaultsWhenUnset(t *testing.T) {
	settingsService := setupSettingsServiceTest(t)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.InDelta(t, 157.64/720.0, settings.WaxCostPerOz, 1e-9)
	assert.InDelta(t, 0.90, settings.WaterToWaxRatio, 1e-9)
	assert.InDelta(t, 0.08, settings.FragranceLoad, 1e-9)
}

func TestSettingsService_SaveAndReload(t *testing.T) {
	settingsService := setupSettingsServiceTest(t)

	require.NoError(t, settingsService.Save(&model.CalculatorSettings{
		WaxCostPerOz:    0.25,
		WaterToWaxRatio: 0.85,
		FragranceLoad:   0.10,
	}))

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, settings.WaxCostPerOz, 1e-9)
	assert.InDelta(t, 0.85, settings.WaterToWaxRatio, 1e-9)
	assert.InDelta(t, 0.10, settings.FragranceLoad, 1e-9)
}

func TestSettingsService_RejectsNonPositiveValues(t *testing.T) {
	settingsService := setupSettingsServiceTest(t)

	tests := []model.CalculatorSettings{
		{WaxCostPerOz: 0, WaterToWaxRatio: 0.9, FragranceLoad: 0.08},
		{WaxCostPerOz: 0.2, WaterToWaxRatio: -1, FragranceLoad: 0.08},
		{WaxCostPerOz: 0.2, WaterToWaxRatio: 0.9, FragranceLoad: 0},
	}
	for _, s := range tests {
		settings := s
		assert.ErrorIs(t, settingsService.Save(&settings), ErrInvalidSettings)
	}
}
