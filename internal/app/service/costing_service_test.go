package service

import (
	"testing"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One dollar per wax ounce keeps the expected figures easy to follow.
var testDefaults = model.CalculatorSettings{
	WaxCostPerOz:    1.00,
	WaterToWaxRatio: 0.90,
	FragranceLoad:   0.08,
}

func setupCostingServiceTest(t *testing.T) (CostingService, MaterialService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	scentRepo := repository.NewScentRepository(testDB)
	baseOilRepo := repository.NewBaseOilRepository(testDB)
	wickRepo := repository.NewWickTypeRepository(testDB)
	containerRepo := repository.NewContainerRepository(testDB)
	settingsRepo := repository.NewSettingsRepository(testDB)

	materialService := NewMaterialService(scentRepo, baseOilRepo, wickRepo, containerRepo)
	settingsService := NewSettingsService(settingsRepo, testDefaults)
	return NewCostingService(materialService, settingsService, baseOilRepo), materialService
}

func seedCostingFixtures(t *testing.T, materialService MaterialService) {
	cost := 2.50
	require.NoError(t, materialService.CreateScent(&model.GlobalScent{
		Key: "leather", Name: "Leather", CostPerOz: &cost,
	}))
	require.NoError(t, materialService.CreateWickType(&model.WickType{
		Key: "wood_30mm", Name: "Wood 30mm", CostPerWick: 1.50,
	}))
	require.NoError(t, materialService.CreateContainer(&model.Container{
		Key: "8oz_amber", Name: "8oz Amber Jar", WaterCapacityOz: 8.0, CostPerUnit: 1.40,
	}))
}

func TestCostingService_PreviewWithContainer(t *testing.T) {
	costingService, materialService := setupCostingServiceTest(t)
	seedCostingFixtures(t, materialService)

	result, err := costingService.Preview(CostRequest{
		ContainerKey: "8oz_amber",
		ScentKey:     "leather",
		WickCounts:   map[string]int{"wood_30mm": 1},
		TargetPrice:  20.0,
	})
	require.NoError(t, err)

	// 8 oz water * 0.90 = 7.2 oz wax; 7.2 * 0.08 = 0.576 oz fragrance
	assert.InDelta(t, 8.0, result.WaterOz, 1e-9)
	assert.InDelta(t, 7.2, result.Breakdown.WaxOz, 1e-9)
	assert.InDelta(t, 0.576, result.Breakdown.FragranceOz, 1e-9)
	assert.InDelta(t, 7.2, result.Breakdown.WaxCost, 1e-9)
	assert.InDelta(t, 1.44, result.Breakdown.FragranceCost, 1e-9) // 0.576 * 2.50
	assert.InDelta(t, 1.50, result.Breakdown.WickCost, 1e-9)
	assert.InDelta(t, 1.40, result.Breakdown.ContainerCost, 1e-9)
	assert.InDelta(t, 11.54, result.Breakdown.TotalMaterialCost, 1e-9)

	assert.InDelta(t, 8.46, result.Profit, 1e-9)
	assert.InDelta(t, 42.3, result.MarginPercent, 1e-9)
}

func TestCostingService_PreviewWithExplicitWater(t *testing.T) {
	costingService, materialService := setupCostingServiceTest(t)
	seedCostingFixtures(t, materialService)

	result, err := costingService.Preview(CostRequest{
		WaterOz:  10.0,
		ScentKey: "leather",
	})
	require.NoError(t, err)

	assert.InDelta(t, 9.0, result.Breakdown.WaxOz, 1e-9)
	assert.InDelta(t, 0.72, result.Breakdown.FragranceOz, 1e-9)
	// No wick, no container: wax + fragrance only
	assert.InDelta(t, 9.0+0.72*2.50, result.Breakdown.TotalMaterialCost, 1e-9)
	// No target price given, no profit figures
	assert.Zero(t, result.Profit)
	assert.Zero(t, result.MarginPercent)
}

func TestCostingService_PreviewBlendedScent(t *testing.T) {
	costingService, materialService := setupCostingServiceTest(t)

	require.NoError(t, materialService.CreateBaseOil(&model.BaseOil{
		Key: "sandalwood", Name: "Sandalwood", CostPerOz: 20.0,
	}))
	require.NoError(t, materialService.CreateBaseOil(&model.BaseOil{
		Key: "vanilla", Name: "Vanilla", CostPerOz: 10.0,
	}))
	require.NoError(t, materialService.CreateScent(&model.GlobalScent{
		Key:  "temple-woods",
		Name: "Temple Woods",
		Components: []model.ScentComponent{
			{BaseOilKey: "sandalwood", Percentage: 50, Position: 0},
			{BaseOilKey: "vanilla", Percentage: 50, Position: 1},
		},
	}))

	result, err := costingService.Preview(CostRequest{
		WaterOz:  10.0,
		ScentKey: "temple-woods",
	})
	require.NoError(t, err)

	// 50/50 blend of $20 and $10 oils
	assert.InDelta(t, 15.0, result.ScentCostPerOz, 1e-9)
	assert.InDelta(t, 0.72*15.0, result.Breakdown.FragranceCost, 1e-9)
}

func TestCostingService_PreviewErrors(t *testing.T) {
	costingService, materialService := setupCostingServiceTest(t)
	seedCostingFixtures(t, materialService)

	tests := []struct {
		name    string
		req     CostRequest
		wantErr error
	}{
		{
			name:    "No water and no container",
			req:     CostRequest{ScentKey: "leather"},
			wantErr: ErrInvalidWaterOz,
		},
		{
			name:    "Unknown container",
			req:     CostRequest{ContainerKey: "no-such-jar", ScentKey: "leather"},
			wantErr: ErrContainerNotFound,
		},
		{
			name:    "Unknown scent",
			req:     CostRequest{WaterOz: 8.0, ScentKey: "no-such-scent"},
			wantErr: ErrScentNotFound,
		},
		{
			name: "Unknown wick type",
			req: CostRequest{
				WaterOz:    8.0,
				ScentKey:   "leather",
				WickCounts: map[string]int{"no-such-wick": 1},
			},
			wantErr: ErrMaterialNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := costingService.Preview(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
