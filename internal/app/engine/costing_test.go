package engine

import (
	"testing"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCosts(t *testing.T) {
	out := CalculateCosts(CostInput{
		WaterOz:         10,
		WaterToWaxRatio: 0.9,
		FragranceLoad:   0.08,
		WaxCostPerOz:    0.2,
		ScentCostPerOz:  5,
		WickCost:        1,
		ContainerCost:   2,
	})

	assert.InDelta(t, 9.0, out.WaxOz, 1e-9)
	assert.InDelta(t, 0.72, out.FragranceOz, 1e-9)
	assert.InDelta(t, 1.8, out.WaxCost, 1e-9)
	assert.InDelta(t, 3.6, out.FragranceCost, 1e-9)
	assert.InDelta(t, 8.4, out.TotalMaterialCost, 1e-9)
	assert.InDelta(t, 0.9333, out.CostPerWaxOz, 1e-4)
}

func TestCalculateCosts_ZeroWaterAvoidsDivisionByZero(t *testing.T) {
	out := CalculateCosts(CostInput{
		WaterOz:         0,
		WaterToWaxRatio: 0.9,
		FragranceLoad:   0.08,
		WaxCostPerOz:    0.2,
		ScentCostPerOz:  5,
		WickCost:        1,
		ContainerCost:   2,
	})

	assert.Zero(t, out.WaxOz)
	assert.Zero(t, out.CostPerWaxOz)
	// Wick and container cost still count even with no wax.
	assert.InDelta(t, 3.0, out.TotalMaterialCost, 1e-9)
}

func TestResolveScentCost_DirectOverrideWins(t *testing.T) {
	direct := 4.25
	scent := &model.GlobalScent{
		Key:       "leather",
		CostPerOz: &direct,
		Components: []model.ScentComponent{
			{BaseOilKey: "sandalwood", Percentage: 100},
		},
	}

	cost := ResolveScentCost(scent, []model.BaseOil{{Key: "sandalwood", CostPerOz: 99}})
	assert.InDelta(t, 4.25, cost, 1e-9)
}

func TestResolveScentCost_Composition(t *testing.T) {
	oils := []model.BaseOil{
		{Key: "oil-a", CostPerOz: 10},
		{Key: "oil-b", CostPerOz: 20},
	}

	scent := &model.GlobalScent{
		Key: "signature",
		Components: []model.ScentComponent{
			{BaseOilKey: "oil-a", Percentage: 50},
			{BaseOilKey: "oil-b", Percentage: 50},
		},
	}
	assert.InDelta(t, 15.0, ResolveScentCost(scent, oils), 1e-9)
}

func TestResolveScentCost_UnresolvedOilContributesZero(t *testing.T) {
	scent := &model.GlobalScent{
		Key: "mystery",
		Components: []model.ScentComponent{
			{BaseOilKey: "oil-a", Percentage: 50},
			{BaseOilKey: "missing", Percentage: 50},
		},
	}

	cost := ResolveScentCost(scent, []model.BaseOil{{Key: "oil-a", CostPerOz: 10}})
	assert.InDelta(t, 5.0, cost, 1e-9)
}

// Percentages are not normalized: a composition summing to 60% under-costs
// the fragrance, exactly as entered.
func TestResolveScentCost_PercentagesNotNormalized(t *testing.T) {
	scent := &model.GlobalScent{
		Key: "partial",
		Components: []model.ScentComponent{
			{BaseOilKey: "oil-a", Percentage: 60},
		},
	}

	cost := ResolveScentCost(scent, []model.BaseOil{{Key: "oil-a", CostPerOz: 10}})
	assert.InDelta(t, 6.0, cost, 1e-9)
}
