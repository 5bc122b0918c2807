package engine

// CostInput carries everything CalculateCosts needs. Scent cost is already
// resolved (see ResolveScentCost); wick cost is the summed per-candle wick
// cost; container cost is per unit.
type CostInput struct {
	WaterOz         float64 `json:"water_oz"`
	WaxCostPerOz    float64 `json:"wax_cost_per_oz"`
	WaterToWaxRatio float64 `json:"water_to_wax_ratio"`
	FragranceLoad   float64 `json:"fragrance_load"`
	ScentCostPerOz  float64 `json:"scent_cost_per_oz"`
	WickCost        float64 `json:"wick_cost"`
	ContainerCost   float64 `json:"container_cost"`
}

// CostBreakdown is the full material costing for one candle configuration.
type CostBreakdown struct {
	WaxOz             float64 `json:"wax_oz"`
	FragranceOz       float64 `json:"fragrance_oz"`
	WaxCost           float64 `json:"wax_cost"`
	FragranceCost     float64 `json:"fragrance_cost"`
	WickCost          float64 `json:"wick_cost"`
	ContainerCost     float64 `json:"container_cost"`
	TotalMaterialCost float64 `json:"total_material_cost"`
	CostPerWaxOz      float64 `json:"cost_per_wax_oz"`
}

// CalculateCosts converts the container's water capacity into wax and
// fragrance weights and prices the recipe. Pure; negative magnitudes are
// rejected at the API boundary, not here.
func CalculateCosts(in CostInput) CostBreakdown {
	waxOz := in.WaterOz * in.WaterToWaxRatio
	fragranceOz := waxOz * in.FragranceLoad

	waxCost := waxOz * in.WaxCostPerOz
	fragranceCost := fragranceOz * in.ScentCostPerOz

	total := waxCost + fragranceCost + in.WickCost + in.ContainerCost

	costPerWaxOz := 0.0
	if waxOz > 0 {
		costPerWaxOz = total / waxOz
	}

	return CostBreakdown{
		WaxOz:             waxOz,
		FragranceOz:       fragranceOz,
		WaxCost:           waxCost,
		FragranceCost:     fragranceCost,
		WickCost:          in.WickCost,
		ContainerCost:     in.ContainerCost,
		TotalMaterialCost: total,
		CostPerWaxOz:      costPerWaxOz,
	}
}
