package engine

import "github.com/dcwlabs/candleworks-backend/internal/app/model"

// EligibleScents returns the scents sellable for the product identified by
// slug, preserving catalog order. A non-limited scent is eligible for every
// product; a limited scent only for products in its allow-list. An unknown
// slug simply yields the non-limited subset.
func EligibleScents(slug string, scents []model.GlobalScent) []model.GlobalScent {
	eligible := make([]model.GlobalScent, 0, len(scents))
	for _, scent := range scents {
		if !scent.Limited {
			eligible = append(eligible, scent)
			continue
		}
		for _, ep := range scent.EnabledProducts {
			if ep.ProductSlug == slug {
				eligible = append(eligible, scent)
				break
			}
		}
	}
	return eligible
}

// ResolveScentCost returns the scent's cost per ounce. A direct CostPerOz
// override wins; otherwise the cost is the percentage-weighted sum over the
// composition's base oils. A component referencing an unknown oil
// contributes 0 rather than failing, and percentages are taken as stored
// even when they do not sum to 100.
func ResolveScentCost(scent *model.GlobalScent, oils []model.BaseOil) float64 {
	if scent == nil {
		return 0
	}
	if scent.CostPerOz != nil {
		return *scent.CostPerOz
	}

	costByKey := make(map[string]float64, len(oils))
	for _, oil := range oils {
		costByKey[oil.Key] = oil.CostPerOz
	}

	var cost float64
	for _, comp := range scent.Components {
		cost += comp.Percentage / 100.0 * costByKey[comp.BaseOilKey]
	}
	return cost
}
