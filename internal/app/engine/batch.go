package engine

import (
	"errors"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
)

// ErrScentMismatch is returned by Batch.Add when the new item's scent
// differs from the scent the batch was started with. The caller must decide
// between replacing the whole batch (Replace) and dropping the add; there
// is no partial append.
var ErrScentMismatch = errors.New("batch already holds a different scent")

// BatchItem is one costed candle configuration planned into a production
// run. Composition is a snapshot of the scent's base-oil recipe at the time
// the item was added; items whose scent has a direct cost carry none.
type BatchItem struct {
	ID           string                 `json:"id"`
	ContainerKey string                 `json:"container_key"`
	WaterOz      float64                `json:"water_oz"`
	ScentKey     string                 `json:"scent_key"`
	ScentName    string                 `json:"scent_name"`
	WickCounts   map[string]int         `json:"wick_counts"`
	Composition  []model.ScentComponent `json:"composition,omitempty"`
	Quantity     int                    `json:"quantity"`
	Costs        CostBreakdown          `json:"costs"`
}

// BatchTotals is the roll-up across all items in the run.
type BatchTotals struct {
	Items             int     `json:"items"`
	WaxOz             float64 `json:"wax_oz"`
	FragranceOz       float64 `json:"fragrance_oz"`
	TotalMaterialCost float64 `json:"total_material_cost"`
}

// Batch accumulates costed items into a single production run. A run is
// single-scent: every item after the first must match the first item's
// scent.
type Batch struct {
	items []BatchItem
}

// NewBatch returns an empty production run.
func NewBatch() *Batch {
	return &Batch{}
}

// Add appends item to the run. An empty run accepts anything; a non-empty
// run rejects a different scent with ErrScentMismatch, leaving the run
// unchanged.
func (b *Batch) Add(item BatchItem) error {
	if len(b.items) > 0 && item.ScentKey != b.items[0].ScentKey {
		return ErrScentMismatch
	}
	b.items = append(b.items, item)
	return nil
}

// Replace discards the current run and starts a new one holding only item.
// This is the confirm path after a scent mismatch.
func (b *Batch) Replace(item BatchItem) {
	b.items = []BatchItem{item}
}

// Remove drops the item at index. Out-of-range indexes are a no-op.
func (b *Batch) Remove(index int) {
	if index < 0 || index >= len(b.items) {
		return
	}
	b.items = append(b.items[:index], b.items[index+1:]...)
}

// Clear empties the run.
func (b *Batch) Clear() {
	b.items = nil
}

// Len returns the number of items in the run.
func (b *Batch) Len() int {
	return len(b.items)
}

// Items returns a copy of the run's items in insertion order.
func (b *Batch) Items() []BatchItem {
	out := make([]BatchItem, len(b.items))
	copy(out, b.items)
	return out
}

// Totals sums wax, fragrance and material cost across the run.
func (b *Batch) Totals() BatchTotals {
	t := BatchTotals{Items: len(b.items)}
	for _, item := range b.items {
		t.WaxOz += item.Costs.WaxOz
		t.FragranceOz += item.Costs.FragranceOz
		t.TotalMaterialCost += item.Costs.TotalMaterialCost
	}
	return t
}

// BaseOilTotals distributes each item's fragrance ounces over its
// composition percentages and sums per base oil. Items without a
// composition contribute nothing here (their ounces still appear in
// Totals).
func (b *Batch) BaseOilTotals() map[string]float64 {
	totals := make(map[string]float64)
	for _, item := range b.items {
		for _, comp := range item.Composition {
			totals[comp.BaseOilKey] += item.Costs.FragranceOz * comp.Percentage / 100.0
		}
	}
	return totals
}
