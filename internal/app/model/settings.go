package model

import "time"

// CalculatorSettings is the single process-wide costing configuration row.
// It is loaded once at startup and only changes through an explicit save.
type CalculatorSettings struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	WaxCostPerOz    float64   `gorm:"not null" json:"wax_cost_per_oz"`
	WaterToWaxRatio float64   `gorm:"not null" json:"water_to_wax_ratio"`
	FragranceLoad   float64   `gorm:"not null" json:"fragrance_load"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (CalculatorSettings) TableName() string {
	return "calculator_settings"
}
