package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseOil is a raw fragrance oil priced per ounce. Scent compositions
// reference oils by Key.
type BaseOil struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Key       string  `gorm:"uniqueIndex;not null" json:"key"`
	Name      string  `gorm:"not null" json:"name"`
	CostPerOz float64 `gorm:"not null" json:"cost_per_oz"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BaseOil) TableName() string {
	return "base_oils"
}

// WickType is a wick in the global catalog, priced per piece (shipping
// share included).
type WickType struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Key         string  `gorm:"uniqueIndex;not null" json:"key"`
	Name        string  `gorm:"not null" json:"name"`
	CostPerWick float64 `gorm:"not null" json:"cost_per_wick"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WickType) TableName() string {
	return "wick_types"
}

type ContainerShape string

const (
	ShapeRound       ContainerShape = "round"
	ShapeSquare      ContainerShape = "square"
	ShapeHexagonal   ContainerShape = "hexagonal"
	ShapeRectangular ContainerShape = "rectangular"
	ShapeOther       ContainerShape = "other"
)

// Container is a jar or vessel. WaterCapacityOz is the water weight at pour
// level, which the cost engine converts to wax weight.
type Container struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Key             string         `gorm:"uniqueIndex;not null" json:"key"`
	Name            string         `gorm:"not null" json:"name"`
	WaterCapacityOz float64        `gorm:"not null" json:"water_capacity_oz"`
	Shape           ContainerShape `gorm:"type:varchar(50);default:'round'" json:"shape"`
	Supplier        string         `json:"supplier"`
	CostPerUnit     float64        `gorm:"not null" json:"cost_per_unit"`
	Notes           string         `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Container) TableName() string {
	return "containers"
}
