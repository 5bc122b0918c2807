package model

import (
	"time"

	"gorm.io/gorm"
)

// GlobalScent is a fragrance available in the shop. A limited scent is only
// sellable for the products listed in EnabledProducts; a non-limited scent
// is eligible everywhere.
//
// Costing works one of two ways: a direct CostPerOz override, or a weighted
// composition of base oils (see ScentComponent).
type GlobalScent struct {
	ID        uint     `gorm:"primarykey" json:"id"`
	Key       string   `gorm:"uniqueIndex;not null" json:"key"`
	Name      string   `gorm:"not null" json:"name"`
	Limited   bool     `gorm:"default:false" json:"limited"`
	CostPerOz *float64 `json:"cost_per_oz,omitempty"`

	EnabledProducts []ScentProduct   `gorm:"foreignKey:ScentID;constraint:OnDelete:CASCADE" json:"enabled_products,omitempty"`
	Components      []ScentComponent `gorm:"foreignKey:ScentID;constraint:OnDelete:CASCADE" json:"components,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GlobalScent) TableName() string {
	return "global_scents"
}

// EnabledSlugs returns the product slugs a limited scent is enabled for.
func (s *GlobalScent) EnabledSlugs() []string {
	slugs := make([]string, 0, len(s.EnabledProducts))
	for _, ep := range s.EnabledProducts {
		slugs = append(slugs, ep.ProductSlug)
	}
	return slugs
}

// ScentProduct is one entry of a limited scent's allow-list.
type ScentProduct struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	ScentID     uint   `gorm:"index;not null" json:"scent_id"`
	ProductSlug string `gorm:"not null" json:"product_slug"`
}

func (ScentProduct) TableName() string {
	return "scent_products"
}

// ScentComponent is one (base oil, percentage) pair of a scent's
// composition. Percentages are stored as entered; they are not forced to
// sum to 100.
type ScentComponent struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	ScentID    uint    `gorm:"index;not null" json:"scent_id"`
	BaseOilKey string  `gorm:"not null" json:"base_oil_key"`
	Percentage float64 `gorm:"not null" json:"percentage"`
	Position   int     `gorm:"default:0" json:"position"`
}

func (ScentComponent) TableName() string {
	return "scent_components"
}
