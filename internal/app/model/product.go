package model

import (
	"time"

	"gorm.io/gorm"
)

// Product is a sellable candle. Slug is the stable identity used by the
// admin UI and the draft overlay; Code is the printed product code
// (prefix + zero-padded number, e.g. DCW-0001).
type Product struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Slug          string  `gorm:"uniqueIndex;not null" json:"slug"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	Code          string  `json:"code"`
	Price         float64 `gorm:"not null" json:"price"`
	TargetPrice   float64 `gorm:"default:0" json:"target_price"`
	// StockQuantity only counts when the product has no variant
	// configuration; with variants the total is the sum of VariantStocks.
	StockQuantity int     `gorm:"default:0" json:"stock_quantity"`
	MaterialCost  float64 `gorm:"default:0" json:"material_cost"`
	ContainerKey  string  `json:"container_key"`
	BatchNumber   string  `json:"batch_number"`
	ProductionDate *time.Time `json:"production_date,omitempty"`
	Notes         string  `gorm:"type:text" json:"notes"`

	Sizes         []ProductSize  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sizes,omitempty"`
	Wicks         []ProductWick  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"wicks,omitempty"`
	VariantStocks []VariantStock `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variant_stocks,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// HasVariantConfig reports whether the product sells as variant
// combinations. A variant configuration always has at least one wick type;
// sizes are optional.
func (p *Product) HasVariantConfig() bool {
	return len(p.Wicks) > 0
}

// StockMap flattens the variant stock rows into the map keyed by variant id
// that the variant generator and stock ledger consume.
func (p *Product) StockMap() map[string]int {
	m := make(map[string]int, len(p.VariantStocks))
	for _, vs := range p.VariantStocks {
		m[vs.VariantID] = vs.Quantity
	}
	return m
}

// ProductSize is one entry of a product's optional size axis. Position
// preserves the order the operator configured.
type ProductSize struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	SizeID    string  `gorm:"not null" json:"size_id"`
	Name      string  `gorm:"not null" json:"name"`
	Ounces    float64 `json:"ounces"`
	Price     float64 `json:"price"`
	Position  int     `gorm:"default:0" json:"position"`
}

func (ProductSize) TableName() string {
	return "product_sizes"
}

// ProductWick is one entry of a product's wick axis.
type ProductWick struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	WickID    string `gorm:"not null" json:"wick_id"`
	Name      string `gorm:"not null" json:"name"`
	Position  int    `gorm:"default:0" json:"position"`
}

func (ProductWick) TableName() string {
	return "product_wicks"
}

// VariantStock holds the on-hand count for one concrete variant combination.
// VariantID is the hyphen-join of (size?, wick, scent) component ids.
// Rows for combinations no longer reachable from the configured axes are
// kept as-is; they simply stop contributing to generated variants.
type VariantStock struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProductID uint   `gorm:"index:idx_variant_stock,unique;not null" json:"product_id"`
	VariantID string `gorm:"index:idx_variant_stock,unique;not null" json:"variant_id"`
	Quantity  int    `gorm:"default:0" json:"quantity"`
}

func (VariantStock) TableName() string {
	return "variant_stocks"
}
