package engine

import (
	"strings"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
)

// Variant is one concrete sellable combination of a product's configured
// axes. ID is the hyphen-join of the component ids in fixed axis order
// (size, wick, scent); products without a size axis use the two-segment
// wick-scent form.
type Variant struct {
	ID        string `json:"id"`
	SizeID    string `json:"size_id,omitempty"`
	SizeName  string `json:"size_name,omitempty"`
	WickID    string `json:"wick_id"`
	WickName  string `json:"wick_name"`
	ScentKey  string `json:"scent_key"`
	ScentName string `json:"scent_name"`
	Stock     int    `json:"stock"`
}

// GenerateVariants expands the product's configured axes against the
// eligible scent set into the full combination list. Stock comes from the
// product's variant stock map, defaulting to 0 for combinations not yet
// recorded. The product is not mutated.
//
// Output length is |sizes| x |wicks| x |scents| when sizes are configured,
// else |wicks| x |scents|, and ids are unique within one call.
func GenerateVariants(product *model.Product, eligibleScents []model.GlobalScent) []Variant {
	if product == nil || !product.HasVariantConfig() {
		return nil
	}

	stock := product.StockMap()
	variants := make([]Variant, 0, len(product.Sizes)*len(product.Wicks)*len(eligibleScents))

	if len(product.Sizes) > 0 {
		for _, size := range product.Sizes {
			for _, wick := range product.Wicks {
				for _, scent := range eligibleScents {
					id := VariantID(size.SizeID, wick.WickID, scent.Key)
					variants = append(variants, Variant{
						ID:        id,
						SizeID:    size.SizeID,
						SizeName:  size.Name,
						WickID:    wick.WickID,
						WickName:  wick.Name,
						ScentKey:  scent.Key,
						ScentName: scent.Name,
						Stock:     stock[id],
					})
				}
			}
		}
		return variants
	}

	for _, wick := range product.Wicks {
		for _, scent := range eligibleScents {
			id := VariantID("", wick.WickID, scent.Key)
			variants = append(variants, Variant{
				ID:        id,
				WickID:    wick.WickID,
				WickName:  wick.Name,
				ScentKey:  scent.Key,
				ScentName: scent.Name,
				Stock:     stock[id],
			})
		}
	}
	return variants
}

// VariantID joins the component ids with hyphens in axis order. An empty
// size id drops the size segment so products without a size axis stay on
// the two-segment scheme their stock maps are keyed by.
func VariantID(sizeID, wickID, scentKey string) string {
	parts := make([]string, 0, 3)
	if sizeID != "" {
		parts = append(parts, sizeID)
	}
	parts = append(parts, wickID, scentKey)
	return strings.Join(parts, "-")
}
