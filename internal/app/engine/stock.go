package engine

import "github.com/dcwlabs/candleworks-backend/internal/app/model"

// TotalStock returns the product's sellable unit count. With a variant
// configuration the flat StockQuantity is ignored and the total is the sum
// over the variant stock map; without one the flat field is the total.
func TotalStock(product *model.Product) int {
	if product == nil {
		return 0
	}
	if !product.HasVariantConfig() {
		return product.StockQuantity
	}
	total := 0
	for _, vs := range product.VariantStocks {
		total += vs.Quantity
	}
	return total
}

// SetVariantStock records quantity for the given variant id on the
// in-memory product record, clamping negatives to zero and creating the
// entry when absent. Persistence is the caller's job.
func SetVariantStock(product *model.Product, variantID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range product.VariantStocks {
		if product.VariantStocks[i].VariantID == variantID {
			product.VariantStocks[i].Quantity = quantity
			return
		}
	}
	product.VariantStocks = append(product.VariantStocks, model.VariantStock{
		ProductID: product.ID,
		VariantID: variantID,
		Quantity:  quantity,
	})
}
