package engine

import (
	"testing"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalStock(t *testing.T) {
	t.Run("Variant products sum the stock map", func(t *testing.T) {
		product := &model.Product{
			StockQuantity: 99, // ignored once a variant config exists
			Wicks:         []model.ProductWick{{WickID: "cdn12", Name: "CDN-12"}},
			VariantStocks: []model.VariantStock{
				{VariantID: "cdn12-leather", Quantity: 4},
				{VariantID: "cdn12-lavender", Quantity: 6},
			},
		}
		assert.Equal(t, 10, TotalStock(product))
	})

	t.Run("Flat products use the flat count", func(t *testing.T) {
		product := &model.Product{StockQuantity: 12}
		assert.Equal(t, 12, TotalStock(product))
	})

	t.Run("Nil product", func(t *testing.T) {
		assert.Zero(t, TotalStock(nil))
	})
}

func TestSetVariantStock(t *testing.T) {
	product := &model.Product{
		Wicks: []model.ProductWick{{WickID: "cdn12", Name: "CDN-12"}},
		VariantStocks: []model.VariantStock{
			{VariantID: "cdn12-leather", Quantity: 4},
		},
	}

	SetVariantStock(product, "cdn12-leather", 9)
	require.Len(t, product.VariantStocks, 1)
	assert.Equal(t, 9, product.VariantStocks[0].Quantity)

	// Missing entries are created.
	SetVariantStock(product, "cdn12-lavender", 2)
	require.Len(t, product.VariantStocks, 2)
	assert.Equal(t, 2, product.VariantStocks[1].Quantity)

	// Negative quantities clamp to zero, never persisting a negative state.
	SetVariantStock(product, "cdn12-leather", -5)
	assert.Equal(t, 0, product.VariantStocks[0].Quantity)

	assert.Equal(t, 2, TotalStock(product))
}
