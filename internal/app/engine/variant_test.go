package engine

import (
	"testing"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variantTestProduct() *model.Product {
	return &model.Product{
		Slug: "boot-leather",
		Sizes: []model.ProductSize{
			{SizeID: "8oz", Name: "8 oz", Ounces: 8, Price: 24},
			{SizeID: "12oz", Name: "12 oz", Ounces: 12, Price: 32},
		},
		Wicks: []model.ProductWick{
			{WickID: "wood-30mm", Name: "Wood 30mm"},
			{WickID: "cdn12", Name: "CDN-12"},
		},
		VariantStocks: []model.VariantStock{
			{VariantID: "8oz-wood-30mm-leather", Quantity: 7},
		},
	}
}

func variantTestScents() []model.GlobalScent {
	return []model.GlobalScent{
		{Key: "leather", Name: "Leather"},
		{Key: "lavender", Name: "Lavender"},
		{Key: "sandalwood", Name: "Sandalwood"},
	}
}

func TestEligibleScents(t *testing.T) {
	scents := []model.GlobalScent{
		{Key: "lavender", Name: "Lavender"},
		{Key: "bonfire-embers", Name: "Bonfire Embers", Limited: true, EnabledProducts: []model.ScentProduct{
			{ProductSlug: "campfire-classic"},
		}},
		{Key: "leather", Name: "Leather"},
	}

	t.Run("Limited scent only for enabled products", func(t *testing.T) {
		eligible := EligibleScents("campfire-classic", scents)
		require.Len(t, eligible, 3)
		assert.Equal(t, "lavender", eligible[0].Key)
		assert.Equal(t, "bonfire-embers", eligible[1].Key)
	})

	t.Run("Other products skip the limited scent", func(t *testing.T) {
		eligible := EligibleScents("boot-leather", scents)
		require.Len(t, eligible, 2)
		assert.Equal(t, "lavender", eligible[0].Key)
		assert.Equal(t, "leather", eligible[1].Key)
	})

	t.Run("Unknown slug yields the always-eligible subset", func(t *testing.T) {
		eligible := EligibleScents("does-not-exist", scents)
		assert.Len(t, eligible, 2)
	})
}

func TestGenerateVariants_WithSizes(t *testing.T) {
	product := variantTestProduct()
	scents := variantTestScents()

	variants := GenerateVariants(product, scents)

	// 2 sizes x 2 wicks x 3 scents
	require.Len(t, variants, 12)

	seen := make(map[string]bool)
	for _, v := range variants {
		assert.False(t, seen[v.ID], "duplicate variant id %s", v.ID)
		seen[v.ID] = true
	}

	// Nesting order is size, then wick, then scent.
	assert.Equal(t, "8oz-wood-30mm-leather", variants[0].ID)
	assert.Equal(t, 7, variants[0].Stock)
	assert.Equal(t, "8oz-wood-30mm-lavender", variants[1].ID)
	assert.Equal(t, 0, variants[1].Stock)
	assert.Equal(t, "12oz-cdn12-sandalwood", variants[11].ID)
}

func TestGenerateVariants_WithoutSizes(t *testing.T) {
	product := variantTestProduct()
	product.Sizes = nil
	product.VariantStocks = []model.VariantStock{
		{VariantID: "cdn12-lavender", Quantity: 3},
	}

	variants := GenerateVariants(product, variantTestScents())

	// 2 wicks x 3 scents, two-segment ids
	require.Len(t, variants, 6)
	assert.Equal(t, "wood-30mm-leather", variants[0].ID)
	assert.Empty(t, variants[0].SizeID)

	for _, v := range variants {
		if v.ID == "cdn12-lavender" {
			assert.Equal(t, 3, v.Stock)
		}
	}
}

func TestGenerateVariants_DoesNotMutateProduct(t *testing.T) {
	product := variantTestProduct()

	GenerateVariants(product, variantTestScents())

	assert.Len(t, product.VariantStocks, 1)
	assert.Equal(t, 7, product.VariantStocks[0].Quantity)
}

func TestGenerateVariants_NoWickAxisMeansNoVariants(t *testing.T) {
	product := &model.Product{Slug: "plain", StockQuantity: 4}
	assert.Nil(t, GenerateVariants(product, variantTestScents()))
}

func TestVariantID(t *testing.T) {
	assert.Equal(t, "8oz-cdn12-leather", VariantID("8oz", "cdn12", "leather"))
	assert.Equal(t, "cdn12-leather", VariantID("", "cdn12", "leather"))
}
