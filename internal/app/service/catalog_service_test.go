package service

import (
	"testing"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogServiceTest(t *testing.T) (CatalogService, repository.ScentRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	productRepo := repository.NewProductRepository(testDB)
	scentRepo := repository.NewScentRepository(testDB)
	return NewCatalogService(productRepo, scentRepo), scentRepo
}

func TestValidSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"boot-leather", true},
		{"candle2", true},
		{"a", true},
		{"8oz-tumbler", true},
		{"", false},
		{"Boot-Leather", false},
		{"boot--leather", false},
		{"-boot", false},
		{"boot-", false},
		{"boot leather", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidSlug(tt.slug), "slug %q", tt.slug)
	}
}

func TestCatalogService_CreateProductAllocatesCode(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	first := &model.Product{Slug: "boot-leather", Name: "Boot Leather", Price: 24.0}
	require.NoError(t, catalogService.CreateProduct(first))
	assert.Equal(t, "DCW-0001", first.Code)

	second := &model.Product{Slug: "mesa-sunset", Name: "Mesa Sunset", Price: 22.0}
	require.NoError(t, catalogService.CreateProduct(second))
	assert.Equal(t, "DCW-0002", second.Code)

	// An explicit code is kept and becomes the new high-water mark
	third := &model.Product{Slug: "night-air", Name: "Night Air", Price: 20.0, Code: "DCW-0041"}
	require.NoError(t, catalogService.CreateProduct(third))

	next, err := catalogService.NextCode()
	require.NoError(t, err)
	assert.Equal(t, "DCW-0042", next)
}

func TestCatalogService_CreateProductValidation(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	require.NoError(t, catalogService.CreateProduct(
		&model.Product{Slug: "boot-leather", Name: "Boot Leather", Price: 24.0}))

	tests := []struct {
		name    string
		product model.Product
		wantErr error
	}{
		{
			name:    "Duplicate slug",
			product: model.Product{Slug: "boot-leather", Name: "Dup", Price: 10.0},
			wantErr: ErrProductSlugExists,
		},
		{
			name:    "Invalid slug",
			product: model.Product{Slug: "Boot Leather", Name: "Bad", Price: 10.0},
			wantErr: ErrInvalidSlug,
		},
		{
			name:    "Non-positive price",
			product: model.Product{Slug: "free-candle", Name: "Free", Price: 0},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.product
			assert.ErrorIs(t, catalogService.CreateProduct(&p), tt.wantErr)
		})
	}
}

func variantProduct() *model.Product {
	return &model.Product{
		Slug:  "boot-leather",
		Name:  "Boot Leather",
		Price: 24.0,
		Sizes: []model.ProductSize{
			{SizeID: "8oz", Name: "8 oz", Ounces: 8, Price: 24.0, Position: 0},
			{SizeID: "10oz", Name: "10 oz", Ounces: 10, Price: 28.0, Position: 1},
		},
		Wicks: []model.ProductWick{
			{WickID: "wood-30mm", Name: "Wood 30mm", Position: 0},
		},
	}
}

func TestCatalogService_ProductVariants(t *testing.T) {
	catalogService, scentRepo := setupCatalogServiceTest(t)

	require.NoError(t, catalogService.CreateProduct(variantProduct()))

	// One scent for everyone, one limited to a different product
	require.NoError(t, scentRepo.Create(&model.GlobalScent{Key: "leather", Name: "Leather"}))
	require.NoError(t, scentRepo.Create(&model.GlobalScent{
		Key:     "lavender",
		Name:    "Lavender",
		Limited: true,
		EnabledProducts: []model.ScentProduct{
			{ProductSlug: "mesa-sunset"},
		},
	}))

	variants, err := catalogService.ProductVariants("boot-leather")
	require.NoError(t, err)
	// 2 sizes x 1 wick x 1 eligible scent
	require.Len(t, variants, 2)
	assert.Equal(t, "8oz-wood-30mm-leather", variants[0].ID)
	assert.Equal(t, "10oz-wood-30mm-leather", variants[1].ID)

	_, err = catalogService.ProductVariants("no-such-product")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_ProductVariantsWithoutConfig(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	require.NoError(t, catalogService.CreateProduct(
		&model.Product{Slug: "simple-candle", Name: "Simple", Price: 15.0, StockQuantity: 7}))

	_, err := catalogService.ProductVariants("simple-candle")
	assert.ErrorIs(t, err, ErrNoVariantConfig)

	// Without variant axes the scalar stock is the total
	total, err := catalogService.TotalStock("simple-candle")
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestCatalogService_SetVariantStock(t *testing.T) {
	catalogService, scentRepo := setupCatalogServiceTest(t)

	require.NoError(t, catalogService.CreateProduct(variantProduct()))
	require.NoError(t, scentRepo.Create(&model.GlobalScent{Key: "leather", Name: "Leather"}))

	product, err := catalogService.SetVariantStock("boot-leather", "8oz-wood-30mm-leather", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, product.StockMap()["8oz-wood-30mm-leather"])

	// Variant stock overrides the scalar quantity in the total
	total, err := catalogService.TotalStock("boot-leather")
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	// Negative quantities clamp to zero
	product, err = catalogService.SetVariantStock("boot-leather", "8oz-wood-30mm-leather", -3)
	require.NoError(t, err)
	assert.Equal(t, 0, product.StockMap()["8oz-wood-30mm-leather"])

	// Unreachable combinations are rejected
	_, err = catalogService.SetVariantStock("boot-leather", "8oz-wood-30mm-lavender", 2)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestCatalogService_UpdateAndDelete(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	product := &model.Product{Slug: "boot-leather", Name: "Boot Leather", Price: 24.0}
	require.NoError(t, catalogService.CreateProduct(product))

	update := &model.Product{Slug: "boot-leather", Name: "Boot Leather v2", Price: 26.0}
	require.NoError(t, catalogService.UpdateProduct(update))
	assert.Equal(t, product.Code, update.Code)

	got, err := catalogService.GetProduct("boot-leather")
	require.NoError(t, err)
	assert.Equal(t, "Boot Leather v2", got.Name)
	assert.Equal(t, 26.0, got.Price)

	assert.ErrorIs(t, catalogService.UpdateProduct(
		&model.Product{Slug: "missing", Name: "X", Price: 1.0}), ErrProductNotFound)

	require.NoError(t, catalogService.DeleteProduct("boot-leather"))
	assert.ErrorIs(t, catalogService.DeleteProduct("boot-leather"), ErrProductNotFound)
	_, err = catalogService.GetProduct("boot-leather")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
