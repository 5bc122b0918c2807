package repository

import (
	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	ExistsBySlug(slug string) (bool, error)
	Update(product *model.Product) error
	DeleteBySlug(slug string) error
	ListCodes() ([]string, error)
	SaveVariantStock(productID uint, variantID string, quantity int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_sizes.position ASC, product_sizes.id ASC")
		}).
		Preload("Wicks", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_wicks.position ASC, product_wicks.id ASC")
		}).
		Preload("VariantStocks")
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"slug": product.Slug,
		"name": product.Name,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"slug": product.Slug,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	var products []model.Product
	if err := r.baseQuery().Order("products.created_at ASC").Find(&products).Error; err != nil {
		logger.Error("Failed to list products from database", err, nil)
		return nil, err
	}

	logger.Debug("Products listed from database", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().Where("products.slug = ?", slug).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ExistsBySlug(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		logger.Error("Failed to check product existence", err, map[string]interface{}{
			"slug": slug,
		})
		return false, err
	}
	return count > 0, nil
}

// Update saves the full record, replacing the configured axes so that a
// staged draft's size/wick lists fully win over the stored ones.
func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Sizes", "Wicks", "VariantStocks").Save(product).Error; err != nil {
			return err
		}
		if err := tx.Model(product).Association("Sizes").Unscoped().Replace(product.Sizes); err != nil {
			return err
		}
		if err := tx.Model(product).Association("Wicks").Unscoped().Replace(product.Wicks); err != nil {
			return err
		}
		return tx.Model(product).Association("VariantStocks").Unscoped().Replace(product.VariantStocks)
	})
	if err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
			"slug":       product.Slug,
		})
	}
	return err
}

func (r *productRepository) DeleteBySlug(slug string) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"slug": slug,
	})

	result := r.db.Where("slug = ?", slug).Delete(&model.Product{})
	if result.Error != nil {
		logger.Error("Failed to delete product from database", result.Error, map[string]interface{}{
			"slug": slug,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListCodes returns every product code on record, for the code allocator.
func (r *productRepository) ListCodes() ([]string, error) {
	var codes []string
	if err := r.db.Model(&model.Product{}).
		Where("code IS NOT NULL AND code <> ''").
		Pluck("code", &codes).Error; err != nil {
		logger.Error("Failed to list product codes", err, nil)
		return nil, err
	}
	return codes, nil
}

func (r *productRepository) SaveVariantStock(productID uint, variantID string, quantity int) error {
	logger.Debug("Saving variant stock in database", map[string]interface{}{
		"product_id": productID,
		"variant_id": variantID,
		"quantity":   quantity,
	})

	stock := model.VariantStock{ProductID: productID, VariantID: variantID}
	err := r.db.Where(&stock).
		Assign(map[string]interface{}{"quantity": quantity}).
		FirstOrCreate(&stock).Error
	if err != nil {
		logger.Error("Failed to save variant stock", err, map[string]interface{}{
			"product_id": productID,
			"variant_id": variantID,
		})
	}
	return err
}
