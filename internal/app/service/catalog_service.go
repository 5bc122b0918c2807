package service

import (
	"errors"
	"regexp"

	"github.com/dcwlabs/candleworks-backend/internal/app/engine"
	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductSlugExists = errors.New("product slug already exists")
	ErrInvalidSlug       = errors.New("slug must be lowercase letters and digits separated by single hyphens")
	ErrNoVariantConfig   = errors.New("product has no variant configuration")
	ErrUnknownVariant    = errors.New("variant is not reachable from the configured axes")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
)

// Slug token: lowercase letters/digits, single hyphens, no leading or
// trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidSlug reports whether slug is a well-formed URL-safe token.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

type CatalogService interface {
	ListProducts() ([]model.Product, error)
	GetProduct(slug string) (*model.Product, error)
	CreateProduct(product *model.Product) error
	UpdateProduct(product *model.Product) error
	DeleteProduct(slug string) error
	NextCode() (string, error)
	ProductVariants(slug string) ([]engine.Variant, error)
	SetVariantStock(slug, variantID string, quantity int) (*model.Product, error)
	TotalStock(slug string) (int, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	scentRepo   repository.ScentRepository
}

func NewCatalogService(productRepo repository.ProductRepository, scentRepo repository.ScentRepository) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		scentRepo:   scentRepo,
	}
}

func (s *catalogService) ListProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}
	return products, nil
}

func (s *catalogService) GetProduct(slug string) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	if !ValidSlug(product.Slug) {
		return ErrInvalidSlug
	}
	if product.Price <= 0 {
		return ErrInvalidPrice
	}

	exists, err := s.productRepo.ExistsBySlug(product.Slug)
	if err != nil {
		return err
	}
	if exists {
		return ErrProductSlugExists
	}

	if product.Code == "" {
		code, err := s.NextCode()
		if err != nil {
			return err
		}
		product.Code = code
	}

	logger.Info("Creating product", map[string]interface{}{
		"slug": product.Slug,
		"name": product.Name,
		"code": product.Code,
	})
	return s.productRepo.Create(product)
}

func (s *catalogService) UpdateProduct(product *model.Product) error {
	if !ValidSlug(product.Slug) {
		return ErrInvalidSlug
	}
	if product.Price <= 0 {
		return ErrInvalidPrice
	}

	existing, err := s.productRepo.FindBySlug(product.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	product.ID = existing.ID
	if product.Code == "" {
		product.Code = existing.Code
	}

	logger.Info("Updating product", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return s.productRepo.Update(product)
}

func (s *catalogService) DeleteProduct(slug string) error {
	logger.Info("Deleting product", map[string]interface{}{
		"slug": slug,
	})

	if err := s.productRepo.DeleteBySlug(slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"slug": slug,
		})
		return err
	}
	return nil
}

// NextCode allocates the next product code from the stored corpus.
func (s *catalogService) NextCode() (string, error) {
	codes, err := s.productRepo.ListCodes()
	if err != nil {
		return "", err
	}
	return engine.NextProductCode(codes), nil
}

// ProductVariants expands the product's configured axes against the
// scent-eligibility filter into the sellable combination list.
func (s *catalogService) ProductVariants(slug string) ([]engine.Variant, error) {
	product, err := s.GetProduct(slug)
	if err != nil {
		return nil, err
	}
	if !product.HasVariantConfig() {
		return nil, ErrNoVariantConfig
	}

	scents, err := s.scentRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load scent catalog for variants", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}

	eligible := engine.EligibleScents(slug, scents)
	return engine.GenerateVariants(product, eligible), nil
}

// SetVariantStock clamps quantity at zero and persists the entry, creating
// it when absent. The variant id must be reachable from the product's
// current axes and eligible scents.
func (s *catalogService) SetVariantStock(slug, variantID string, quantity int) (*model.Product, error) {
	product, err := s.GetProduct(slug)
	if err != nil {
		return nil, err
	}
	if !product.HasVariantConfig() {
		return nil, ErrNoVariantConfig
	}

	variants, err := s.ProductVariants(slug)
	if err != nil {
		return nil, err
	}
	known := false
	for _, v := range variants {
		if v.ID == variantID {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrUnknownVariant
	}

	if quantity < 0 {
		quantity = 0
	}
	if err := s.productRepo.SaveVariantStock(product.ID, variantID, quantity); err != nil {
		return nil, err
	}

	engine.SetVariantStock(product, variantID, quantity)
	logger.Info("Variant stock updated", map[string]interface{}{
		"slug":       slug,
		"variant_id": variantID,
		"quantity":   quantity,
	})
	return product, nil
}

func (s *catalogService) TotalStock(slug string) (int, error) {
	product, err := s.GetProduct(slug)
	if err != nil {
		return 0, err
	}
	return engine.TotalStock(product), nil
}
