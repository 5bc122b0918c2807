package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/dcwlabs/candleworks-backend/internal/app/engine"
	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/service"
	apperrors "github.com/dcwlabs/candleworks-backend/internal/errors"
	"github.com/dcwlabs/candleworks-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalogService service.CatalogService
	draftService   service.DraftService
}

func NewProductController(catalogService service.CatalogService, draftService service.DraftService) *ProductController {
	return &ProductController{
		catalogService: catalogService,
		draftService:   draftService,
	}
}

type SizeRequest struct {
	SizeID string  `json:"size_id" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Ounces float64 `json:"ounces" binding:"gte=0"`
	Price  float64 `json:"price" binding:"gte=0"`
}

type WickRequest struct {
	WickID string `json:"wick_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type ProductRequest struct {
	Slug           string         `json:"slug" binding:"required"`
	Name           string         `json:"name" binding:"required"`
	Description    string         `json:"description"`
	Code           string         `json:"code"`
	Price          float64        `json:"price" binding:"required,gt=0"`
	TargetPrice    float64        `json:"target_price" binding:"gte=0"`
	StockQuantity  int            `json:"stock_quantity" binding:"gte=0"`
	MaterialCost   float64        `json:"material_cost" binding:"gte=0"`
	ContainerKey   string         `json:"container_key"`
	BatchNumber    string         `json:"batch_number"`
	ProductionDate *time.Time     `json:"production_date"`
	Notes          string         `json:"notes"`
	Sizes          []SizeRequest  `json:"sizes" binding:"dive"`
	Wicks          []WickRequest  `json:"wicks" binding:"dive"`
	VariantStocks  map[string]int `json:"variant_stocks"`
}

// ToModel converts the request into a full product record. Variant stock
// values must already be checked non-negative.
func (req *ProductRequest) ToModel() model.Product {
	product := model.Product{
		Slug:           req.Slug,
		Name:           req.Name,
		Description:    req.Description,
		Code:           req.Code,
		Price:          req.Price,
		TargetPrice:    req.TargetPrice,
		StockQuantity:  req.StockQuantity,
		MaterialCost:   req.MaterialCost,
		ContainerKey:   req.ContainerKey,
		BatchNumber:    req.BatchNumber,
		ProductionDate: req.ProductionDate,
		Notes:          req.Notes,
	}
	for i, size := range req.Sizes {
		product.Sizes = append(product.Sizes, model.ProductSize{
			SizeID:   size.SizeID,
			Name:     size.Name,
			Ounces:   size.Ounces,
			Price:    size.Price,
			Position: i,
		})
	}
	for i, wick := range req.Wicks {
		product.Wicks = append(product.Wicks, model.ProductWick{
			WickID:   wick.WickID,
			Name:     wick.Name,
			Position: i,
		})
	}
	for variantID, quantity := range req.VariantStocks {
		product.VariantStocks = append(product.VariantStocks, model.VariantStock{
			VariantID: variantID,
			Quantity:  quantity,
		})
	}
	return product
}

func (req *ProductRequest) validateStocks() map[string]string {
	fields := map[string]string{}
	for variantID, quantity := range req.VariantStocks {
		if quantity < 0 {
			fields["variant_stocks."+variantID] = "stock must not be negative"
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ListProducts returns the merged view: authoritative records overlaid with
// staged drafts.
// GET /api/v1/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.draftService.MergedView()
	if err != nil {
		log.Error("Failed to build merged product view", err, nil)
		apperrors.InternalError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one product; a staged draft wins over the stored copy.
// GET /api/v1/products/:slug
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	if draft, ok := ctrl.draftService.Get(slug); ok {
		c.JSON(http.StatusOK, gin.H{"product": draft, "staged": true})
		return
	}

	product, err := ctrl.catalogService.GetProduct(slug)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "staged": false})
}

// CreateProduct writes a product straight to the record store, bypassing
// the draft overlay.
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}
	if fields := req.validateStocks(); fields != nil {
		apperrors.RespondWithValidationError(c, fields)
		return
	}

	product := req.ToModel()
	if err := ctrl.catalogService.CreateProduct(&product); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSlug):
			apperrors.BadRequest(c, apperrors.ValidationInvalidSlug, err.Error())
		case errors.Is(err, service.ErrInvalidPrice):
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
		case errors.Is(err, service.ErrProductSlugExists):
			apperrors.Conflict(c, apperrors.ProductSlugExists, "A product with that slug already exists")
		default:
			log.Error("Failed to create product", err, map[string]interface{}{
				"slug": req.Slug,
			})
			info := apperrors.ParseError(err, "product")
			apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct writes a full record straight to the record store.
// PUT /api/v1/products/:slug
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}
	if req.Slug != slug {
		apperrors.BadRequest(c, apperrors.ValidationInvalidSlug, "Slug in body must match the URL")
		return
	}
	if fields := req.validateStocks(); fields != nil {
		apperrors.RespondWithValidationError(c, fields)
		return
	}

	product := req.ToModel()
	if err := ctrl.catalogService.UpdateProduct(&product); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		case errors.Is(err, service.ErrInvalidSlug):
			apperrors.BadRequest(c, apperrors.ValidationInvalidSlug, err.Error())
		case errors.Is(err, service.ErrInvalidPrice):
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
		default:
			log.Error("Failed to update product", err, map[string]interface{}{
				"slug": slug,
			})
			info := apperrors.ParseError(err, "product")
			apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes the product from the record store and drops any
// staged draft for the slug.
// DELETE /api/v1/products/:slug
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	if err := ctrl.catalogService.DeleteProduct(slug); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "Failed to delete product")
		return
	}

	ctrl.draftService.Discard(slug)
	c.JSON(http.StatusOK, gin.H{"deleted": slug})
}

// GetVariants returns the generated variant combinations with their stock.
// GET /api/v1/products/:slug/variants
func (ctrl *ProductController) GetVariants(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	variants, err := ctrl.catalogService.ProductVariants(slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		case errors.Is(err, service.ErrNoVariantConfig):
			apperrors.BadRequest(c, apperrors.ProductNoVariants, "Product has no variant configuration")
		default:
			log.Error("Failed to generate variants", err, map[string]interface{}{
				"slug": slug,
			})
			apperrors.InternalError(c, "Failed to generate variants")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"variants": variants,
		"count":    len(variants),
	})
}

type VariantStockRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}

// SetVariantStock updates one variant's stock count.
// PUT /api/v1/products/:slug/variants/:variantID/stock
func (ctrl *ProductController) SetVariantStock(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")
	variantID := c.Param("variantID")

	var req VariantStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ProductInvalidStock, "Quantity must be zero or more")
		return
	}

	product, err := ctrl.catalogService.SetVariantStock(slug, variantID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		case errors.Is(err, service.ErrNoVariantConfig):
			apperrors.BadRequest(c, apperrors.ProductNoVariants, "Product has no variant configuration")
		case errors.Is(err, service.ErrUnknownVariant):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Unknown variant id for this product")
		default:
			log.Error("Failed to set variant stock", err, map[string]interface{}{
				"slug":       slug,
				"variant_id": variantID,
			})
			apperrors.InternalError(c, "Failed to set variant stock")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":     product,
		"total_stock": engine.TotalStock(product),
	})
}

// NextCode returns the next unused product code.
// GET /api/v1/products/next-code
func (ctrl *ProductController) NextCode(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	code, err := ctrl.catalogService.NextCode()
	if err != nil {
		log.Error("Failed to allocate next product code", err, nil)
		apperrors.InternalError(c, "Failed to allocate next product code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": code})
}
