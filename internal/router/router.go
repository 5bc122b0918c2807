package router

import (
	"github.com/dcwlabs/candleworks-backend/config"
	"github.com/dcwlabs/candleworks-backend/internal/app/controller"
	"github.com/dcwlabs/candleworks-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	productController   *controller.ProductController
	materialController  *controller.MaterialController
	settingsController  *controller.SettingsController
	costingController   *controller.CostingController
	batchController     *controller.BatchController
	draftController     *controller.DraftController
	inventoryController *controller.InventoryController
	config              *config.Config
}

func NewRouter(
	productController *controller.ProductController,
	materialController *controller.MaterialController,
	settingsController *controller.SettingsController,
	costingController *controller.CostingController,
	batchController *controller.BatchController,
	draftController *controller.DraftController,
	inventoryController *controller.InventoryController,
	cfg *config.Config,
) *Router {
	return &Router{
		productController:   productController,
		materialController:  materialController,
		settingsController:  settingsController,
		costingController:   costingController,
		batchController:     batchController,
		draftController:     draftController,
		inventoryController: inventoryController,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Candleworks API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", r.productController.ListProducts)
			// Registered before /:slug so "next-code" is not taken as a slug.
			products.GET("/next-code", r.productController.NextCode)
			products.GET("/:slug", r.productController.GetProduct)
			products.POST("", r.productController.CreateProduct)
			products.PUT("/:slug", r.productController.UpdateProduct)
			products.DELETE("/:slug", r.productController.DeleteProduct)

			products.GET("/:slug/variants", r.productController.GetVariants)
			products.PUT("/:slug/variants/:variantID/stock", r.productController.SetVariantStock)
		}

		scents := v1.Group("/scents")
		{
			scents.GET("", r.materialController.ListScents)
			scents.POST("", r.materialController.CreateScent)
			scents.PUT("/:key", r.materialController.UpdateScent)
			scents.DELETE("/:key", r.materialController.DeleteScent)
		}

		baseOils := v1.Group("/base-oils")
		{
			baseOils.GET("", r.materialController.ListBaseOils)
			baseOils.POST("", r.materialController.CreateBaseOil)
			baseOils.PUT("/:key", r.materialController.UpdateBaseOil)
			baseOils.DELETE("/:key", r.materialController.DeleteBaseOil)
		}

		wicks := v1.Group("/wicks")
		{
			wicks.GET("", r.materialController.ListWickTypes)
			wicks.POST("", r.materialController.CreateWickType)
			wicks.PUT("/:key", r.materialController.UpdateWickType)
			wicks.DELETE("/:key", r.materialController.DeleteWickType)
		}

		containers := v1.Group("/containers")
		{
			containers.GET("", r.materialController.ListContainers)
			containers.POST("", r.materialController.CreateContainer)
			containers.PUT("/:key", r.materialController.UpdateContainer)
			containers.DELETE("/:key", r.materialController.DeleteContainer)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", r.settingsController.GetSettings)
			settings.PUT("", r.settingsController.UpdateSettings)
		}

		costing := v1.Group("/costing")
		{
			costing.POST("/preview", r.costingController.Preview)
		}

		batch := v1.Group("/batch")
		{
			batch.GET("", r.batchController.GetBatch)
			batch.DELETE("", r.batchController.ClearBatch)
			batch.POST("/items", r.batchController.AddItem)
			batch.DELETE("/items/:id", r.batchController.RemoveItem)
		}

		drafts := v1.Group("/drafts")
		{
			drafts.GET("", r.draftController.ListDrafts)
			drafts.POST("/publish", r.draftController.PublishAll)
			drafts.PUT("/:slug", r.draftController.StageDraft)
			drafts.DELETE("/:slug", r.draftController.DiscardDraft)
			drafts.POST("/:slug/publish", r.draftController.PublishDraft)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("/summary", r.inventoryController.GetSummary)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
