package controller

import (
	"errors"
	"net/http"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/service"
	apperrors "github.com/dcwlabs/candleworks-backend/internal/errors"
	"github.com/dcwlabs/candleworks-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// MaterialController serves the raw-material catalogs: scents, base oils,
// wick types and containers.
type MaterialController struct {
	materialService service.MaterialService
}

func NewMaterialController(materialService service.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

type ScentComponentRequest struct {
	BaseOilKey string  `json:"base_oil_key" binding:"required"`
	Percentage float64 `json:"percentage" binding:"required,gt=0"`
}

type ScentRequest struct {
	Key             string                  `json:"key" binding:"required"`
	Name            string                  `json:"name" binding:"required"`
	Limited         bool                    `json:"limited"`
	EnabledProducts []string                `json:"enabled_products"`
	CostPerOz       *float64                `json:"cost_per_oz"`
	Components      []ScentComponentRequest `json:"components" binding:"dive"`
	// Optional bottle purchase: when both are set the cost per ounce is
	// derived from them instead of CostPerOz.
	BottleOz   float64 `json:"bottle_oz" binding:"gte=0"`
	BottleCost float64 `json:"bottle_cost" binding:"gte=0"`
}

func (req *ScentRequest) ToModel() model.GlobalScent {
	scent := model.GlobalScent{
		Key:       req.Key,
		Name:      req.Name,
		Limited:   req.Limited,
		CostPerOz: req.CostPerOz,
	}
	for _, slug := range req.EnabledProducts {
		scent.EnabledProducts = append(scent.EnabledProducts, model.ScentProduct{ProductSlug: slug})
	}
	for i, comp := range req.Components {
		scent.Components = append(scent.Components, model.ScentComponent{
			BaseOilKey: comp.BaseOilKey,
			Percentage: comp.Percentage,
			Position:   i,
		})
	}
	return scent
}

// GET /api/v1/scents
func (ctrl *MaterialController) ListScents(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	scents, err := ctrl.materialService.ListScents()
	if err != nil {
		log.Error("Failed to list scents", err, nil)
		apperrors.InternalError(c, "Failed to fetch scents")
		return
	}
	c.JSON(http.StatusOK, gin.H{"scents": scents, "count": len(scents)})
}

// POST /api/v1/scents
func (ctrl *MaterialController) CreateScent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ScentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	scent := req.ToModel()
	var err error
	if req.BottleOz > 0 || req.BottleCost > 0 {
		err = ctrl.materialService.CreateScentFromBottle(&scent, req.BottleOz, req.BottleCost)
	} else {
		err = ctrl.materialService.CreateScent(&scent)
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidBottle) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
			return
		}
		log.Error("Failed to create scent", err, map[string]interface{}{
			"key": req.Key,
		})
		info := apperrors.ParseError(err, "scent")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"scent": scent})
}

// PUT /api/v1/scents/:key
func (ctrl *MaterialController) UpdateScent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	key := c.Param("key")

	var req ScentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	scent := req.ToModel()
	scent.Key = key
	if err := ctrl.materialService.UpdateScent(&scent); err != nil {
		if errors.Is(err, service.ErrScentNotFound) {
			apperrors.NotFound(c, apperrors.ScentNotFound, "Scent not found")
			return
		}
		log.Error("Failed to update scent", err, map[string]interface{}{
			"key": key,
		})
		apperrors.InternalError(c, "Failed to update scent")
		return
	}

	c.JSON(http.StatusOK, gin.H{"scent": scent})
}

// DELETE /api/v1/scents/:key
func (ctrl *MaterialController) DeleteScent(c *gin.Context) {
	key := c.Param("key")
	if err := ctrl.materialService.DeleteScent(key); err != nil {
		if errors.Is(err, service.ErrScentNotFound) {
			apperrors.NotFound(c, apperrors.ScentNotFound, "Scent not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete scent")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": key})
}

type BaseOilRequest struct {
	Key       string  `json:"key" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	CostPerOz float64 `json:"cost_per_oz" binding:"required,gt=0"`
}

// GET /api/v1/base-oils
func (ctrl *MaterialController) ListBaseOils(c *gin.Context) {
	oils, err := ctrl.materialService.ListBaseOils()
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch base oils")
		return
	}
	c.JSON(http.StatusOK, gin.H{"base_oils": oils, "count": len(oils)})
}

// POST /api/v1/base-oils
func (ctrl *MaterialController) CreateBaseOil(c *gin.Context) {
	var req BaseOilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	oil := model.BaseOil{Key: req.Key, Name: req.Name, CostPerOz: req.CostPerOz}
	if err := ctrl.materialService.CreateBaseOil(&oil); err != nil {
		info := apperrors.ParseError(err, "base oil")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"base_oil": oil})
}

// PUT /api/v1/base-oils/:key
func (ctrl *MaterialController) UpdateBaseOil(c *gin.Context) {
	var req BaseOilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	oil := model.BaseOil{Key: c.Param("key"), Name: req.Name, CostPerOz: req.CostPerOz}
	if err := ctrl.materialService.UpdateBaseOil(&oil); err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			apperrors.NotFound(c, apperrors.MaterialNotFound, "Base oil not found")
			return
		}
		apperrors.InternalError(c, "Failed to update base oil")
		return
	}
	c.JSON(http.StatusOK, gin.H{"base_oil": oil})
}

// DELETE /api/v1/base-oils/:key
func (ctrl *MaterialController) DeleteBaseOil(c *gin.Context) {
	key := c.Param("key")
	if err := ctrl.materialService.DeleteBaseOil(key); err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			apperrors.NotFound(c, apperrors.MaterialNotFound, "Base oil not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete base oil")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": key})
}

type WickTypeRequest struct {
	Key         string  `json:"key" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	CostPerWick float64 `json:"cost_per_wick" binding:"required,gt=0"`
}

// GET /api/v1/wicks
func (ctrl *MaterialController) ListWickTypes(c *gin.Context) {
	wicks, err := ctrl.materialService.ListWickTypes()
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch wick types")
		return
	}
	c.JSON(http.StatusOK, gin.H{"wick_types": wicks, "count": len(wicks)})
}

// POST /api/v1/wicks
func (ctrl *MaterialController) CreateWickType(c *gin.Context) {
	var req WickTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	wick := model.WickType{Key: req.Key, Name: req.Name, CostPerWick: req.CostPerWick}
	if err := ctrl.materialService.CreateWickType(&wick); err != nil {
		info := apperrors.ParseError(err, "wick type")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"wick_type": wick})
}

// PUT /api/v1/wicks/:key
func (ctrl *MaterialController) UpdateWickType(c *gin.Context) {
	var req WickTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	wick := model.WickType{Key: c.Param("key"), Name: req.Name, CostPerWick: req.CostPerWick}
	if err := ctrl.materialService.UpdateWickType(&wick); err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			apperrors.NotFound(c, apperrors.MaterialNotFound, "Wick type not found")
			return
		}
		apperrors.InternalError(c, "Failed to update wick type")
		return
	}
	c.JSON(http.StatusOK, gin.H{"wick_type": wick})
}

// DELETE /api/v1/wicks/:key
func (ctrl *MaterialController) DeleteWickType(c *gin.Context) {
	key := c.Param("key")
	if err := ctrl.materialService.DeleteWickType(key); err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			apperrors.NotFound(c, apperrors.MaterialNotFound, "Wick type not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete wick type")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": key})
}

type ContainerRequest struct {
	Key             string               `json:"key" binding:"required"`
	Name            string               `json:"name" binding:"required"`
	WaterCapacityOz float64              `json:"water_capacity_oz" binding:"required,gt=0"`
	Shape           model.ContainerShape `json:"shape"`
	Supplier        string               `json:"supplier"`
	CostPerUnit     float64              `json:"cost_per_unit" binding:"gte=0"`
	Notes           string               `json:"notes"`
}

func (req *ContainerRequest) ToModel() model.Container {
	return model.Container{
		Key:             req.Key,
		Name:            req.Name,
		WaterCapacityOz: req.WaterCapacityOz,
		Shape:           req.Shape,
		Supplier:        req.Supplier,
		CostPerUnit:     req.CostPerUnit,
		Notes:           req.Notes,
	}
}

// GET /api/v1/containers
func (ctrl *MaterialController) ListContainers(c *gin.Context) {
	containers, err := ctrl.materialService.ListContainers()
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch containers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"containers": containers, "count": len(containers)})
}

// POST /api/v1/containers
func (ctrl *MaterialController) CreateContainer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	container := req.ToModel()
	if err := ctrl.materialService.CreateContainer(&container); err != nil {
		log.Error("Failed to create container", err, map[string]interface{}{
			"key": req.Key,
		})
		info := apperrors.ParseError(err, "container")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"container": container})
}

// PUT /api/v1/containers/:key
func (ctrl *MaterialController) UpdateContainer(c *gin.Context) {
	var req ContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	container := req.ToModel()
	container.Key = c.Param("key")
	if err := ctrl.materialService.UpdateContainer(&container); err != nil {
		if errors.Is(err, service.ErrContainerNotFound) {
			apperrors.NotFound(c, apperrors.ContainerNotFound, "Container not found")
			return
		}
		apperrors.InternalError(c, "Failed to update container")
		return
	}
	c.JSON(http.StatusOK, gin.H{"container": container})
}

// DELETE /api/v1/containers/:key
func (ctrl *MaterialController) DeleteContainer(c *gin.Context) {
	key := c.Param("key")
	if err := ctrl.materialService.DeleteContainer(key); err != nil {
		if errors.Is(err, service.ErrContainerNotFound) {
			apperrors.NotFound(c, apperrors.ContainerNotFound, "Container not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete container")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": key})
}
