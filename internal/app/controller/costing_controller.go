package controller

import (
	"errors"
	"net/http"

	"github.com/dcwlabs/candleworks-backend/internal/app/service"
	apperrors "github.com/dcwlabs/candleworks-backend/internal/errors"
	"github.com/dcwlabs/candleworks-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CostingController struct {
	costingService service.CostingService
}

func NewCostingController(costingService service.CostingService) *CostingController {
	return &CostingController{costingService: costingService}
}

type CostPreviewRequest struct {
	ContainerKey string         `json:"container_key"`
	WaterOz      float64        `json:"water_oz" binding:"gte=0"`
	ScentKey     string         `json:"scent_key"`
	WickCounts   map[string]int `json:"wick_counts"`
	TargetPrice  float64        `json:"target_price" binding:"gte=0"`
}

// POST /api/v1/costing/preview
func (ctrl *CostingController) Preview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CostPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	result, err := ctrl.costingService.Preview(service.CostRequest{
		ContainerKey: req.ContainerKey,
		WaterOz:      req.WaterOz,
		ScentKey:     req.ScentKey,
		WickCounts:   req.WickCounts,
		TargetPrice:  req.TargetPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWaterOz):
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
		case errors.Is(err, service.ErrContainerNotFound):
			apperrors.NotFound(c, apperrors.ContainerNotFound, "Container not found")
		case errors.Is(err, service.ErrScentNotFound):
			apperrors.NotFound(c, apperrors.ScentNotFound, "Scent not found")
		case errors.Is(err, service.ErrMaterialNotFound):
			apperrors.NotFound(c, apperrors.MaterialNotFound, err.Error())
		default:
			log.Error("Cost preview failed", err, map[string]interface{}{
				"container_key": req.ContainerKey,
				"scent_key":     req.ScentKey,
			})
			apperrors.InternalError(c, "Failed to compute cost preview")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
