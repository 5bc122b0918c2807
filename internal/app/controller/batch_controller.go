package controller

import (
	"errors"
	"net/http"

	"github.com/dcwlabs/candleworks-backend/internal/app/engine"
	"github.com/dcwlabs/candleworks-backend/internal/app/service"
	apperrors "github.com/dcwlabs/candleworks-backend/internal/errors"
	"github.com/dcwlabs/candleworks-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// BatchController exposes the single in-progress pour batch. A batch holds
// one scent at a time; adding a different scent returns a conflict unless
// the caller asks to replace the batch.
type BatchController struct {
	batchService service.BatchService
}

func NewBatchController(batchService service.BatchService) *BatchController {
	return &BatchController{batchService: batchService}
}

type BatchItemRequest struct {
	ContainerKey string         `json:"container_key"`
	WaterOz      float64        `json:"water_oz" binding:"gte=0"`
	ScentKey     string         `json:"scent_key" binding:"required"`
	WickCounts   map[string]int `json:"wick_counts"`
	Quantity     int            `json:"quantity" binding:"required,gt=0"`
}

// GET /api/v1/batch
func (ctrl *BatchController) GetBatch(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.batchService.Summary())
}

// POST /api/v1/batch/items?replace=true
func (ctrl *BatchController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}
	replace := c.Query("replace") == "true"

	item, err := ctrl.batchService.AddItem(service.CostRequest{
		ContainerKey: req.ContainerKey,
		WaterOz:      req.WaterOz,
		ScentKey:     req.ScentKey,
		WickCounts:   req.WickCounts,
	}, req.Quantity, replace)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrScentMismatch):
			apperrors.Conflict(c, apperrors.BatchScentMismatch,
				"Batch already holds a different scent; retry with replace=true to start over")
		case errors.Is(err, service.ErrInvalidQuantity):
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
		case errors.Is(err, service.ErrInvalidWaterOz):
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
		case errors.Is(err, service.ErrContainerNotFound):
			apperrors.NotFound(c, apperrors.ContainerNotFound, "Container not found")
		case errors.Is(err, service.ErrScentNotFound):
			apperrors.NotFound(c, apperrors.ScentNotFound, "Scent not found")
		case errors.Is(err, service.ErrMaterialNotFound):
			apperrors.NotFound(c, apperrors.MaterialNotFound, err.Error())
		default:
			log.Error("Failed to add batch item", err, map[string]interface{}{
				"scent_key": req.ScentKey,
			})
			apperrors.InternalError(c, "Failed to add batch item")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item, "batch": ctrl.batchService.Summary()})
}

// DELETE /api/v1/batch/items/:id
func (ctrl *BatchController) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	if err := ctrl.batchService.RemoveItem(id); err != nil {
		if errors.Is(err, service.ErrBatchItemNotFound) {
			apperrors.NotFound(c, apperrors.BatchItemNotFound, "Batch item not found")
			return
		}
		apperrors.InternalError(c, "Failed to remove batch item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": id, "batch": ctrl.batchService.Summary()})
}

// DELETE /api/v1/batch?confirm=true
func (ctrl *BatchController) ClearBatch(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := ctrl.batchService.Clear(confirmed); err != nil {
		if errors.Is(err, service.ErrClearNeedsConfirm) {
			apperrors.Conflict(c, apperrors.BatchNotEmpty,
				"Batch still has items; retry with confirm=true to clear it")
			return
		}
		apperrors.InternalError(c, "Failed to clear batch")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
