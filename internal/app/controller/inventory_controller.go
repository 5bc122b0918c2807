package controller

import (
	"net/http"

	"github.com/dcwlabs/candleworks-backend/internal/app/service"
	apperrors "github.com/dcwlabs/candleworks-backend/internal/errors"
	"github.com/dcwlabs/candleworks-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	valuationService service.ValuationService
}

func NewInventoryController(valuationService service.ValuationService) *InventoryController {
	return &InventoryController{valuationService: valuationService}
}

// GET /api/v1/inventory/summary
//
// Serves the cached nightly snapshot when present; ?refresh=true forces a
// recompute.
func (ctrl *InventoryController) GetSummary(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var (
		summary *service.ValuationSummary
		err     error
	)
	if c.Query("refresh") == "true" {
		summary, err = ctrl.valuationService.Snapshot(c.Request.Context())
	} else {
		summary, err = ctrl.valuationService.Summary(c.Request.Context())
	}
	if err != nil {
		log.Error("Failed to compute inventory summary", err, nil)
		apperrors.InternalError(c, "Failed to compute inventory summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
