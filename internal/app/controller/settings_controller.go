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

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

type SettingsRequest struct {
	WaxCostPerOz    float64 `json:"wax_cost_per_oz" binding:"required,gt=0"`
	WaterToWaxRatio float64 `json:"water_to_wax_ratio" binding:"required,gt=0"`
	FragranceLoad   float64 `json:"fragrance_load" binding:"required,gt=0"`
}

// GET /api/v1/settings
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	settings, err := ctrl.settingsService.Get()
	if err != nil {
		log.Error("Failed to load calculator settings", err, nil)
		apperrors.InternalError(c, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// PUT /api/v1/settings
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	settings := model.CalculatorSettings{
		WaxCostPerOz:    req.WaxCostPerOz,
		WaterToWaxRatio: req.WaterToWaxRatio,
		FragranceLoad:   req.FragranceLoad,
	}
	if err := ctrl.settingsService.Save(&settings); err != nil {
		if errors.Is(err, service.ErrInvalidSettings) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
			return
		}
		log.Error("Failed to save calculator settings", err, nil)
		apperrors.InternalError(c, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
