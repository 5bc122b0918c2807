package service

import (
	"errors"
	"fmt"

	"github.com/dcwlabs/candleworks-backend/internal/app/engine"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
)

var ErrInvalidWaterOz = errors.New("water capacity must be greater than zero")

// CostRequest describes one candle configuration to price. Either
// ContainerKey (capacity and unit cost come from the container catalog) or
// WaterOz must be set; WickCounts maps wick-type keys to counts per candle.
type CostRequest struct {
	ContainerKey string
	WaterOz      float64
	ScentKey     string
	WickCounts   map[string]int
	TargetPrice  float64
}

// CostResult is the engine breakdown plus the resolved inputs and, when a
// target price was given, the per-unit profit figures.
type CostResult struct {
	Breakdown      engine.CostBreakdown `json:"breakdown"`
	ScentCostPerOz float64              `json:"scent_cost_per_oz"`
	WaterOz        float64              `json:"water_oz"`
	ContainerKey   string               `json:"container_key,omitempty"`
	TargetPrice    float64              `json:"target_price,omitempty"`
	Profit         float64              `json:"profit,omitempty"`
	MarginPercent  float64              `json:"margin_percent,omitempty"`
}

type CostingService interface {
	Preview(req CostRequest) (*CostResult, error)
}

type costingService struct {
	materialSvc  MaterialService
	settingsSvc  SettingsService
	baseOilRepo  repository.BaseOilRepository
}

func NewCostingService(materialSvc MaterialService, settingsSvc SettingsService, baseOilRepo repository.BaseOilRepository) CostingService {
	return &costingService{
		materialSvc: materialSvc,
		settingsSvc: settingsSvc,
		baseOilRepo: baseOilRepo,
	}
}

func (s *costingService) Preview(req CostRequest) (*CostResult, error) {
	settings, err := s.settingsSvc.Get()
	if err != nil {
		return nil, err
	}

	waterOz := req.WaterOz
	containerCost := 0.0
	if req.ContainerKey != "" {
		container, err := s.materialSvc.GetContainer(req.ContainerKey)
		if err != nil {
			return nil, err
		}
		waterOz = container.WaterCapacityOz
		containerCost = container.CostPerUnit
	}
	if waterOz <= 0 {
		return nil, ErrInvalidWaterOz
	}

	scent, err := s.materialSvc.GetScent(req.ScentKey)
	if err != nil {
		return nil, err
	}
	oils, err := s.baseOilRepo.FindAll()
	if err != nil {
		return nil, err
	}
	scentCost := engine.ResolveScentCost(scent, oils)

	wickCost, err := s.wickCost(req.WickCounts)
	if err != nil {
		return nil, err
	}

	breakdown := engine.CalculateCosts(engine.CostInput{
		WaterOz:         waterOz,
		WaxCostPerOz:    settings.WaxCostPerOz,
		WaterToWaxRatio: settings.WaterToWaxRatio,
		FragranceLoad:   settings.FragranceLoad,
		ScentCostPerOz:  scentCost,
		WickCost:        wickCost,
		ContainerCost:   containerCost,
	})

	result := &CostResult{
		Breakdown:      breakdown,
		ScentCostPerOz: scentCost,
		WaterOz:        waterOz,
		ContainerKey:   req.ContainerKey,
		TargetPrice:    req.TargetPrice,
	}
	if req.TargetPrice > 0 {
		result.Profit = req.TargetPrice - breakdown.TotalMaterialCost
		result.MarginPercent = result.Profit / req.TargetPrice * 100
	}

	logger.Debug("Cost preview computed", map[string]interface{}{
		"scent_key":  req.ScentKey,
		"water_oz":   waterOz,
		"total_cost": breakdown.TotalMaterialCost,
	})
	return result, nil
}

func (s *costingService) wickCost(counts map[string]int) (float64, error) {
	if len(counts) == 0 {
		return 0, nil
	}

	wicks, err := s.materialSvc.ListWickTypes()
	if err != nil {
		return 0, err
	}
	costByKey := make(map[string]float64, len(wicks))
	for _, w := range wicks {
		costByKey[w.Key] = w.CostPerWick
	}

	total := 0.0
	for key, count := range counts {
		cost, ok := costByKey[key]
		if !ok {
			return 0, fmt.Errorf("%w: wick type %q", ErrMaterialNotFound, key)
		}
		total += float64(count) * cost
	}
	return total, nil
}
