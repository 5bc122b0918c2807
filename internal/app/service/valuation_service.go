package service

import (
	"context"
	"time"

	"github.com/dcwlabs/candleworks-backend/internal/app/engine"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"github.com/dcwlabs/candleworks-backend/pkg/redis"
)

// ValuationSummary is the shop-level inventory roll-up: product count,
// total sellable units, and the material value on hand (units times unit
// material cost plus container cost).
type ValuationSummary struct {
	TotalProducts  int       `json:"total_products"`
	TotalUnits     int       `json:"total_units"`
	InventoryValue float64   `json:"inventory_value"`
	ComputedAt     time.Time `json:"computed_at"`
}

type ValuationService interface {
	Summary(ctx context.Context) (*ValuationSummary, error)
	// Snapshot recomputes the summary and caches it; the scheduler calls
	// this nightly.
	Snapshot(ctx context.Context) (*ValuationSummary, error)
}

type valuationService struct {
	productRepo   repository.ProductRepository
	containerRepo repository.ContainerRepository
	cacheTTL      time.Duration
}

func NewValuationService(productRepo repository.ProductRepository, containerRepo repository.ContainerRepository) ValuationService {
	return &valuationService{
		productRepo:   productRepo,
		containerRepo: containerRepo,
		cacheTTL:      48 * time.Hour,
	}
}

// Summary serves the cached snapshot when one exists, recomputing
// otherwise.
func (s *valuationService) Summary(ctx context.Context) (*ValuationSummary, error) {
	var cached ValuationSummary
	if ok, err := redis.CachedValuation(ctx, &cached); err == nil && ok {
		return &cached, nil
	}
	return s.Snapshot(ctx)
}

func (s *valuationService) Snapshot(ctx context.Context) (*ValuationSummary, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	containers, err := s.containerRepo.FindAll()
	if err != nil {
		return nil, err
	}
	containerCost := make(map[string]float64, len(containers))
	for _, c := range containers {
		containerCost[c.Key] = c.CostPerUnit
	}

	summary := &ValuationSummary{
		TotalProducts: len(products),
		ComputedAt:    time.Now().UTC(),
	}
	for i := range products {
		units := engine.TotalStock(&products[i])
		summary.TotalUnits += units
		unitCost := products[i].MaterialCost + containerCost[products[i].ContainerKey]
		summary.InventoryValue += float64(units) * unitCost
	}

	if err := redis.CacheValuation(ctx, summary, s.cacheTTL); err != nil {
		// Cache loss is not fatal; the summary is still correct.
		logger.Warn("Inventory valuation not cached", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Inventory valuation computed", map[string]interface{}{
		"total_products":  summary.TotalProducts,
		"total_units":     summary.TotalUnits,
		"inventory_value": summary.InventoryValue,
	})
	return summary, nil
}
