package service

import (
	"errors"
	"sync"

	"github.com/dcwlabs/candleworks-backend/internal/app/engine"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"github.com/google/uuid"
)

var (
	ErrBatchItemNotFound  = errors.New("batch item not found")
	ErrClearNeedsConfirm  = errors.New("clearing a non-empty batch needs confirmation")
	ErrInvalidQuantity    = errors.New("quantity must be at least one")
)

// BatchSummary is the current run plus its roll-ups.
type BatchSummary struct {
	Items         []engine.BatchItem `json:"items"`
	Totals        engine.BatchTotals `json:"totals"`
	BaseOilTotals map[string]float64 `json:"base_oil_totals"`
}

// BatchService plans a production run. Adding an item with a scent
// different from the run's scent returns engine.ErrScentMismatch unless the
// caller explicitly confirmed replacing the run.
type BatchService interface {
	AddItem(req CostRequest, quantity int, replace bool) (*engine.BatchItem, error)
	RemoveItem(id string) error
	Clear(confirmed bool) error
	Summary() BatchSummary
}

type batchService struct {
	costingSvc  CostingService
	materialSvc MaterialService

	mu    sync.Mutex
	batch *engine.Batch
}

func NewBatchService(costingSvc CostingService, materialSvc MaterialService) BatchService {
	return &batchService{
		costingSvc:  costingSvc,
		materialSvc: materialSvc,
		batch:       engine.NewBatch(),
	}
}

func (s *batchService) AddItem(req CostRequest, quantity int, replace bool) (*engine.BatchItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	result, err := s.costingSvc.Preview(req)
	if err != nil {
		return nil, err
	}
	scent, err := s.materialSvc.GetScent(req.ScentKey)
	if err != nil {
		return nil, err
	}

	item := engine.BatchItem{
		ID:           uuid.NewString(),
		ContainerKey: req.ContainerKey,
		WaterOz:      result.WaterOz,
		ScentKey:     scent.Key,
		ScentName:    scent.Name,
		WickCounts:   req.WickCounts,
		Quantity:     quantity,
		Costs:        result.Breakdown,
	}
	// Snapshot the composition so base-oil roll-ups survive later scent
	// edits. Direct-cost scents carry none.
	if scent.CostPerOz == nil {
		item.Composition = scent.Components
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.batch.Add(item); err != nil {
		if errors.Is(err, engine.ErrScentMismatch) && replace {
			s.batch.Replace(item)
			logger.Info("Batch replaced after scent change", map[string]interface{}{
				"scent_key": item.ScentKey,
			})
			return &item, nil
		}
		return nil, err
	}

	logger.Info("Batch item added", map[string]interface{}{
		"item_id":   item.ID,
		"scent_key": item.ScentKey,
		"quantity":  quantity,
	})
	return &item, nil
}

func (s *batchService) RemoveItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.batch.Items() {
		if item.ID == id {
			s.batch.Remove(i)
			return nil
		}
	}
	return ErrBatchItemNotFound
}

func (s *batchService) Clear(confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.batch.Len() > 0 && !confirmed {
		return ErrClearNeedsConfirm
	}
	s.batch.Clear()
	return nil
}

func (s *batchService) Summary() BatchSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return BatchSummary{
		Items:         s.batch.Items(),
		Totals:        s.batch.Totals(),
		BaseOilTotals: s.batch.BaseOilTotals(),
	}
}
