package service

import (
	"errors"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrScentNotFound     = errors.New("scent not found")
	ErrMaterialNotFound  = errors.New("material not found")
	ErrContainerNotFound = errors.New("container not found")
	ErrInvalidBottle     = errors.New("bottle size and cost must both be greater than zero")
)

// MaterialService manages the raw-material catalogs: scents, base oils,
// wick types and containers.
type MaterialService interface {
	ListScents() ([]model.GlobalScent, error)
	GetScent(key string) (*model.GlobalScent, error)
	CreateScent(scent *model.GlobalScent) error
	// CreateScentFromBottle derives cost per ounce from a bottle purchase
	// (total price over bottle ounces, shipping included).
	CreateScentFromBottle(scent *model.GlobalScent, bottleOz, totalCost float64) error
	UpdateScent(scent *model.GlobalScent) error
	DeleteScent(key string) error

	ListBaseOils() ([]model.BaseOil, error)
	CreateBaseOil(oil *model.BaseOil) error
	UpdateBaseOil(oil *model.BaseOil) error
	DeleteBaseOil(key string) error

	ListWickTypes() ([]model.WickType, error)
	CreateWickType(wick *model.WickType) error
	UpdateWickType(wick *model.WickType) error
	DeleteWickType(key string) error

	ListContainers() ([]model.Container, error)
	GetContainer(key string) (*model.Container, error)
	CreateContainer(container *model.Container) error
	UpdateContainer(container *model.Container) error
	DeleteContainer(key string) error
}

type materialService struct {
	scentRepo     repository.ScentRepository
	baseOilRepo   repository.BaseOilRepository
	wickRepo      repository.WickTypeRepository
	containerRepo repository.ContainerRepository
}

func NewMaterialService(
	scentRepo repository.ScentRepository,
	baseOilRepo repository.BaseOilRepository,
	wickRepo repository.WickTypeRepository,
	containerRepo repository.ContainerRepository,
) MaterialService {
	return &materialService{
		scentRepo:     scentRepo,
		baseOilRepo:   baseOilRepo,
		wickRepo:      wickRepo,
		containerRepo: containerRepo,
	}
}

func (s *materialService) ListScents() ([]model.GlobalScent, error) {
	return s.scentRepo.FindAll()
}

func (s *materialService) GetScent(key string) (*model.GlobalScent, error) {
	scent, err := s.scentRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScentNotFound
		}
		return nil, err
	}
	return scent, nil
}

func (s *materialService) CreateScent(scent *model.GlobalScent) error {
	logger.Info("Creating scent", map[string]interface{}{
		"key":        scent.Key,
		"limited":    scent.Limited,
		"components": len(scent.Components),
	})
	return s.scentRepo.Create(scent)
}

func (s *materialService) CreateScentFromBottle(scent *model.GlobalScent, bottleOz, totalCost float64) error {
	if bottleOz <= 0 || totalCost <= 0 {
		return ErrInvalidBottle
	}
	costPerOz := totalCost / bottleOz
	scent.CostPerOz = &costPerOz

	logger.Info("Creating scent from bottle purchase", map[string]interface{}{
		"key":         scent.Key,
		"bottle_oz":   bottleOz,
		"total_cost":  totalCost,
		"cost_per_oz": costPerOz,
	})
	return s.scentRepo.Create(scent)
}

func (s *materialService) UpdateScent(scent *model.GlobalScent) error {
	existing, err := s.GetScent(scent.Key)
	if err != nil {
		return err
	}
	scent.ID = existing.ID
	return s.scentRepo.Update(scent)
}

func (s *materialService) DeleteScent(key string) error {
	if err := s.scentRepo.DeleteByKey(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScentNotFound
		}
		return err
	}
	return nil
}

func (s *materialService) ListBaseOils() ([]model.BaseOil, error) {
	return s.baseOilRepo.FindAll()
}

func (s *materialService) CreateBaseOil(oil *model.BaseOil) error {
	return s.baseOilRepo.Create(oil)
}

func (s *materialService) UpdateBaseOil(oil *model.BaseOil) error {
	existing, err := s.baseOilRepo.FindByKey(oil.Key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return err
	}
	oil.ID = existing.ID
	return s.baseOilRepo.Update(oil)
}

func (s *materialService) DeleteBaseOil(key string) error {
	if err := s.baseOilRepo.DeleteByKey(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return err
	}
	return nil
}

func (s *materialService) ListWickTypes() ([]model.WickType, error) {
	return s.wickRepo.FindAll()
}

func (s *materialService) CreateWickType(wick *model.WickType) error {
	return s.wickRepo.Create(wick)
}

func (s *materialService) UpdateWickType(wick *model.WickType) error {
	existing, err := s.wickRepo.FindByKey(wick.Key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return err
	}
	wick.ID = existing.ID
	return s.wickRepo.Update(wick)
}

func (s *materialService) DeleteWickType(key string) error {
	if err := s.wickRepo.DeleteByKey(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return err
	}
	return nil
}

func (s *materialService) ListContainers() ([]model.Container, error) {
	return s.containerRepo.FindAll()
}

func (s *materialService) GetContainer(key string) (*model.Container, error) {
	container, err := s.containerRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContainerNotFound
		}
		return nil, err
	}
	return container, nil
}

func (s *materialService) CreateContainer(container *model.Container) error {
	if container.Shape == "" {
		container.Shape = model.ShapeRound
	}
	return s.containerRepo.Create(container)
}

func (s *materialService) UpdateContainer(container *model.Container) error {
	existing, err := s.GetContainer(container.Key)
	if err != nil {
		return err
	}
	container.ID = existing.ID
	if container.Shape == "" {
		container.Shape = existing.Shape
	}
	return s.containerRepo.Update(container)
}

func (s *materialService) DeleteContainer(key string) error {
	if err := s.containerRepo.DeleteByKey(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContainerNotFound
		}
		return err
	}
	return nil
}
