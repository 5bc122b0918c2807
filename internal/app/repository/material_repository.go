package repository

import (
	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"gorm.io/gorm"
)

// The raw-material catalogs (base oils, wick types, containers) are flat
// keyed collections with identical access patterns, so they share a file.

type BaseOilRepository interface {
	Create(oil *model.BaseOil) error
	FindAll() ([]model.BaseOil, error)
	FindByKey(key string) (*model.BaseOil, error)
	Update(oil *model.BaseOil) error
	DeleteByKey(key string) error
}

type baseOilRepository struct {
	db *gorm.DB
}

func NewBaseOilRepository(db *gorm.DB) BaseOilRepository {
	return &baseOilRepository{db: db}
}

func (r *baseOilRepository) Create(oil *model.BaseOil) error {
	if err := r.db.Create(oil).Error; err != nil {
		logger.Error("Failed to create base oil in database", err, map[string]interface{}{
			"key": oil.Key,
		})
		return err
	}
	return nil
}

func (r *baseOilRepository) FindAll() ([]model.BaseOil, error) {
	var oils []model.BaseOil
	if err := r.db.Order("created_at ASC").Find(&oils).Error; err != nil {
		logger.Error("Failed to list base oils from database", err, nil)
		return nil, err
	}
	return oils, nil
}

func (r *baseOilRepository) FindByKey(key string) (*model.BaseOil, error) {
	var oil model.BaseOil
	if err := r.db.Where("key = ?", key).First(&oil).Error; err != nil {
		return nil, err
	}
	return &oil, nil
}

func (r *baseOilRepository) Update(oil *model.BaseOil) error {
	if err := r.db.Save(oil).Error; err != nil {
		logger.Error("Failed to update base oil in database", err, map[string]interface{}{
			"key": oil.Key,
		})
		return err
	}
	return nil
}

func (r *baseOilRepository) DeleteByKey(key string) error {
	result := r.db.Where("key = ?", key).Delete(&model.BaseOil{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type WickTypeRepository interface {
	Create(wick *model.WickType) error
	FindAll() ([]model.WickType, error)
	FindByKey(key string) (*model.WickType, error)
	Update(wick *model.WickType) error
	DeleteByKey(key string) error
}

type wickTypeRepository struct {
	db *gorm.DB
}

func NewWickTypeRepository(db *gorm.DB) WickTypeRepository {
	return &wickTypeRepository{db: db}
}

func (r *wickTypeRepository) Create(wick *model.WickType) error {
	if err := r.db.Create(wick).Error; err != nil {
		logger.Error("Failed to create wick type in database", err, map[string]interface{}{
			"key": wick.Key,
		})
		return err
	}
	return nil
}

func (r *wickTypeRepository) FindAll() ([]model.WickType, error) {
	var wicks []model.WickType
	if err := r.db.Order("created_at ASC").Find(&wicks).Error; err != nil {
		logger.Error("Failed to list wick types from database", err, nil)
		return nil, err
	}
	return wicks, nil
}

func (r *wickTypeRepository) FindByKey(key string) (*model.WickType, error) {
	var wick model.WickType
	if err := r.db.Where("key = ?", key).First(&wick).Error; err != nil {
		return nil, err
	}
	return &wick, nil
}

func (r *wickTypeRepository) Update(wick *model.WickType) error {
	if err := r.db.Save(wick).Error; err != nil {
		logger.Error("Failed to update wick type in database", err, map[string]interface{}{
			"key": wick.Key,
		})
		return err
	}
	return nil
}

func (r *wickTypeRepository) DeleteByKey(key string) error {
	result := r.db.Where("key = ?", key).Delete(&model.WickType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type ContainerRepository interface {
	Create(container *model.Container) error
	FindAll() ([]model.Container, error)
	FindByKey(key string) (*model.Container, error)
	Update(container *model.Container) error
	DeleteByKey(key string) error
}

type containerRepository struct {
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &containerRepository{db: db}
}

func (r *containerRepository) Create(container *model.Container) error {
	if err := r.db.Create(container).Error; err != nil {
		logger.Error("Failed to create container in database", err, map[string]interface{}{
			"key": container.Key,
		})
		return err
	}
	return nil
}

func (r *containerRepository) FindAll() ([]model.Container, error) {
	var containers []model.Container
	if err := r.db.Order("created_at ASC").Find(&containers).Error; err != nil {
		logger.Error("Failed to list containers from database", err, nil)
		return nil, err
	}
	return containers, nil
}

func (r *containerRepository) FindByKey(key string) (*model.Container, error) {
	var container model.Container
	if err := r.db.Where("key = ?", key).First(&container).Error; err != nil {
		return nil, err
	}
	return &container, nil
}

func (r *containerRepository) Update(container *model.Container) error {
	if err := r.db.Save(container).Error; err != nil {
		logger.Error("Failed to update container in database", err, map[string]interface{}{
			"key": container.Key,
		})
		return err
	}
	return nil
}

func (r *containerRepository) DeleteByKey(key string) error {
	result := r.db.Where("key = ?", key).Delete(&model.Container{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
