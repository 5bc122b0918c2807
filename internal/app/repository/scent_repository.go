package repository

import (
	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"gorm.io/gorm"
)

type ScentRepository interface {
	Create(scent *model.GlobalScent) error
	FindAll() ([]model.GlobalScent, error)
	FindByKey(key string) (*model.GlobalScent, error)
	Update(scent *model.GlobalScent) error
	DeleteByKey(key string) error
}

type scentRepository struct {
	db *gorm.DB
}

func NewScentRepository(db *gorm.DB) ScentRepository {
	return &scentRepository{db: db}
}

func (r *scentRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.GlobalScent{}).
		Preload("EnabledProducts").
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("scent_components.position ASC, scent_components.id ASC")
		})
}

func (r *scentRepository) Create(scent *model.GlobalScent) error {
	logger.Debug("Creating scent in database", map[string]interface{}{
		"key":     scent.Key,
		"limited": scent.Limited,
	})

	if err := r.db.Create(scent).Error; err != nil {
		logger.Error("Failed to create scent in database", err, map[string]interface{}{
			"key": scent.Key,
		})
		return err
	}
	return nil
}

func (r *scentRepository) FindAll() ([]model.GlobalScent, error) {
	var scents []model.GlobalScent
	if err := r.baseQuery().Order("global_scents.created_at ASC").Find(&scents).Error; err != nil {
		logger.Error("Failed to list scents from database", err, nil)
		return nil, err
	}
	return scents, nil
}

func (r *scentRepository) FindByKey(key string) (*model.GlobalScent, error) {
	var scent model.GlobalScent
	if err := r.baseQuery().Where("global_scents.key = ?", key).First(&scent).Error; err != nil {
		return nil, err
	}
	return &scent, nil
}

func (r *scentRepository) Update(scent *model.GlobalScent) error {
	logger.Debug("Updating scent in database", map[string]interface{}{
		"scent_id": scent.ID,
		"key":      scent.Key,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("EnabledProducts", "Components").Save(scent).Error; err != nil {
			return err
		}
		if err := tx.Model(scent).Association("EnabledProducts").Unscoped().Replace(scent.EnabledProducts); err != nil {
			return err
		}
		return tx.Model(scent).Association("Components").Unscoped().Replace(scent.Components)
	})
	if err != nil {
		logger.Error("Failed to update scent in database", err, map[string]interface{}{
			"scent_id": scent.ID,
			"key":      scent.Key,
		})
	}
	return err
}

func (r *scentRepository) DeleteByKey(key string) error {
	result := r.db.Where("key = ?", key).Delete(&model.GlobalScent{})
	if result.Error != nil {
		logger.Error("Failed to delete scent from database", result.Error, map[string]interface{}{
			"key": key,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
