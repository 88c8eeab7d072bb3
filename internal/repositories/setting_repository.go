package repositories

import (
	"errors"

	"gorm.io/gorm"

	"sonna_backend/internal/models"
)

type SettingRepository interface {
	FindAll() ([]models.SystemSetting, error)
	// Upsert creates the setting when the key is new, otherwise updates
	// its value.
	Upsert(key, value string) (*models.SystemSetting, error)
}

type SettingRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

func (r *SettingRepositoryImpl) FindAll() ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	err := r.db.Order("key").Find(&settings).Error
	return settings, err
}

func (r *SettingRepositoryImpl) Upsert(key, value string) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := r.db.First(&setting, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		setting = models.SystemSetting{Key: key, Value: value}
		if err := r.db.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}

	setting.Value = value
	if err := r.db.Model(&setting).Update("value", value).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
