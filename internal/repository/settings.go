package repository

import (
	"encoding/json"
	"errors"

	"workclock-backend/internal/database/models"
	apperrors "workclock-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository handles database operations for the preferences aggregate
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Load retrieves the raw preferences document stored under key.
// Returns ErrSettingNotFound when no row exists yet.
func (r *SettingsRepository) Load(key string) (json.RawMessage, error) {
	var setting models.Setting
	err := r.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSettingNotFound
	}
	if err != nil {
		return nil, err
	}
	return setting.Value, nil
}

// Save upserts the whole preferences document under key.
func (r *SettingsRepository) Save(key string, value json.RawMessage) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// Delete removes the document stored under key.
func (r *SettingsRepository) Delete(key string) error {
	return r.db.Delete(&models.Setting{}, "key = ?", key).Error
}
