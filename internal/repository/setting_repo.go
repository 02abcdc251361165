package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tixnaija/internal/domain"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.PlatformSetting, error) {
	var s domain.PlatformSetting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&domain.PlatformSetting{Key: key, Value: value}).Error
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&domain.PlatformSetting{}).Error
}

func (r *SettingRepository) List(ctx context.Context) ([]domain.PlatformSetting, error) {
	var settings []domain.PlatformSetting
	if err := r.db.WithContext(ctx).Order("key").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
