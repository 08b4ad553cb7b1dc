package repository

import (
	"context"

	"ArcadeFlow/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*model.SiteSetting, error) {
	var s model.SiteSetting
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&s).Error; err != nil {
		return nil, translateErr(err)
	}
	return &s, nil
}

func (r *settingRepository) Set(ctx context.Context, s *model.SiteSetting) error {
	return translateErr(r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(s).Error)
}
