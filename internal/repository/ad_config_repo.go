package repository

import (
	"context"

	"ArcadeFlow/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type adConfigRepository struct {
	db *gorm.DB
}

func NewAdConfigRepository(db *gorm.DB) AdConfigRepository {
	return &adConfigRepository{db: db}
}

func (r *adConfigRepository) Get(ctx context.Context) (*model.AdConfig, error) {
	var cfg model.AdConfig
	if err := r.db.WithContext(ctx).Where("id = ?", model.AdConfigID).First(&cfg).Error; err != nil {
		return nil, translateErr(err)
	}
	return &cfg, nil
}

// Save 单例行不存在则创建，存在则整行覆盖
func (r *adConfigRepository) Save(ctx context.Context, cfg *model.AdConfig) error {
	cfg.ID = model.AdConfigID
	return translateErr(r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(cfg).Error)
}
