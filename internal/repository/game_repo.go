package repository

import (
	"context"

	"ArcadeFlow/internal/model"

	"gorm.io/gorm"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) List(ctx context.Context) ([]*model.Game, error) {
	var games []*model.Game
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&games).Error; err != nil {
		return nil, translateErr(err)
	}
	return games, nil
}

func (r *gameRepository) Get(ctx context.Context, id uint64) (*model.Game, error) {
	var g model.Game
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, translateErr(err)
	}
	return &g, nil
}

// Create 在事务内读取最大 id 再插入，保证 id 连续递增
func (r *gameRepository) Create(ctx context.Context, g *model.Game) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID uint64
		if err := tx.Model(&model.Game{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		g.ID = maxID + 1
		return tx.Create(g).Error
	})
	return translateErr(err)
}

func (r *gameRepository) Update(ctx context.Context, g *model.Game) error {
	res := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"title":       g.Title,
			"description": g.Description,
			"category":    g.Category,
			"image_url":   g.ImageURL,
			"game_url":    g.GameURL,
			"updated_at":  g.UpdatedAt,
		})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gameRepository) Delete(ctx context.Context, id uint64) error {
	return translateErr(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Game{}).Error)
}
