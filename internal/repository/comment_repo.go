package repository

import (
	"context"

	"ArcadeFlow/internal/model"

	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Append(ctx context.Context, c *model.Comment) error {
	c.ID = 0
	return translateErr(r.db.WithContext(ctx).Create(c).Error)
}

// ListByGame 自增 id 作为同一时间戳下的写入顺序
func (r *commentRepository) ListByGame(ctx context.Context, gameID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("posted_at DESC").
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, translateErr(err)
	}
	return comments, nil
}

func (r *commentRepository) DeleteByGame(ctx context.Context, gameID uint64) error {
	return translateErr(r.db.WithContext(ctx).Where("game_id = ?", gameID).Delete(&model.Comment{}).Error)
}

func (r *commentRepository) ListGameIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Distinct().Order("game_id ASC").
		Pluck("game_id", &ids).Error; err != nil {
		return nil, translateErr(err)
	}
	return ids, nil
}
