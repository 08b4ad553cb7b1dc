package repository

import (
	"context"

	"ArcadeFlow/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert 冲突则更新评分与时间戳
func (r *ratingRepository) Upsert(ctx context.Context, rating *model.Rating) error {
	return translateErr(r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "rated_at"}),
	}).Create(rating).Error)
}

func (r *ratingRepository) Get(ctx context.Context, gameID uint64, userID string) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		First(&rating).Error; err != nil {
		return nil, translateErr(err)
	}
	return &rating, nil
}

func (r *ratingRepository) ListByGame(ctx context.Context, gameID uint64) ([]*model.Rating, error) {
	var ratings []*model.Rating
	if err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("rated_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, translateErr(err)
	}
	return ratings, nil
}

func (r *ratingRepository) ListAll(ctx context.Context) ([]*model.Rating, error) {
	var ratings []*model.Rating
	if err := r.db.WithContext(ctx).Order("game_id ASC").Find(&ratings).Error; err != nil {
		return nil, translateErr(err)
	}
	return ratings, nil
}

func (r *ratingRepository) DeleteByGame(ctx context.Context, gameID uint64) error {
	return translateErr(r.db.WithContext(ctx).Where("game_id = ?", gameID).Delete(&model.Rating{}).Error)
}

func (r *ratingRepository) ListGameIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	if err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Distinct().Order("game_id ASC").
		Pluck("game_id", &ids).Error; err != nil {
		return nil, translateErr(err)
	}
	return ids, nil
}
