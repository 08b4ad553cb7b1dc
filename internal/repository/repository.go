package repository

import (
	"context"
	"errors"
	"fmt"

	"ArcadeFlow/internal/model"

	"gorm.io/gorm"
)

// GameRepository 游戏目录仓储
type GameRepository interface {
	// List 按 id 升序返回全部游戏
	List(ctx context.Context) ([]*model.Game, error)
	Get(ctx context.Context, id uint64) (*model.Game, error)
	// Create 分配 id = 当前最大 id + 1（空表为 1）并写入
	Create(ctx context.Context, g *model.Game) error
	// Update 覆盖可编辑字段，记录不存在返回 model.ErrNotFound
	Update(ctx context.Context, g *model.Game) error
	// Delete 幂等删除，记录不存在也视为成功
	Delete(ctx context.Context, id uint64) error
}

// RatingRepository 评分仓储
type RatingRepository interface {
	// Upsert 按 (game_id, user_id) 覆盖写入
	Upsert(ctx context.Context, r *model.Rating) error
	Get(ctx context.Context, gameID uint64, userID string) (*model.Rating, error)
	ListByGame(ctx context.Context, gameID uint64) ([]*model.Rating, error)
	// ListAll 一次性拉取全部评分，供批量聚合使用
	ListAll(ctx context.Context) ([]*model.Rating, error)
	DeleteByGame(ctx context.Context, gameID uint64) error
	// ListGameIDs 有评分的游戏 id（去重，升序）
	ListGameIDs(ctx context.Context) ([]uint64, error)
}

// CommentRepository 评论仓储
type CommentRepository interface {
	Append(ctx context.Context, c *model.Comment) error
	// ListByGame 按时间戳倒序，同一时间戳保持写入顺序
	ListByGame(ctx context.Context, gameID uint64) ([]*model.Comment, error)
	DeleteByGame(ctx context.Context, gameID uint64) error
	ListGameIDs(ctx context.Context) ([]uint64, error)
}

// ContentRepository 静态页面内容仓储
type ContentRepository interface {
	List(ctx context.Context) ([]*model.Content, error)
	Get(ctx context.Context, id uint64) (*model.Content, error)
	// FindByType 同类型多条时取 id 最小的一条
	FindByType(ctx context.Context, t model.ContentType) (*model.Content, error)
	Create(ctx context.Context, c *model.Content) error
	Update(ctx context.Context, c *model.Content) error
	// Delete 记录不存在返回 model.ErrNotFound
	Delete(ctx context.Context, id uint64) error
}

// AdConfigRepository 单例广告配置仓储
type AdConfigRepository interface {
	// Get 尚未保存过配置时返回 model.ErrNotFound
	Get(ctx context.Context) (*model.AdConfig, error)
	Save(ctx context.Context, cfg *model.AdConfig) error
}

// SettingRepository 站点设置仓储
type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.SiteSetting, error)
	Set(ctx context.Context, s *model.SiteSetting) error
}

// Repositories 一次注入全部仓储
type Repositories struct {
	Games    GameRepository
	Ratings  RatingRepository
	Comments CommentRepository
	Contents ContentRepository
	Ads      AdConfigRepository
	Settings SettingRepository
}

// NewGormRepositories 基于 GORM（postgres/sqlite）的仓储
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Games:    NewGameRepository(db),
		Ratings:  NewRatingRepository(db),
		Comments: NewCommentRepository(db),
		Contents: NewContentRepository(db),
		Ads:      NewAdConfigRepository(db),
		Settings: NewSettingRepository(db),
	}
}

// AutoMigrate 库表不存在则自动创建
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(model.AllModels()...)
}

// translateErr 把 gorm 错误归类为领域错误
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", model.ErrInternal, err)
}
