package service

import (
	"context"
	"fmt"
	"time"

	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/repository"

	"github.com/sirupsen/logrus"
)

// GameService 游戏目录的增删改查
type GameService struct {
	repo   repository.GameRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewGameService(repo repository.GameRepository, logger *logrus.Logger) *GameService {
	return &GameService{repo: repo, logger: logger, now: time.Now}
}

func (s *GameService) ListGames(ctx context.Context) ([]*model.Game, error) {
	games, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询游戏列表失败: %w", err)
	}
	return games, nil
}

func (s *GameService) GetGame(ctx context.Context, id uint64) (*model.Game, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", id, err)
	}
	return g, nil
}

// CreateGame 标题与分类必填，id 由仓储分配
func (s *GameService) CreateGame(ctx context.Context, fields model.GameFields) (*model.Game, error) {
	g := &model.Game{}
	fields.Apply(g)
	if err := validateGame(g); err != nil {
		return nil, err
	}
	now := s.now()
	g.CreatedAt, g.UpdatedAt = now, now
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("创建游戏失败: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"game_id": g.ID, "title": g.Title}).Info("game created")
	return g, nil
}

// UpdateGame 合并已提供字段并刷新 updated_at
func (s *GameService) UpdateGame(ctx context.Context, id uint64, fields model.GameFields) (*model.Game, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", id, err)
	}
	fields.Apply(g)
	if err := validateGame(g); err != nil {
		return nil, err
	}
	g.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("更新游戏失败: %w", err)
	}
	s.logger.WithField("game_id", id).Info("game updated")
	return g, nil
}

// DeleteGame 只删除游戏本身；评分与评论的级联删除见 CatalogService.DeleteGame
func (s *GameService) DeleteGame(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除游戏失败: %w", err)
	}
	return nil
}

func validateGame(g *model.Game) error {
	if g.Title == "" || g.Category == "" {
		return fmt.Errorf("%w: title and category are required", model.ErrInvalidInput)
	}
	return nil
}
