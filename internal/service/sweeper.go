package service

import (
	"context"
	"fmt"
	"time"

	"ArcadeFlow/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// OrphanSweeper 清理已删除游戏残留的评分与评论
type OrphanSweeper struct {
	games    repository.GameRepository
	ratings  repository.RatingRepository
	comments repository.CommentRepository
	logger   *logrus.Logger
}

func NewOrphanSweeper(repos *repository.Repositories, logger *logrus.Logger) *OrphanSweeper {
	return &OrphanSweeper{
		games:    repos.Games,
		ratings:  repos.Ratings,
		comments: repos.Comments,
		logger:   logger,
	}
}

// SweepResult 本轮清理涉及的游戏 id
type SweepResult struct {
	RatingGames  []uint64 `json:"rating_games"`
	CommentGames []uint64 `json:"comment_games"`
}

func (s *OrphanSweeper) Run(ctx context.Context) (*SweepResult, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sweep: list games: %w", err)
	}
	alive := make(map[uint64]struct{}, len(games))
	for _, g := range games {
		alive[g.ID] = struct{}{}
	}

	res := &SweepResult{RatingGames: []uint64{}, CommentGames: []uint64{}}

	ratingIDs, err := s.ratings.ListGameIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("sweep: list rated games: %w", err)
	}
	for _, id := range ratingIDs {
		if _, ok := alive[id]; ok {
			continue
		}
		if err := s.ratings.DeleteByGame(ctx, id); err != nil {
			return res, fmt.Errorf("sweep: delete ratings of game %d: %w", id, err)
		}
		res.RatingGames = append(res.RatingGames, id)
	}

	commentIDs, err := s.comments.ListGameIDs(ctx)
	if err != nil {
		return res, fmt.Errorf("sweep: list commented games: %w", err)
	}
	for _, id := range commentIDs {
		if _, ok := alive[id]; ok {
			continue
		}
		if err := s.comments.DeleteByGame(ctx, id); err != nil {
			return res, fmt.Errorf("sweep: delete comments of game %d: %w", id, err)
		}
		res.CommentGames = append(res.CommentGames, id)
	}

	if len(res.RatingGames) > 0 || len(res.CommentGames) > 0 {
		s.logger.WithFields(logrus.Fields{
			"rating_games":  res.RatingGames,
			"comment_games": res.CommentGames,
		}).Info("orphan sweep removed leftovers")
	}
	return res, nil
}

// Schedule 按 cron 表达式定时清理，返回已启动的调度器，调用方负责 Stop
func (s *OrphanSweeper) Schedule(spec string, timeout time.Duration) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := s.Run(ctx); err != nil {
			s.logger.WithError(err).Warn("孤儿数据清理失败")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sweeper schedule %q: %w", spec, err)
	}
	c.Start()
	s.logger.WithField("schedule", spec).Info("orphan sweeper scheduled")
	return c, nil
}
