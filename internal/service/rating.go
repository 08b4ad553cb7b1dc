package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/repository"

	"github.com/sirupsen/logrus"
)

// RatingService 评分写入与均分聚合；均分每次实时计算，不做缓存
type RatingService struct {
	repo   repository.RatingRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewRatingService(repo repository.RatingRepository, logger *logrus.Logger) *RatingService {
	return &RatingService{repo: repo, logger: logger, now: time.Now}
}

// RatingSummary 单个游戏的评分概览
type RatingSummary struct {
	GameID  uint64  `json:"game_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RatingResult 写入后的评分与重新计算的均分
type RatingResult struct {
	Rating  *model.Rating `json:"rating"`
	Summary RatingSummary `json:"summary"`
}

// UpsertRating 覆盖 (gameID, userID) 的评分；timestamp 为 0 时取当前毫秒时间
func (s *RatingService) UpsertRating(ctx context.Context, gameID uint64, userID string, rating int, timestamp int64) (*RatingResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", model.ErrInvalidInput)
	}
	if !model.FitsColumn(userID, model.MaxUserIDLength) {
		return nil, fmt.Errorf("%w: user_id longer than %d characters", model.ErrInvalidInput, model.MaxUserIDLength)
	}
	if !model.ValidRating(rating) {
		return nil, fmt.Errorf("%w: rating must be between %d and %d, got %d", model.ErrInvalidInput, model.MinRating, model.MaxRating, rating)
	}
	if timestamp == 0 {
		timestamp = s.now().UnixMilli()
	}
	r := &model.Rating{GameID: gameID, UserID: userID, Rating: rating, Timestamp: timestamp}
	if err := s.repo.Upsert(ctx, r); err != nil {
		return nil, fmt.Errorf("保存评分失败: %w", err)
	}
	summary, err := s.Summary(ctx, gameID)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"game_id": gameID,
		"user_id": userID,
		"rating":  rating,
		"average": summary.Average,
	}).Debug("rating saved")
	return &RatingResult{Rating: r, Summary: summary}, nil
}

func (s *RatingService) ListRatingsForGame(ctx context.Context, gameID uint64) ([]*model.Rating, error) {
	ratings, err := s.repo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("查询评分失败: %w", err)
	}
	return ratings, nil
}

// GetUserRating 用户对某游戏的评分，未评分返回 model.ErrNotFound
func (s *RatingService) GetUserRating(ctx context.Context, gameID uint64, userID string) (*model.Rating, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", model.ErrInvalidInput)
	}
	r, err := s.repo.Get(ctx, gameID, userID)
	if err != nil {
		return nil, fmt.Errorf("rating %d/%s: %w", gameID, userID, err)
	}
	return r, nil
}

// AverageRating 无评分时为 0
func (s *RatingService) AverageRating(ctx context.Context, gameID uint64) (float64, error) {
	summary, err := s.Summary(ctx, gameID)
	if err != nil {
		return 0, err
	}
	return summary.Average, nil
}

func (s *RatingService) Summary(ctx context.Context, gameID uint64) (RatingSummary, error) {
	ratings, err := s.ListRatingsForGame(ctx, gameID)
	if err != nil {
		return RatingSummary{}, err
	}
	return RatingSummary{GameID: gameID, Average: mean(ratings), Count: len(ratings)}, nil
}

// AverageRatingsForAllGames 一次拉取全部评分后按游戏分组求均值，避免逐个游戏查询
func (s *RatingService) AverageRatingsForAllGames(ctx context.Context) (map[uint64]float64, error) {
	ratings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询全部评分失败: %w", err)
	}
	return averagesByGame(ratings), nil
}

func (s *RatingService) DeleteRatingsForGame(ctx context.Context, gameID uint64) error {
	if err := s.repo.DeleteByGame(ctx, gameID); err != nil {
		return fmt.Errorf("删除游戏评分失败: %w", err)
	}
	return nil
}

func mean(ratings []*model.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings))
}

func averagesByGame(ratings []*model.Rating) map[uint64]float64 {
	groupByGame := make(map[uint64][]*model.Rating)
	for _, r := range ratings {
		groupByGame[r.GameID] = append(groupByGame[r.GameID], r)
	}
	out := make(map[uint64]float64, len(groupByGame))
	for gameID, group := range groupByGame {
		out[gameID] = mean(group)
	}
	return out
}
