package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/repository"
	"ArcadeFlow/internal/session"

	"github.com/sirupsen/logrus"
)

// CommentService 评论只追加，没有单条编辑/删除
type CommentService struct {
	repo   repository.CommentRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewCommentService(repo repository.CommentRepository, logger *logrus.Logger) *CommentService {
	return &CommentService{repo: repo, logger: logger, now: time.Now}
}

// AppendComment 空白评论拒绝；用户名为空时按 user_id 生成默认名
func (s *CommentService) AppendComment(ctx context.Context, gameID uint64, userID, username, text string, timestamp int64) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", model.ErrInvalidInput)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", model.ErrInvalidInput)
	}
	if !model.FitsColumn(userID, model.MaxUserIDLength) {
		return nil, fmt.Errorf("%w: user_id longer than %d characters", model.ErrInvalidInput, model.MaxUserIDLength)
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = session.DefaultUsername(userID)
	}
	if !model.FitsColumn(username, model.MaxUsernameLength) {
		return nil, fmt.Errorf("%w: username longer than %d characters", model.ErrInvalidInput, model.MaxUsernameLength)
	}
	if timestamp == 0 {
		timestamp = s.now().UnixMilli()
	}
	c := &model.Comment{
		GameID:      gameID,
		UserID:      userID,
		Username:    username,
		CommentText: text,
		Timestamp:   timestamp,
	}
	if err := s.repo.Append(ctx, c); err != nil {
		return nil, fmt.Errorf("保存评论失败: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"game_id": gameID, "user_id": userID}).Debug("comment appended")
	return c, nil
}

// ListCommentsForGame 最新的在前
func (s *CommentService) ListCommentsForGame(ctx context.Context, gameID uint64) ([]*model.Comment, error) {
	comments, err := s.repo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	return comments, nil
}

func (s *CommentService) DeleteCommentsForGame(ctx context.Context, gameID uint64) error {
	if err := s.repo.DeleteByGame(ctx, gameID); err != nil {
		return fmt.Errorf("删除游戏评论失败: %w", err)
	}
	return nil
}
