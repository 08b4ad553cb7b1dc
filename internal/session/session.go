package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ArcadeFlow/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session 匿名访客会话：前端首次访问时领取 user_id，用于评分与评论
type Session struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Store 会话存储后端（内存 / Redis）
type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	// Load 不存在或已过期返回 model.ErrNotFound
	Load(ctx context.Context, userID string) (*Session, error)
}

// Service 会话服务
type Service struct {
	store  Store
	ttl    time.Duration
	logger *logrus.Logger
	now    func() time.Time
}

func NewService(store Store, ttl time.Duration, logger *logrus.Logger) *Service {
	return &Service{store: store, ttl: ttl, logger: logger, now: time.Now}
}

// Issue 生成新的匿名用户
func (s *Service) Issue(ctx context.Context) (*Session, error) {
	id := uuid.NewString()
	sess := &Session{
		UserID:    id,
		Username:  DefaultUsername(id),
		CreatedAt: s.now(),
	}
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		return nil, fmt.Errorf("保存会话失败: %w", err)
	}
	s.logger.WithField("user_id", id).Debug("issued anonymous session")
	return sess, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", model.ErrInvalidInput)
	}
	return s.store.Load(ctx, userID)
}

// DefaultUsername User- 加上 id 前 8 位十六进制（大写），如 User-ABCD1234
func DefaultUsername(userID string) string {
	compact := strings.ToUpper(strings.ReplaceAll(userID, "-", ""))
	if len(compact) > 8 {
		compact = compact[:8]
	}
	if compact == "" {
		return "User"
	}
	return "User-" + compact
}
