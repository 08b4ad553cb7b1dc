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

// ContentService 静态页面内容管理
type ContentService struct {
	repo   repository.ContentRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewContentService(repo repository.ContentRepository, logger *logrus.Logger) *ContentService {
	return &ContentService{repo: repo, logger: logger, now: time.Now}
}

// GetByType 同类型存在多条时取最早创建的一条
func (s *ContentService) GetByType(ctx context.Context, t model.ContentType) (*model.Content, error) {
	t = model.ContentType(strings.ToLower(strings.TrimSpace(string(t))))
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", model.ErrInvalidInput, t)
	}
	c, err := s.repo.FindByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", t, err)
	}
	return c, nil
}

func (s *ContentService) ListContents(ctx context.Context) ([]*model.Content, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询页面内容失败: %w", err)
	}
	return list, nil
}

func (s *ContentService) GetContent(ctx context.Context, id uint64) (*model.Content, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("content %d: %w", id, err)
	}
	return c, nil
}

func (s *ContentService) CreateContent(ctx context.Context, fields model.ContentFields) (*model.Content, error) {
	c := &model.Content{Type: model.ContentAbout}
	fields.Apply(c)
	if err := validateContent(c); err != nil {
		return nil, err
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("创建页面内容失败: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"content_id": c.ID, "type": c.Type}).Info("content created")
	return c, nil
}

func (s *ContentService) UpdateContent(ctx context.Context, id uint64, fields model.ContentFields) (*model.Content, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("content %d: %w", id, err)
	}
	fields.Apply(c)
	if err := validateContent(c); err != nil {
		return nil, err
	}
	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("更新页面内容失败: %w", err)
	}
	return c, nil
}

func (s *ContentService) DeleteContent(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("content %d: %w", id, err)
	}
	s.logger.WithField("content_id", id).Info("content deleted")
	return nil
}

func validateContent(c *model.Content) error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: unknown content type %q", model.ErrInvalidInput, c.Type)
	}
	if c.Title == "" || c.Content == "" {
		return fmt.Errorf("%w: title and content are required", model.ErrInvalidInput)
	}
	return nil
}
