package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/repository"

	"github.com/sirupsen/logrus"
)

// SettingService 站点设置，目前只有网站名称
type SettingService struct {
	repo   repository.SettingRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewSettingService(repo repository.SettingRepository, logger *logrus.Logger) *SettingService {
	return &SettingService{repo: repo, logger: logger, now: time.Now}
}

func (s *SettingService) WebsiteName(ctx context.Context) (string, error) {
	setting, err := s.repo.Get(ctx, model.SettingWebsiteName)
	if errors.Is(err, model.ErrNotFound) {
		return model.DefaultWebsiteName, nil
	}
	if err != nil {
		return "", fmt.Errorf("读取网站名称失败: %w", err)
	}
	return setting.Value, nil
}

func (s *SettingService) SetWebsiteName(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: website name is required", model.ErrInvalidInput)
	}
	err := s.repo.Set(ctx, &model.SiteSetting{
		Key:       model.SettingWebsiteName,
		Value:     name,
		UpdatedAt: s.now(),
	})
	if err != nil {
		return "", fmt.Errorf("保存网站名称失败: %w", err)
	}
	s.logger.WithField("website_name", name).Info("website name updated")
	return name, nil
}
