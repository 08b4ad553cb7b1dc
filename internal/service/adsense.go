package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ArcadeFlow/internal/adtext"
	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/repository"

	"github.com/sirupsen/logrus"
)

// AdService 单例广告配置：结构化保存、粘贴文本解析、ads.txt 输出
type AdService struct {
	repo   repository.AdConfigRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewAdService(repo repository.AdConfigRepository, logger *logrus.Logger) *AdService {
	return &AdService{repo: repo, logger: logger, now: time.Now}
}

// GetAdConfig 从未配置过时返回空配置而不是错误
func (s *AdService) GetAdConfig(ctx context.Context) (*model.AdConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		empty := &model.AdConfig{ID: model.AdConfigID}
		empty.SetAdUnitIDs(nil)
		return empty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取广告配置失败: %w", err)
	}
	return cfg, nil
}

// SetAdConfig 整体替换当前配置，created_at 沿用首次写入的时间
func (s *AdService) SetAdConfig(ctx context.Context, fields model.AdFields) (*model.AdConfig, error) {
	current, err := s.GetAdConfig(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	cfg := &model.AdConfig{
		ID:               model.AdConfigID,
		PublisherID:      strings.TrimSpace(fields.PublisherID),
		MetaTag:          strings.TrimSpace(fields.MetaTag),
		VerificationCode: strings.TrimSpace(fields.VerificationCode),
		AdsTxtContent:    strings.TrimSpace(fields.AdsTxtContent),
		TextContent:      fields.TextContent,
		CreatedAt:        current.CreatedAt,
		UpdatedAt:        now,
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.SetAdUnitIDs(normalizeUnitIDs(fields.AdUnitIDs))
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("保存广告配置失败: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"publisher_id": cfg.PublisherID,
		"ad_units":     len(cfg.GetAdUnitIDs()),
	}).Info("ad config saved")
	return cfg, nil
}

// ParseAdText 只解析不保存，用于后台预览
func (s *AdService) ParseAdText(raw string) adtext.Result {
	return adtext.Parse(raw)
}

// ApplyAdText 解析粘贴文本并覆盖派生字段。文本里没有广告单元时保留原有列表，
// verification_code 始终保留。
func (s *AdService) ApplyAdText(ctx context.Context, raw string) (*model.AdConfig, error) {
	current, err := s.GetAdConfig(ctx)
	if err != nil {
		return nil, err
	}
	parsed := adtext.Parse(raw)
	units := parsed.AdUnitIDs
	if len(units) == 0 {
		units = current.GetAdUnitIDs()
	}
	s.logger.WithFields(logrus.Fields{
		"publisher_id": parsed.PublisherID,
		"ad_units":     len(parsed.AdUnitIDs),
	}).Debug("ad text parsed")
	return s.SetAdConfig(ctx, model.AdFields{
		PublisherID:      parsed.PublisherID,
		MetaTag:          parsed.MetaTag,
		VerificationCode: current.VerificationCode,
		AdUnitIDs:        units,
		AdsTxtContent:    parsed.AdsTxtContent,
		TextContent:      raw,
	})
}

// AdsTxt 当前保存的 ads.txt 内容，未配置时为空串
func (s *AdService) AdsTxt(ctx context.Context) (string, error) {
	cfg, err := s.GetAdConfig(ctx)
	if err != nil {
		return "", err
	}
	return cfg.AdsTxtContent, nil
}

// normalizeUnitIDs 去空白、去重，保持首次出现的顺序
func normalizeUnitIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
