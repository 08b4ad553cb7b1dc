package repository

import (
	"context"

	"ArcadeFlow/internal/model"

	"gorm.io/gorm"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) List(ctx context.Context) ([]*model.Content, error) {
	var list []*model.Content
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, translateErr(err)
	}
	return list, nil
}

func (r *contentRepository) Get(ctx context.Context, id uint64) (*model.Content, error) {
	var c model.Content
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *contentRepository) FindByType(ctx context.Context, t model.ContentType) (*model.Content, error) {
	var c model.Content
	if err := r.db.WithContext(ctx).Where("type = ?", string(t)).Order("id ASC").First(&c).Error; err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *contentRepository) Create(ctx context.Context, c *model.Content) error {
	c.ID = 0
	return translateErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *contentRepository) Update(ctx context.Context, c *model.Content) error {
	res := r.db.WithContext(ctx).Model(&model.Content{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"type":       string(c.Type),
			"title":      c.Title,
			"content":    c.Content,
			"updated_at": c.UpdatedAt,
		})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *contentRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Content{})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
