package model

import (
	"strings"
	"time"
)

// ContentType 静态页面类型
type ContentType string

const (
	ContentAbout      ContentType = "about"
	ContentContact    ContentType = "contact"
	ContentPrivacy    ContentType = "privacy"
	ContentDisclaimer ContentType = "disclaimer"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentAbout, ContentContact, ContentPrivacy, ContentDisclaimer:
		return true
	}
	return false
}

// Content 关于/联系/隐私/免责声明等静态页面内容，正文以空行分段
type Content struct {
	ID        uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type      ContentType `gorm:"column:type;type:varchar(32);not null;index" json:"type"`
	Title     string      `gorm:"column:title;type:varchar(256);not null" json:"title"`
	Content   string      `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time   `gorm:"column:updated_at" json:"updated_at"`
}

func (Content) TableName() string { return "contents" }

// Paragraphs 按空行切分正文，去掉空段
func (c *Content) Paragraphs() []string {
	var (
		out     []string
		current []string
	)
	flush := func() {
		if p := strings.TrimSpace(strings.Join(current, "\n")); p != "" {
			out = append(out, p)
		}
		current = current[:0]
	}
	for _, line := range strings.Split(strings.ReplaceAll(c.Content, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return out
}

// ContentFields 创建/更新页面内容时提交的字段
type ContentFields struct {
	Type    *ContentType `json:"type"`
	Title   *string      `json:"title"`
	Content *string      `json:"content"`
}

func (f ContentFields) Apply(c *Content) {
	if f.Type != nil {
		c.Type = ContentType(strings.TrimSpace(string(*f.Type)))
	}
	if f.Title != nil {
		c.Title = strings.TrimSpace(*f.Title)
	}
	if f.Content != nil {
		c.Content = strings.TrimSpace(*f.Content)
	}
}
