package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// AdConfigID 广告配置是单例，固定占用 id=1 这一行
const AdConfigID = 1

// AdConfig 广告联盟发布商/广告单元配置
type AdConfig struct {
	ID               uint64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"-"`
	PublisherID      string         `gorm:"column:publisher_id;type:varchar(64)" json:"publisher_id"`
	MetaTag          string         `gorm:"column:meta_tag;type:varchar(64)" json:"meta_tag"`
	VerificationCode string         `gorm:"column:verification_code;type:varchar(256)" json:"verification_code"`
	AdUnitIDs        datatypes.JSON `gorm:"column:ad_unit_ids;type:json" json:"ad_unit_ids"` // JSON 字符串数组，保持顺序
	AdsTxtContent    string         `gorm:"column:ads_txt_content;type:text" json:"ads_txt_content"`
	TextContent      string         `gorm:"column:text_content;type:text" json:"text_content"` // 管理员粘贴的原始文本
	CreatedAt        time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (AdConfig) TableName() string { return "ad_configs" }

func (a *AdConfig) GetAdUnitIDs() []string {
	arr := []string{}
	if len(a.AdUnitIDs) == 0 {
		return arr
	}
	_ = json.Unmarshal(a.AdUnitIDs, &arr)
	return arr
}

func (a *AdConfig) SetAdUnitIDs(ids []string) {
	if ids == nil {
		ids = []string{}
	}
	b, _ := json.Marshal(ids)
	a.AdUnitIDs = b
}

// AdFields 管理后台提交的结构化广告配置
type AdFields struct {
	PublisherID      string   `json:"publisher_id"`
	MetaTag          string   `json:"meta_tag"`
	VerificationCode string   `json:"verification_code"`
	AdUnitIDs        []string `json:"ad_unit_ids"`
	AdsTxtContent    string   `json:"ads_txt_content"`
	TextContent      string   `json:"text_content"`
}
