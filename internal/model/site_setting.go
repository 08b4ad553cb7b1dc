package model

import "time"

const (
	SettingWebsiteName = "website_name"
	DefaultWebsiteName = "Arcade Flow"
)

// SiteSetting 管理员可配置的站点键值设置
type SiteSetting struct {
	Key       string    `gorm:"column:setting_key;type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"column:value;type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (SiteSetting) TableName() string { return "site_settings" }

// AllModels AutoMigrate 使用的全部表模型
func AllModels() []interface{} {
	return []interface{}{
		&Game{},
		&Rating{},
		&Comment{},
		&Content{},
		&AdConfig{},
		&SiteSetting{},
	}
}
