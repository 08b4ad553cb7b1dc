package model

import (
	"strings"
	"time"
)

// Game 游戏目录中的一条记录，id 由仓储按 max(id)+1 分配
type Game struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(256);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;type:varchar(64);index;not null" json:"category"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
	GameURL     string    `gorm:"column:game_url;type:varchar(512)" json:"game_url"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Game) TableName() string { return "games" }

// GameFields 创建/更新游戏时提交的字段，nil 表示未提供（更新时保留原值）
type GameFields struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	GameURL     *string `json:"game_url"`
}

// Apply 将已提供的字段去除首尾空白后合并到 g
func (f GameFields) Apply(g *Game) {
	if f.Title != nil {
		g.Title = strings.TrimSpace(*f.Title)
	}
	if f.Description != nil {
		g.Description = strings.TrimSpace(*f.Description)
	}
	if f.Category != nil {
		g.Category = strings.TrimSpace(*f.Category)
	}
	if f.ImageURL != nil {
		g.ImageURL = strings.TrimSpace(*f.ImageURL)
	}
	if f.GameURL != nil {
		g.GameURL = strings.TrimSpace(*f.GameURL)
	}
}
