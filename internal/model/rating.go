package model

import "unicode/utf8"

const (
	MinRating = 1
	MaxRating = 5

	// MaxUserIDLength / MaxUsernameLength 与 varchar(64) 列宽一致，按字符计
	MaxUserIDLength   = 64
	MaxUsernameLength = 64
)

// Rating 用户对游戏的评分，(game_id, user_id) 为复合主键，重复提交即覆盖
type Rating struct {
	GameID    uint64 `gorm:"column:game_id;primaryKey;autoIncrement:false" json:"game_id"`
	UserID    string `gorm:"column:user_id;type:varchar(64);primaryKey" json:"user_id"`
	Rating    int    `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Timestamp int64  `gorm:"column:rated_at;not null" json:"timestamp"` // 毫秒时间戳
}

func (Rating) TableName() string { return "ratings" }

// ValidRating 评分必须是 1..5 的整数
func ValidRating(r int) bool { return r >= MinRating && r <= MaxRating }

// FitsColumn 字符数不超过 limit
func FitsColumn(s string, limit int) bool { return utf8.RuneCountInString(s) <= limit }
