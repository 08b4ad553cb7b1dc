package model

// Comment 游戏评论，只追加不修改；ID 记录写入顺序，用于同一时间戳下的稳定排序
type Comment struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GameID      uint64 `gorm:"column:game_id;not null;index" json:"game_id"`
	UserID      string `gorm:"column:user_id;type:varchar(64);not null" json:"user_id"`
	Username    string `gorm:"column:username;type:varchar(64)" json:"username"`
	CommentText string `gorm:"column:comment_text;type:text;not null" json:"comment_text"`
	Timestamp   int64  `gorm:"column:posted_at;not null;index" json:"timestamp"` // 毫秒时间戳
}

func (Comment) TableName() string { return "comments" }
