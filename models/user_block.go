package models

import "time"

// UserBlock 拉黑关系（blocker 拉黑 blocked）
// 存储是单向的，可见性上按双向处理
type UserBlock struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BlockerID uint64    `gorm:"column:blocker_id;not null;uniqueIndex:uk_blocker_blocked,priority:1" json:"blocker_id"`
	BlockedID uint64    `gorm:"column:blocked_id;not null;uniqueIndex:uk_blocker_blocked,priority:2;index:idx_blocked" json:"blocked_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserBlock) TableName() string {
	return "user_blocks"
}
