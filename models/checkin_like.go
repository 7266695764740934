package models

import "time"

// CheckInLike 点赞记录
// 对应表 check_in_likes
// 唯一键: check_in_id + user_id，保证同一用户只计一次
type CheckInLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CheckInID uint64    `gorm:"column:check_in_id;not null;uniqueIndex:uk_checkin_user,priority:1" json:"check_in_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_checkin_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CheckInLike) TableName() string { return "check_in_likes" }
