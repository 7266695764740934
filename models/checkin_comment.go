package models

import "time"

// CheckInComment 打卡评论，按时间正序
type CheckInComment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	CheckInID uint64    `gorm:"column:check_in_id;not null;index:idx_checkin_created,priority:1" json:"check_in_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null" json:"author_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_checkin_created,priority:2" json:"timestamp"`
}

func (CheckInComment) TableName() string {
	return "check_in_comments"
}
