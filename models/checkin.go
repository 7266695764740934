package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyFriends Privacy = "friends" // 接受但排序层不做特殊处理
	PrivacyPrivate Privacy = "private"
)

func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyFriends, PrivacyPrivate:
		return true
	}
	return false
}

// Attributes 情绪的四个归一化维度，取值 [0,1]
type Attributes struct {
	Pleasantness float64 `gorm:"column:pleasantness;not null;default:0" json:"pleasantness"`
	Intensity    float64 `gorm:"column:intensity;not null;default:0" json:"intensity"`
	Control      float64 `gorm:"column:control;not null;default:0" json:"control"`
	Clarity      float64 `gorm:"column:clarity;not null;default:0" json:"clarity"`
}

// CheckIn 情绪打卡
// 对应表 check_ins
// occurred_at 为事件时间（可早于 created_at），排序与统计窗口都基于它
type CheckIn struct {
	ID           uint64                      `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	AuthorID     uint64                      `gorm:"column:author_id;not null;index:idx_author_occurred,priority:1" json:"author_id"`
	EmotionName  string                      `gorm:"column:emotion_name;type:varchar(64);not null" json:"emotion_name"`
	Attributes   Attributes                  `gorm:"embedded" json:"attributes"`
	Reason       string                      `gorm:"column:reason;type:varchar(500);not null;default:''" json:"reason"`
	People       datatypes.JSONSlice[string] `gorm:"column:people" json:"people"`
	Activities   datatypes.JSONSlice[string] `gorm:"column:activities" json:"activities"`
	LandmarkName *string                     `gorm:"column:landmark_name;type:varchar(255)" json:"landmark_name,omitempty"`
	Longitude    *float64                    `gorm:"column:longitude" json:"longitude,omitempty"`
	Latitude     *float64                    `gorm:"column:latitude" json:"latitude,omitempty"`
	Privacy      Privacy                     `gorm:"column:privacy;type:varchar(16);not null;default:'public';index:idx_privacy_occurred,priority:1" json:"privacy"`
	LikeCount    int64                       `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CommentCount int64                       `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	OccurredAt   time.Time                   `gorm:"column:occurred_at;not null;index:idx_author_occurred,priority:2" json:"timestamp"`
	OccurredAtMs int64                       `gorm:"column:occurred_at_ms;not null;index:idx_privacy_occurred,priority:2" json:"-"`
	CreatedAt    time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}

// BeforeSave 事件时间统一存 UTC，SQLite 按文本比较时间列；
// 同时同步毫秒时间戳，供相关度排序在各数据库方言下做算术
func (c *CheckIn) BeforeSave(*gorm.DB) error {
	c.OccurredAt = c.OccurredAt.UTC()
	c.OccurredAtMs = c.OccurredAt.UnixMilli()
	return nil
}

// Clone 深拷贝，内存存储返回快照用
func (c *CheckIn) Clone() *CheckIn {
	cp := *c
	cp.People = append(datatypes.JSONSlice[string](nil), c.People...)
	cp.Activities = append(datatypes.JSONSlice[string](nil), c.Activities...)
	return &cp
}
