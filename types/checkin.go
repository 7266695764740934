package types

import (
	"time"

	"Moodring/models"
)

// AttributesRequest 指针字段使 0 也能通过 required 校验
type AttributesRequest struct {
	Pleasantness *float64 `json:"pleasantness" binding:"required,min=0,max=1"`
	Intensity    *float64 `json:"intensity" binding:"required,min=0,max=1"`
	Control      *float64 `json:"control" binding:"required,min=0,max=1"`
	Clarity      *float64 `json:"clarity" binding:"required,min=0,max=1"`
}

type EmotionRequest struct {
	Name       string            `json:"name" binding:"required,max=64"`
	Attributes AttributesRequest `json:"attributes"`
}

type LocationRequest struct {
	LandmarkName *string  `json:"landmarkName" binding:"omitempty,max=255"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
}

// CreateCheckInRequest 新建打卡
type CreateCheckInRequest struct {
	Emotion    EmotionRequest   `json:"emotion"`
	Reason     string           `json:"reason" binding:"max=500"`
	People     []string         `json:"people" binding:"max=50,dive,max=64"`
	Activities []string         `json:"activities" binding:"max=50,dive,max=64"`
	Location   *LocationRequest `json:"location"`
	Privacy    string           `json:"privacy" binding:"omitempty,oneof=public friends private"`
	Timestamp  *time.Time       `json:"timestamp"` // 补录时传入，缺省为当前时间
}

type Emotion struct {
	Name       string            `json:"name"`
	Attributes models.Attributes `json:"attributes"`
}

type Location struct {
	LandmarkName *string  `json:"landmarkName,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
}

// CheckInItem 信息流与个人主页共用的打卡展示结构
type CheckInItem struct {
	ID            uint64    `json:"id,string"`
	AuthorID      uint64    `json:"authorId,string"`
	Username      string    `json:"username"`
	Emotion       Emotion   `json:"emotion"`
	Reason        string    `json:"reason"`
	People        []string  `json:"people"`
	Activities    []string  `json:"activities"`
	Location      *Location `json:"location,omitempty"`
	Privacy       string    `json:"privacy"`
	LikesCount    int64     `json:"likesCount"`
	CommentsCount int64     `json:"commentsCount"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewCheckInItem 模型转展示结构，username 由调用方批量查询后传入
func NewCheckInItem(c *models.CheckIn, username string) *CheckInItem {
	item := &CheckInItem{
		ID:            c.ID,
		AuthorID:      c.AuthorID,
		Username:      username,
		Emotion:       Emotion{Name: c.EmotionName, Attributes: c.Attributes},
		Reason:        c.Reason,
		People:        append([]string{}, c.People...),
		Activities:    append([]string{}, c.Activities...),
		Privacy:       string(c.Privacy),
		LikesCount:    c.LikeCount,
		CommentsCount: c.CommentCount,
		Timestamp:     c.OccurredAt,
	}
	if c.LandmarkName != nil || c.Longitude != nil || c.Latitude != nil {
		item.Location = &Location{
			LandmarkName: c.LandmarkName,
			Longitude:    c.Longitude,
			Latitude:     c.Latitude,
		}
	}
	return item
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type CommentResponse struct {
	ID        uint64    `json:"id,string"`
	CheckInID uint64    `json:"checkinId,string"`
	AuthorID  uint64    `json:"authorId,string"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// LikeResponse changed 为 false 表示重复点赞或本来就没赞
type LikeResponse struct {
	Liked   bool `json:"liked"`
	Changed bool `json:"changed"`
}

type ListCommentsRequest struct {
	Skip  int  `form:"skip" binding:"min=0"`
	Limit *int `form:"limit"`
}
