package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Moodring/models"
	"Moodring/pkg/database"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// :memory: 库每个连接独立，固定为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func checkIn(id, author uint64, privacy models.Privacy, emotion string, age time.Duration, likes, comments int64) *models.CheckIn {
	return &models.CheckIn{
		ID:           id,
		AuthorID:     author,
		EmotionName:  emotion,
		Privacy:      privacy,
		LikeCount:    likes,
		CommentCount: comments,
		OccurredAt:   now.Add(-age),
	}
}

// seed 公开打卡 1-6 与 feed 包的排序用例一致，7 为私密，8 为仅好友
func seed() []*models.CheckIn {
	return []*models.CheckIn{
		checkIn(1, 10, models.PrivacyPublic, "joy", time.Hour, 0, 0),
		checkIn(2, 11, models.PrivacyPublic, "calm", 50*time.Hour, 10, 5),
		checkIn(3, 12, models.PrivacyPublic, "joy", 2*time.Hour, 4, 0),
		checkIn(4, 10, models.PrivacyPublic, "sad", 2*time.Hour, 0, 2),
		checkIn(5, 11, models.PrivacyPublic, "joy", 300*time.Hour, 1, 1),
		checkIn(6, 12, models.PrivacyPublic, "calm", time.Hour, 0, 0),
		checkIn(7, 10, models.PrivacyPrivate, "anger", 3*time.Hour, 100, 100),
		checkIn(8, 13, models.PrivacyFriends, "joy", 4*time.Hour, 0, 0),
	}
}

func ids(items []*models.CheckIn) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

var ctx = context.Background()
