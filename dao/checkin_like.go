package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Moodring/models"
)

type CheckInLikeDAO struct {
	Repo[models.CheckInLike]
}

func NewCheckInLikeDAO(db *gorm.DB) *CheckInLikeDAO {
	return &CheckInLikeDAO{
		Repo: NewRepo[models.CheckInLike](db),
	}
}

// Like 点赞，重复点赞返回 false 且不改计数
func (d *CheckInLikeDAO) Like(ctx context.Context, checkInID, userID uint64) (bool, error) {
	created := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.CheckInLike{
			CheckInID: checkInID,
			UserID:    userID,
			CreatedAt: time.Now(),
		})
		if res.Error != nil || res.RowsAffected == 0 {
			return res.Error
		}
		created = true
		return tx.Model(&models.CheckIn{}).
			Where("id = ?", checkInID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
	return created, storeErr("like.create", err)
}

// Unlike 取消点赞，未点赞时返回 false
func (d *CheckInLikeDAO) Unlike(ctx context.Context, checkInID, userID uint64) (bool, error) {
	removed := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("check_in_id = ? AND user_id = ?", checkInID, userID).
			Delete(&models.CheckInLike{})
		if res.Error != nil || res.RowsAffected == 0 {
			return res.Error
		}
		removed = true
		return tx.Model(&models.CheckIn{}).
			Where("id = ? AND like_count > 0", checkInID).
			UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
	})
	return removed, storeErr("like.delete", err)
}
