package dao

import (
	"context"

	"gorm.io/gorm"

	"Moodring/models"
)

type CheckInCommentDAO struct {
	Repo[models.CheckInComment]
}

func NewCheckInCommentDAO(db *gorm.DB) *CheckInCommentDAO {
	return &CheckInCommentDAO{
		Repo: NewRepo[models.CheckInComment](db),
	}
}

// Create 写评论并同步评论数
func (d *CheckInCommentDAO) Create(ctx context.Context, comment *models.CheckInComment) error {
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.CheckIn{}).
			Where("id = ?", comment.CheckInID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
	})
	return storeErr("comment.create", err)
}

// ListByCheckIn 按时间正序
func (d *CheckInCommentDAO) ListByCheckIn(ctx context.Context, checkInID uint64, offset, limit int) ([]*models.CheckInComment, error) {
	var comments []*models.CheckInComment
	err := d.Db.WithContext(ctx).
		Where("check_in_id = ?", checkInID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, storeErr("comment.list", err)
}
