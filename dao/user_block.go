package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Moodring/models"
)

var _ BlockReader = (*UserBlockDAO)(nil)

type UserBlockDAO struct {
	Repo[models.UserBlock]
}

func NewUserBlockDAO(db *gorm.DB) *UserBlockDAO {
	return &UserBlockDAO{
		Repo: NewRepo[models.UserBlock](db),
	}
}

func (d *UserBlockDAO) Blocked(ctx context.Context, uid uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Model(ctx).Where("blocker_id = ?", uid).Pluck("blocked_id", &ids).Error
	return ids, storeErr("block.blocked", err)
}

func (d *UserBlockDAO) Blockers(ctx context.Context, uid uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Model(ctx).Where("blocked_id = ?", uid).Pluck("blocker_id", &ids).Error
	return ids, storeErr("block.blockers", err)
}

// Block 幂等写入
func (d *UserBlockDAO) Block(ctx context.Context, blockerID, blockedID uint64) error {
	err := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserBlock{
			BlockerID: blockerID,
			BlockedID: blockedID,
			CreatedAt: time.Now(),
		}).Error
	return storeErr("block.create", err)
}

func (d *UserBlockDAO) Unblock(ctx context.Context, blockerID, blockedID uint64) error {
	err := d.Db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.UserBlock{}).Error
	return storeErr("block.delete", err)
}
