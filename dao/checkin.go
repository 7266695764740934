package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Moodring/internal/feed"
	"Moodring/models"
)

var _ QueryEngine = (*CheckInDAO)(nil)

type CheckInDAO struct {
	Repo[models.CheckIn]
}

func NewCheckInDAO(db *gorm.DB) *CheckInDAO {
	return &CheckInDAO{
		Repo: NewRepo[models.CheckIn](db),
	}
}

func (d *CheckInDAO) scope(ctx context.Context, q Query) *gorm.DB {
	tx := d.Model(ctx)
	if q.AuthorID != 0 {
		tx = tx.Where("author_id = ?", q.AuthorID)
	}
	if q.Privacy != "" {
		tx = tx.Where("privacy = ?", q.Privacy)
	}
	if len(q.ExcludeAuthors) > 0 {
		tx = tx.Where("author_id NOT IN ?", q.ExcludeAuthors)
	}
	// 与入库一致转成 UTC，否则 SQLite 下会按带时区偏移的字符串比较
	if !q.Since.IsZero() {
		tx = tx.Where("occurred_at >= ?", q.Since.UTC())
	}
	if !q.Until.IsZero() {
		tx = tx.Where("occurred_at < ?", q.Until.UTC())
	}
	return tx
}

func (d *CheckInDAO) Find(ctx context.Context, q Query) ([]*models.CheckIn, error) {
	var items []*models.CheckIn
	err := d.scope(ctx, q).
		Order("occurred_at ASC, id ASC").
		Find(&items).Error
	return items, storeErr("checkin.find", err)
}

// relevanceOrder 与 feed.RelevanceScore 同一公式，用毫秒时间戳保证 MySQL/SQLite 通用
const relevanceOrder = `0.4 * (CASE WHEN 100 - 0.5 * ((? - occurred_at_ms) / 3600000.0) > 0
	THEN 100 - 0.5 * ((? - occurred_at_ms) / 3600000.0) ELSE 0 END)
	+ 0.8 * like_count + 1.2 * comment_count DESC, occurred_at DESC, id DESC`

// Rank 排序下推到数据库
func (d *CheckInDAO) Rank(ctx context.Context, q Query, p Page) ([]*models.CheckIn, error) {
	tx := d.scope(ctx, q)
	switch p.Strategy {
	case feed.Chronological:
		tx = tx.Order("occurred_at DESC, id DESC")
	case feed.Popularity:
		tx = tx.Order("like_count + 2 * comment_count DESC, occurred_at DESC, id DESC")
	default:
		ms := p.Now.UnixMilli()
		tx = tx.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                relevanceOrder,
			Vars:               []any{ms, ms},
			WithoutParentheses: true,
		}})
	}

	var items []*models.CheckIn
	err := tx.Offset(p.Skip).Limit(p.Limit).Find(&items).Error
	return items, storeErr("checkin.rank", err)
}

func (d *CheckInDAO) Count(ctx context.Context, q Query) (int64, error) {
	var count int64
	err := d.scope(ctx, q).Count(&count).Error
	return count, storeErr("checkin.count", err)
}

// Timestamps 只取事件时间，用于连续打卡计算
func (d *CheckInDAO) Timestamps(ctx context.Context, q Query) ([]time.Time, error) {
	var ts []time.Time
	err := d.scope(ctx, q).
		Order("occurred_at DESC").
		Pluck("occurred_at", &ts).Error
	return ts, storeErr("checkin.timestamps", err)
}

// CountByEmotion 按情绪名分组计数
func (d *CheckInDAO) CountByEmotion(ctx context.Context, q Query) (map[string]int64, error) {
	var rows []struct {
		EmotionName string
		Total       int64
	}
	err := d.scope(ctx, q).
		Select("emotion_name, COUNT(*) AS total").
		Group("emotion_name").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr("checkin.count_by_emotion", err)
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.EmotionName] = r.Total
	}
	return out, nil
}

func (d *CheckInDAO) FindByID(ctx context.Context, id uint64) (*models.CheckIn, error) {
	item, err := d.FindById(ctx, id)
	return item, storeErr("checkin.find_by_id", err)
}

func (d *CheckInDAO) Create(ctx context.Context, c *models.CheckIn) error {
	return storeErr("checkin.create", d.Repo.Create(ctx, c))
}

// Delete 硬删除打卡及其点赞、评论
func (d *CheckInDAO) Delete(ctx context.Context, id uint64) error {
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("check_in_id = ?", id).Delete(&models.CheckInLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("check_in_id = ?", id).Delete(&models.CheckInComment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.CheckIn{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
	return storeErr("checkin.delete", err)
}
