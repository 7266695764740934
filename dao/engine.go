package dao

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"gorm.io/gorm"

	"Moodring/internal/feed"
	"Moodring/models"
)

// ErrRecordNotFound 各存储实现统一使用 gorm 的未找到错误
var ErrRecordNotFound = gorm.ErrRecordNotFound

// StoreError 存储层失败，对外只暴露为内部错误
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// Query 打卡过滤条件，零值字段不参与过滤
// 时间范围为 [Since, Until)
type Query struct {
	AuthorID       uint64
	Privacy        models.Privacy
	ExcludeAuthors []uint64
	Since          time.Time
	Until          time.Time
}

// Match 进程内实现使用，与 SQL 条件保持一致
func (q Query) Match(c *models.CheckIn) bool {
	if q.AuthorID != 0 && c.AuthorID != q.AuthorID {
		return false
	}
	if q.Privacy != "" && c.Privacy != q.Privacy {
		return false
	}
	if slices.Contains(q.ExcludeAuthors, c.AuthorID) {
		return false
	}
	if !q.Since.IsZero() && c.OccurredAt.Before(q.Since) {
		return false
	}
	if !q.Until.IsZero() && !c.OccurredAt.Before(q.Until) {
		return false
	}
	return true
}

// Page 排序与分页参数，Now 为相关度计算的参考时间
type Page struct {
	Strategy feed.Strategy
	Skip     int
	Limit    int
	Now      time.Time
}

// QueryEngine 打卡查询能力
type QueryEngine interface {
	// Find 按 occurred_at ASC, id ASC 返回全部命中
	Find(ctx context.Context, q Query) ([]*models.CheckIn, error)
	// Rank 按策略排序后分页
	Rank(ctx context.Context, q Query, p Page) ([]*models.CheckIn, error)
	Count(ctx context.Context, q Query) (int64, error)
	Timestamps(ctx context.Context, q Query) ([]time.Time, error)
	CountByEmotion(ctx context.Context, q Query) (map[string]int64, error)
}

// BlockReader 屏蔽关系查询
type BlockReader interface {
	// Blocked 被 uid 屏蔽的用户
	Blocked(ctx context.Context, uid uint64) ([]uint64, error)
	// Blockers 屏蔽了 uid 的用户
	Blockers(ctx context.Context, uid uint64) ([]uint64, error)
}

type UserReader interface {
	FindUser(ctx context.Context, id uint64) (*models.User, error)
	FindUsers(ctx context.Context, ids []uint64) (map[uint64]*models.User, error)
}
