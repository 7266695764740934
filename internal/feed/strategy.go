// Package feed 公共广场的排序策略：打分函数、比较器与分页参数。
//
// SQL 实现（dao.CheckInDAO）与内存实现（dao/memory）都以这里的定义为准。
package feed

import (
	"fmt"
	"sort"
	"time"
)

type Strategy string

const (
	Chronological Strategy = "timestamp"
	Popularity    Strategy = "hottest"
	Relevance     Strategy = "relevance"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// 相关度权重
const (
	RecencyCeiling      = 100.0
	RecencyDecayPerHour = 0.5
	RecencyWeight       = 0.4
	LikeWeight          = 0.8
	CommentWeight       = 1.2
)

// ParseStrategy 空值按相关度处理，未知值报错
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return Relevance, nil
	case Chronological, Popularity, Relevance:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown sort %q, expect timestamp|hottest|relevance", s)
}

// ClampLimit 限制在 [1, MaxLimit]
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Candidate 排序所需的最小字段
type Candidate struct {
	ID        uint64
	Timestamp time.Time
	Likes     int64
	Comments  int64
}

// PopularityScore likes + 2×comments
func PopularityScore(likes, comments int64) int64 {
	return likes + 2*comments
}

// Recency max(0, 100 - 0.5×ageHours)
func Recency(now, ts time.Time) float64 {
	ageHours := now.Sub(ts).Hours()
	r := RecencyCeiling - RecencyDecayPerHour*ageHours
	if r < 0 {
		return 0
	}
	return r
}

// RelevanceScore 0.4×recency + 0.8×likes + 1.2×comments
func RelevanceScore(now, ts time.Time, likes, comments int64) float64 {
	return RecencyWeight*Recency(now, ts) + LikeWeight*float64(likes) + CommentWeight*float64(comments)
}

// newer 时间倒序，id 倒序兜底，保证分页稳定
func newer(a, b Candidate) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.ID > b.ID
}

// Less 返回 a 是否应排在 b 之前
func Less(s Strategy, now time.Time) func(a, b Candidate) bool {
	switch s {
	case Popularity:
		return func(a, b Candidate) bool {
			sa, sb := PopularityScore(a.Likes, a.Comments), PopularityScore(b.Likes, b.Comments)
			if sa != sb {
				return sa > sb
			}
			return newer(a, b)
		}
	case Relevance:
		return func(a, b Candidate) bool {
			sa := RelevanceScore(now, a.Timestamp, a.Likes, a.Comments)
			sb := RelevanceScore(now, b.Timestamp, b.Likes, b.Comments)
			if sa != sb {
				return sa > sb
			}
			return newer(a, b)
		}
	default:
		return newer
	}
}

// Sort 原地排序，key 把元素映射为 Candidate
func Sort[T any](items []T, s Strategy, now time.Time, key func(T) Candidate) {
	less := Less(s, now)
	sort.SliceStable(items, func(i, j int) bool {
		return less(key(items[i]), key(items[j]))
	})
}

// Paginate offset 分页，越界返回空切片
func Paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
