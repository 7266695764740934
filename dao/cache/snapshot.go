package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"Moodring/config"
	"Moodring/pkg/log"
)

const keyPrefix = "moodring"

// SnapshotStorage 查询结果快照
// 键一定包含所属用户 id，过期时间由 cache.ttl_seconds 决定
// redis 为 nil 时所有读取直接回源
type SnapshotStorage struct {
	redis *redis.Client
	ttl   time.Duration
	group singleflight.Group
}

func NewSnapshotStorage(rds *redis.Client, conf *config.Config) *SnapshotStorage {
	return &SnapshotStorage{redis: rds, ttl: conf.Cache.TTL()}
}

func (s *SnapshotStorage) Enabled() bool {
	return s != nil && s.redis != nil
}

// feedGenKey 公开信息流的代数，不在任何用户的 feed 前缀下
const feedGenKey = keyPrefix + ":feed_gen"

// FeedKey moodring:feed:{uid}:{gen}:{sort}:{skip}:{limit}
func FeedKey(uid uint64, gen int64, sort string, skip, limit int) string {
	return fmt.Sprintf("%s:feed:%d:%d:%s:%d:%d", keyPrefix, uid, gen, sort, skip, limit)
}

// AnalyticsKey moodring:analytics:{uid}:{period}
func AnalyticsKey(uid uint64, period string) string {
	return fmt.Sprintf("%s:analytics:%d:%s", keyPrefix, uid, period)
}

// SummaryKey moodring:summary:{uid}
func SummaryKey(uid uint64) string {
	return fmt.Sprintf("%s:summary:%d", keyPrefix, uid)
}

// Fetch 先读快照，未命中时回源并回写
// 同一个键的并发回源只执行一次；redis 出错时退化为直接回源，不返回过期数据
func Fetch[T any](ctx context.Context, s *SnapshotStorage, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if !s.Enabled() {
		return load(ctx)
	}

	var out T
	raw, err := s.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err = json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		log.L.Warn("snapshot decode failed", zap.String("key", key), zap.Error(err))
	case !errors.Is(err, redis.Nil):
		log.L.Warn("snapshot read failed", zap.String("key", key), zap.Error(err))
		return load(ctx)
	}

	ch := s.group.DoChan(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.store(ctx, key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return out, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			// 共享回源的发起方已断开，当前请求自行回源
			if res.Shared && ctx.Err() == nil && isCanceled(res.Err) {
				return load(ctx)
			}
			return out, res.Err
		}
		return res.Val.(T), nil
	}
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *SnapshotStorage) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.L.Warn("snapshot encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.redis.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		log.L.Warn("snapshot write failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateUser 清理用户自己的统计快照
func (s *SnapshotStorage) InvalidateUser(ctx context.Context, uid uint64) {
	if !s.Enabled() {
		return
	}
	s.del(ctx, SummaryKey(uid))
	s.scanDel(ctx, fmt.Sprintf("%s:analytics:%d:*", keyPrefix, uid))
}

// FeedGeneration 读取当前信息流代数，键不存在时为 0
// 缓存关闭或读取失败返回 false，调用方不走缓存
func (s *SnapshotStorage) FeedGeneration(ctx context.Context) (int64, bool) {
	if !s.Enabled() {
		return 0, false
	}
	gen, err := s.redis.Get(ctx, feedGenKey).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return 0, true
	case err != nil:
		log.L.Warn("feed generation read failed", zap.Error(err))
		return 0, false
	}
	return gen, true
}

// BumpFeedGeneration 公开打卡被删除后递增代数，所有查看者的旧快照不再命中
func (s *SnapshotStorage) BumpFeedGeneration(ctx context.Context) {
	if !s.Enabled() {
		return
	}
	if err := s.redis.Incr(ctx, feedGenKey).Err(); err != nil {
		log.L.Warn("feed generation bump failed", zap.Error(err))
	}
}

// InvalidateFeed 清理用户的信息流快照
func (s *SnapshotStorage) InvalidateFeed(ctx context.Context, uid uint64) {
	if !s.Enabled() {
		return
	}
	s.scanDel(ctx, fmt.Sprintf("%s:feed:%d:*", keyPrefix, uid))
}

func (s *SnapshotStorage) del(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		log.L.Warn("snapshot delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (s *SnapshotStorage) scanDel(ctx context.Context, pattern string) {
	var keys []string
	iter := s.redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.L.Warn("snapshot scan failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	s.del(ctx, keys...)
}
