// Package memory 进程内的打卡存储，实现与 gorm 版本一致的查询接口。
// 排序与分页在进程内完成。只有读接口，不参与 wire 注入，
// 供 service/handler 测试和跨实现一致性测试使用。
package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"Moodring/dao"
	"Moodring/internal/feed"
	"Moodring/models"
)

var (
	_ dao.QueryEngine = (*Store)(nil)
	_ dao.BlockReader = (*Store)(nil)
	_ dao.UserReader  = (*Store)(nil)
)

func shard(key uint64) uint32 {
	return uint32(key ^ key>>32)
}

type Store struct {
	checkIns cmap.ConcurrentMap[uint64, *models.CheckIn]
	users    cmap.ConcurrentMap[uint64, *models.User]
	blocks   cmap.ConcurrentMap[uint64, []uint64] // blocker -> blocked
}

func New() *Store {
	return &Store{
		checkIns: cmap.NewWithCustomShardingFunction[uint64, *models.CheckIn](shard),
		users:    cmap.NewWithCustomShardingFunction[uint64, *models.User](shard),
		blocks:   cmap.NewWithCustomShardingFunction[uint64, []uint64](shard),
	}
}

// PutCheckIn 保存副本，调用方后续修改不影响存储
func (s *Store) PutCheckIn(c *models.CheckIn) {
	s.checkIns.Set(c.ID, c.Clone())
}

func (s *Store) DeleteCheckIn(id uint64) {
	s.checkIns.Remove(id)
}

func (s *Store) PutUser(u *models.User) {
	cp := *u
	s.users.Set(u.ID, &cp)
}

func (s *Store) Block(blockerID, blockedID uint64) {
	s.blocks.Upsert(blockerID, []uint64{blockedID}, func(exist bool, old, add []uint64) []uint64 {
		if !exist {
			return add
		}
		if slices.Contains(old, blockedID) {
			return old
		}
		return append(slices.Clone(old), blockedID)
	})
}

func (s *Store) Unblock(blockerID, blockedID uint64) {
	s.blocks.Upsert(blockerID, nil, func(exist bool, old, _ []uint64) []uint64 {
		return slices.DeleteFunc(slices.Clone(old), func(id uint64) bool { return id == blockedID })
	})
}

func (s *Store) match(ctx context.Context, q dao.Query) ([]*models.CheckIn, error) {
	if err := ctx.Err(); err != nil {
		return nil, &dao.StoreError{Op: "memory.scan", Err: err}
	}
	out := make([]*models.CheckIn, 0)
	s.checkIns.IterCb(func(_ uint64, c *models.CheckIn) {
		if q.Match(c) {
			out = append(out, c.Clone())
		}
	})
	return out, nil
}

func (s *Store) Find(ctx context.Context, q dao.Query) ([]*models.CheckIn, error) {
	items, err := s.match(ctx, q)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].OccurredAt.Equal(items[j].OccurredAt) {
			return items[i].OccurredAt.Before(items[j].OccurredAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func candidate(c *models.CheckIn) feed.Candidate {
	return feed.Candidate{
		ID:        c.ID,
		Timestamp: c.OccurredAt,
		Likes:     c.LikeCount,
		Comments:  c.CommentCount,
	}
}

func (s *Store) Rank(ctx context.Context, q dao.Query, p dao.Page) ([]*models.CheckIn, error) {
	items, err := s.match(ctx, q)
	if err != nil {
		return nil, err
	}
	feed.Sort(items, p.Strategy, p.Now, candidate)
	return feed.Paginate(items, p.Skip, p.Limit), nil
}

func (s *Store) Count(ctx context.Context, q dao.Query) (int64, error) {
	items, err := s.match(ctx, q)
	return int64(len(items)), err
}

func (s *Store) Timestamps(ctx context.Context, q dao.Query) ([]time.Time, error) {
	items, err := s.match(ctx, q)
	if err != nil {
		return nil, err
	}
	ts := make([]time.Time, 0, len(items))
	for _, c := range items {
		ts = append(ts, c.OccurredAt)
	}
	return ts, nil
}

func (s *Store) CountByEmotion(ctx context.Context, q dao.Query) (map[string]int64, error) {
	items, err := s.match(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64)
	for _, c := range items {
		out[c.EmotionName]++
	}
	return out, nil
}

func (s *Store) Blocked(ctx context.Context, uid uint64) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, &dao.StoreError{Op: "memory.blocked", Err: err}
	}
	ids, _ := s.blocks.Get(uid)
	return slices.Clone(ids), nil
}

func (s *Store) Blockers(ctx context.Context, uid uint64) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, &dao.StoreError{Op: "memory.blockers", Err: err}
	}
	var out []uint64
	s.blocks.IterCb(func(blocker uint64, blocked []uint64) {
		if slices.Contains(blocked, uid) {
			out = append(out, blocker)
		}
	})
	return out, nil
}

func (s *Store) FindUser(_ context.Context, id uint64) (*models.User, error) {
	u, ok := s.users.Get(id)
	if !ok {
		return nil, dao.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) FindUsers(_ context.Context, ids []uint64) (map[uint64]*models.User, error) {
	out := make(map[uint64]*models.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users.Get(id); ok {
			cp := *u
			out[id] = &cp
		}
	}
	return out, nil
}
