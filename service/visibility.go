package service

import (
	"context"

	"Moodring/dao"
)

var _ IVisibilityService = (*VisibilityService)(nil)

type IVisibilityService interface {
	ExcludedAuthors(ctx context.Context, viewer uint64) ([]uint64, error)
}

// VisibilityService 拉黑在存储上单向，可见性上双向
type VisibilityService struct {
	Blocks dao.BlockReader
}

// ExcludedAuthors 返回 viewer 拉黑的人与拉黑 viewer 的人的并集，无序去重
// 任一查询失败直接返回错误，不能当作空集合
func (s *VisibilityService) ExcludedAuthors(ctx context.Context, viewer uint64) ([]uint64, error) {
	blocked, err := s.Blocks.Blocked(ctx, viewer)
	if err != nil {
		return nil, err
	}
	blockers, err := s.Blocks.Blockers(ctx, viewer)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]struct{}, len(blocked)+len(blockers))
	out := make([]uint64, 0, len(blocked)+len(blockers))
	for _, list := range [][]uint64{blocked, blockers} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out, nil
}
