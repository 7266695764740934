package service

import (
	"context"

	"Moodring/dao"
	"Moodring/dao/cache"
	"Moodring/internal/feed"
	"Moodring/models"
	"Moodring/types"
)

var _ IFeedService = (*FeedService)(nil)

// FeedQuery 已通过校验的信息流参数
type FeedQuery struct {
	Strategy feed.Strategy
	Skip     int
	Limit    int
}

type IFeedService interface {
	GetFeed(ctx context.Context, viewer uint64, q FeedQuery) ([]*types.CheckInItem, error)
}

type FeedService struct {
	Engine     dao.QueryEngine
	Users      dao.UserReader
	Visibility IVisibilityService
	Cache      *cache.SnapshotStorage
	Now        Clock
}

func (s *FeedService) GetFeed(ctx context.Context, viewer uint64, q FeedQuery) ([]*types.CheckInItem, error) {
	gen, ok := s.Cache.FeedGeneration(ctx)
	if !ok {
		return s.rank(ctx, viewer, q)
	}
	key := cache.FeedKey(viewer, gen, string(q.Strategy), q.Skip, q.Limit)
	return cache.Fetch(ctx, s.Cache, key, func(ctx context.Context) ([]*types.CheckInItem, error) {
		return s.rank(ctx, viewer, q)
	})
}

func (s *FeedService) rank(ctx context.Context, viewer uint64, q FeedQuery) ([]*types.CheckInItem, error) {
	exclude, err := s.Visibility.ExcludedAuthors(ctx, viewer)
	if err != nil {
		return nil, err
	}

	items, err := s.Engine.Rank(ctx,
		dao.Query{Privacy: models.PrivacyPublic, ExcludeAuthors: exclude},
		dao.Page{Strategy: q.Strategy, Skip: q.Skip, Limit: q.Limit, Now: s.Now()},
	)
	if err != nil {
		return nil, err
	}
	return project(ctx, s.Users, items)
}

// project 批量补全作者用户名
func project(ctx context.Context, users dao.UserReader, items []*models.CheckIn) ([]*types.CheckInItem, error) {
	out := make([]*types.CheckInItem, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}

	ids := make([]uint64, 0, len(items))
	for _, c := range items {
		ids = append(ids, c.AuthorID)
	}
	authors, err := users.FindUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, c := range items {
		var name string
		if u, ok := authors[c.AuthorID]; ok {
			name = u.Username
		}
		out = append(out, types.NewCheckInItem(c, name))
	}
	return out, nil
}
