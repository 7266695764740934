package service

import (
	"context"
	"errors"
	"time"

	"Moodring/dao"
	"Moodring/dao/cache"
	"Moodring/internal/analytics"
	"Moodring/internal/feed"
	"Moodring/pkg/response"
	"Moodring/types"
)

const recentCheckinsLimit = 3

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	GetSummary(ctx context.Context, uid uint64) (*types.ProfileSummaryResponse, error)
}

type ProfileService struct {
	Engine   dao.QueryEngine
	Users    dao.UserReader
	Cache    *cache.SnapshotStorage
	Now      Clock
	Location *time.Location
}

func (s *ProfileService) GetSummary(ctx context.Context, uid uint64) (*types.ProfileSummaryResponse, error) {
	return cache.Fetch(ctx, s.Cache, cache.SummaryKey(uid), func(ctx context.Context) (*types.ProfileSummaryResponse, error) {
		return s.summary(ctx, uid)
	})
}

func (s *ProfileService) summary(ctx context.Context, uid uint64) (*types.ProfileSummaryResponse, error) {
	user, err := s.Users.FindUser(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return nil, response.NotFound("用户不存在")
	}
	if err != nil {
		return nil, err
	}

	now := s.Now()
	mine := dao.Query{AuthorID: uid}

	total, err := s.Engine.Count(ctx, mine)
	if err != nil {
		return nil, err
	}

	timestamps, err := s.Engine.Timestamps(ctx, mine)
	if err != nil {
		return nil, err
	}

	emotions, err := s.Engine.CountByEmotion(ctx, mine)
	if err != nil {
		return nil, err
	}

	recent, err := s.Engine.Rank(ctx, mine, dao.Page{Strategy: feed.Chronological, Limit: recentCheckinsLimit, Now: now})
	if err != nil {
		return nil, err
	}

	week, err := s.Engine.Find(ctx, windowQuery(uid, analytics.Week.Resolve(now, s.Location)))
	if err != nil {
		return nil, err
	}

	items := make([]*types.CheckInItem, 0, len(recent))
	for _, c := range recent {
		items = append(items, types.NewCheckInItem(c, user.Username))
	}

	return &types.ProfileSummaryResponse{
		Username:       user.Username,
		TotalCheckins:  total,
		CheckinStreak:  analytics.CurrentStreak(timestamps, now, s.Location),
		TopMood:        analytics.TopFromCounts(emotions),
		RecentCheckins: items,
		WeeklySummary:  analytics.Summarize(week),
	}, nil
}
