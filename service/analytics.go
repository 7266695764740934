package service

import (
	"context"
	"time"

	"Moodring/dao"
	"Moodring/dao/cache"
	"Moodring/internal/analytics"
	"Moodring/types"
)

var _ IAnalyticsService = (*AnalyticsService)(nil)

type IAnalyticsService interface {
	GetAnalytics(ctx context.Context, uid uint64, period analytics.Period) (*types.AnalyticsResponse, error)
}

type AnalyticsService struct {
	Engine   dao.QueryEngine
	Cache    *cache.SnapshotStorage
	Now      Clock
	Location *time.Location
}

func windowQuery(uid uint64, w analytics.Window) dao.Query {
	q := dao.Query{AuthorID: uid, Until: w.End}
	if w.Start != nil {
		q.Since = *w.Start
	}
	return q
}

// GetAnalytics 一次取出窗口内的打卡，在进程内完成各项分组统计
func (s *AnalyticsService) GetAnalytics(ctx context.Context, uid uint64, period analytics.Period) (*types.AnalyticsResponse, error) {
	key := cache.AnalyticsKey(uid, string(period))
	return cache.Fetch(ctx, s.Cache, key, func(ctx context.Context) (*types.AnalyticsResponse, error) {
		w := period.Resolve(s.Now(), s.Location)
		items, err := s.Engine.Find(ctx, windowQuery(uid, w))
		if err != nil {
			return nil, err
		}

		return &types.AnalyticsResponse{
			Period:                 string(period),
			DateRange:              w,
			AverageMoodForPeriod:   analytics.Summarize(items),
			AverageMoodByDayOfWeek: analytics.ByDayOfWeek(items, s.Location),
			AverageMoodByActivity:  analytics.ByContext(items, analytics.ContextActivity),
			AverageMoodByPeople:    analytics.ByContext(items, analytics.ContextPerson),
		}, nil
	})
}
