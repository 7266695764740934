package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"Moodring/dao"
	"Moodring/dao/memory"
	"Moodring/internal/feed"
	"Moodring/models"
	"Moodring/pkg/response"
)

var (
	ctx     = context.Background()
	now     = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	errDown = errors.New("connection refused")
)

func fixedClock() time.Time { return now }

// failingBlocks 模拟屏蔽关系查询失败
type failingBlocks struct {
	blockedErr, blockersErr error
}

func (f failingBlocks) Blocked(context.Context, uint64) ([]uint64, error) {
	return []uint64{9}, f.blockedErr
}

func (f failingBlocks) Blockers(context.Context, uint64) ([]uint64, error) {
	return nil, f.blockersErr
}

// failingEngine 所有查询都失败
type failingEngine struct{ dao.QueryEngine }

func (failingEngine) Find(context.Context, dao.Query) ([]*models.CheckIn, error) {
	return nil, &dao.StoreError{Op: "find", Err: errDown}
}

func (failingEngine) Rank(context.Context, dao.Query, dao.Page) ([]*models.CheckIn, error) {
	return nil, &dao.StoreError{Op: "rank", Err: errDown}
}

func (failingEngine) Count(context.Context, dao.Query) (int64, error) {
	return 0, &dao.StoreError{Op: "count", Err: errDown}
}

type fixture struct {
	store *memory.Store
	seq   uint64
}

func newFixture(users ...string) *fixture {
	f := &fixture{store: memory.New()}
	for i, name := range users {
		f.store.PutUser(&models.User{ID: uint64(i + 1), Username: name})
	}
	return f
}

func (f *fixture) add(author uint64, privacy models.Privacy, emotion string, at time.Time, mutate ...func(*models.CheckIn)) *models.CheckIn {
	f.seq++
	c := &models.CheckIn{
		ID:          f.seq,
		AuthorID:    author,
		EmotionName: emotion,
		Privacy:     privacy,
		OccurredAt:  at,
		Attributes:  models.Attributes{Pleasantness: 0.5, Intensity: 0.5, Control: 0.5, Clarity: 0.5},
	}
	for _, m := range mutate {
		m(c)
	}
	f.store.PutCheckIn(c)
	return c
}

func (f *fixture) feed() *FeedService {
	return &FeedService{
		Engine:     f.store,
		Users:      f.store,
		Visibility: &VisibilityService{Blocks: f.store},
		Now:        fixedClock,
	}
}

func (f *fixture) analytics() *AnalyticsService {
	return &AnalyticsService{Engine: f.store, Now: fixedClock, Location: time.UTC}
}

func (f *fixture) profile() *ProfileService {
	return &ProfileService{Engine: f.store, Users: f.store, Now: fixedClock, Location: time.UTC}
}

func activities(tags ...string) func(*models.CheckIn) {
	return func(c *models.CheckIn) { c.Activities = datatypes.JSONSlice[string](tags) }
}

func people(tags ...string) func(*models.CheckIn) {
	return func(c *models.CheckIn) { c.People = datatypes.JSONSlice[string](tags) }
}

func pleasantness(v float64) func(*models.CheckIn) {
	return func(c *models.CheckIn) { c.Attributes.Pleasantness = v }
}

func assertBizCode(t *testing.T, err error, code int) {
	t.Helper()
	var be *response.BizError
	require.True(t, errors.As(err, &be), "want BizError, got %v", err)
	assert.Equal(t, code, be.Code)
}

func feedQuery(s feed.Strategy) FeedQuery {
	return FeedQuery{Strategy: s, Limit: feed.DefaultLimit}
}
