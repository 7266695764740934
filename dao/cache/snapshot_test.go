package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Moodring/config"
)

type payload struct {
	Total int     `json:"total"`
	Top   *string `json:"top"`
}

func newStorage(t *testing.T) (*SnapshotStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	conf := &config.Config{Cache: &config.Cache{TTLSeconds: 5}}
	return NewSnapshotStorage(rds, conf), mr
}

func TestFetch_MissThenHit(t *testing.T) {
	s, mr := newStorage(t)
	ctx := context.Background()
	var loads atomic.Int32
	load := func(context.Context) (*payload, error) {
		loads.Add(1)
		return &payload{Total: 3}, nil
	}

	key := SummaryKey(1)
	got, err := Fetch(ctx, s, key, load)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Second, mr.TTL(key))

	got, err = Fetch(ctx, s, key, load)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
	assert.EqualValues(t, 1, loads.Load())

	// 过期后重新回源
	mr.FastForward(6 * time.Second)
	_, err = Fetch(ctx, s, key, load)
	require.NoError(t, err)
	assert.EqualValues(t, 2, loads.Load())
}

func TestFetch_LoadErrorNotCached(t *testing.T) {
	s, mr := newStorage(t)
	boom := errors.New("boom")

	_, err := Fetch(context.Background(), s, SummaryKey(1), func(context.Context) (*payload, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists(SummaryKey(1)))
}

func TestFetch_RedisDownFallsBack(t *testing.T) {
	s, mr := newStorage(t)
	mr.SetError("ERR cache down")

	got, err := Fetch(context.Background(), s, SummaryKey(1), func(context.Context) (*payload, error) {
		return &payload{Total: 7}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Total)
}

func TestFetch_Disabled(t *testing.T) {
	var s *SnapshotStorage
	got, err := Fetch(context.Background(), s, SummaryKey(1), func(context.Context) (int, error) {
		return 9, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	s = NewSnapshotStorage(nil, &config.Config{Cache: &config.Cache{}})
	assert.False(t, s.Enabled())
	s.InvalidateUser(context.Background(), 1)
}

func TestFetch_Concurrent(t *testing.T) {
	s, _ := newStorage(t)
	var loads atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (*payload, error) {
		loads.Add(1)
		<-release
		return &payload{Total: 1}, nil
	}

	var wg conc.WaitGroup
	results := make([]*payload, 16)
	for i := range results {
		wg.Go(func() {
			got, err := Fetch(context.Background(), s, AnalyticsKey(1, "week"), load)
			assert.NoError(t, err)
			results[i] = got
		})
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, 1, r.Total)
	}
	assert.Less(t, loads.Load(), int32(len(results)))
}

func TestInvalidate(t *testing.T) {
	s, mr := newStorage(t)
	ctx := context.Background()
	for _, k := range []string{
		SummaryKey(1), AnalyticsKey(1, "week"), AnalyticsKey(1, "all"),
		SummaryKey(2), AnalyticsKey(2, "week"),
		FeedKey(1, 0, "hottest", 0, 20), FeedKey(2, 0, "hottest", 0, 20),
	} {
		require.NoError(t, mr.Set(k, "{}"))
	}

	s.InvalidateUser(ctx, 1)
	assert.False(t, mr.Exists(SummaryKey(1)))
	assert.False(t, mr.Exists(AnalyticsKey(1, "week")))
	assert.False(t, mr.Exists(AnalyticsKey(1, "all")))
	assert.True(t, mr.Exists(SummaryKey(2)))
	assert.True(t, mr.Exists(AnalyticsKey(2, "week")))
	assert.True(t, mr.Exists(FeedKey(1, 0, "hottest", 0, 20)))

	s.InvalidateFeed(ctx, 1)
	assert.False(t, mr.Exists(FeedKey(1, 0, "hottest", 0, 20)))
	assert.True(t, mr.Exists(FeedKey(2, 0, "hottest", 0, 20)))
}

func TestKeysScopedByUser(t *testing.T) {
	assert.Equal(t, "moodring:feed:1:3:hottest:0:20", FeedKey(1, 3, "hottest", 0, 20))
	assert.Equal(t, "moodring:analytics:1:week", AnalyticsKey(1, "week"))
	assert.Equal(t, "moodring:summary:1", SummaryKey(1))
	assert.NotEqual(t, SummaryKey(1), SummaryKey(11))
}

func TestFeedGeneration(t *testing.T) {
	s, mr := newStorage(t)
	ctx := context.Background()

	gen, ok := s.FeedGeneration(ctx)
	require.True(t, ok)
	assert.Zero(t, gen)

	s.BumpFeedGeneration(ctx)
	s.BumpFeedGeneration(ctx)
	gen, ok = s.FeedGeneration(ctx)
	require.True(t, ok)
	assert.EqualValues(t, 2, gen)

	// 代数键不属于任何用户的 feed 前缀
	s.InvalidateFeed(ctx, 1)
	assert.True(t, mr.Exists(feedGenKey))

	mr.SetError("ERR cache down")
	_, ok = s.FeedGeneration(ctx)
	assert.False(t, ok)
	mr.SetError("")

	var disabled *SnapshotStorage
	_, ok = disabled.FeedGeneration(ctx)
	assert.False(t, ok)
	disabled.BumpFeedGeneration(ctx)
}
