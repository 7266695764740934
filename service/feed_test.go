package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Moodring/internal/feed"
	"Moodring/models"
	"Moodring/types"
)

func authors(items []*types.CheckInItem) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, it := range items {
		out = append(out, it.AuthorID)
	}
	return out
}

func TestGetFeed_SymmetricBlocking(t *testing.T) {
	f := newFixture("ana", "ben", "cy")
	f.add(1, models.PrivacyPublic, "joy", now.Add(-time.Hour))
	f.add(2, models.PrivacyPublic, "calm", now.Add(-2*time.Hour))
	f.add(3, models.PrivacyPublic, "sad", now.Add(-3*time.Hour))
	f.store.Block(1, 2)

	svc := f.feed()
	for _, s := range []feed.Strategy{feed.Chronological, feed.Popularity, feed.Relevance} {
		items, err := svc.GetFeed(ctx, 1, feedQuery(s))
		require.NoError(t, err)
		assert.NotContains(t, authors(items), uint64(2), s)

		items, err = svc.GetFeed(ctx, 2, feedQuery(s))
		require.NoError(t, err)
		assert.NotContains(t, authors(items), uint64(1), s)

		items, err = svc.GetFeed(ctx, 3, feedQuery(s))
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint64{1, 2, 3}, authors(items), s)
	}
}

func TestGetFeed_OnlyPublic(t *testing.T) {
	f := newFixture("ana", "ben")
	f.add(2, models.PrivacyPrivate, "anger", now.Add(-time.Minute), func(c *models.CheckIn) { c.LikeCount = 99 })
	f.add(2, models.PrivacyFriends, "joy", now.Add(-time.Minute))
	pub := f.add(2, models.PrivacyPublic, "calm", now.Add(-time.Hour))

	items, err := f.feed().GetFeed(ctx, 1, feedQuery(feed.Popularity))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, pub.ID, items[0].ID)
	assert.Equal(t, "ben", items[0].Username)
	assert.Equal(t, "public", items[0].Privacy)
}

func TestGetFeed_Pagination(t *testing.T) {
	f := newFixture("ana")
	for i := 0; i < 5; i++ {
		f.add(1, models.PrivacyPublic, "joy", now.Add(-time.Duration(i)*time.Hour))
	}
	svc := f.feed()

	first, err := svc.GetFeed(ctx, 1, FeedQuery{Strategy: feed.Chronological, Skip: 0, Limit: 2})
	require.NoError(t, err)
	second, err := svc.GetFeed(ctx, 1, FeedQuery{Strategy: feed.Chronological, Skip: 2, Limit: 2})
	require.NoError(t, err)
	rest, err := svc.GetFeed(ctx, 1, FeedQuery{Strategy: feed.Chronological, Skip: 4, Limit: 2})
	require.NoError(t, err)
	empty, err := svc.GetFeed(ctx, 1, FeedQuery{Strategy: feed.Chronological, Skip: 10, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first[0].ID)
	assert.Equal(t, uint64(3), second[0].ID)
	assert.Len(t, rest, 1)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestGetFeed_BlockLookupFailure(t *testing.T) {
	f := newFixture("ana")
	f.add(1, models.PrivacyPublic, "joy", now)

	svc := f.feed()
	svc.Visibility = &VisibilityService{Blocks: failingBlocks{blockersErr: errDown}}
	items, err := svc.GetFeed(ctx, 1, feedQuery(feed.Relevance))
	assert.ErrorIs(t, err, errDown)
	assert.Nil(t, items)
}

func TestGetFeed_StoreFailure(t *testing.T) {
	f := newFixture("ana")
	svc := f.feed()
	svc.Engine = failingEngine{}
	_, err := svc.GetFeed(ctx, 1, feedQuery(feed.Relevance))
	assert.ErrorIs(t, err, errDown)
}
