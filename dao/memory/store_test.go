package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Moodring/dao"
	"Moodring/models"
)

func TestStore_Blocks(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Block(1, 2)
	s.Block(1, 2)
	s.Block(1, 3)
	s.Block(4, 1)

	blocked, err := s.Blocked(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2, 3}, blocked)

	blockers, err := s.Blockers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{4}, blockers)

	s.Unblock(1, 2)
	blocked, err = s.Blocked(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, blocked)
}

func TestStore_Snapshots(t *testing.T) {
	ctx := context.Background()
	s := New()
	c := &models.CheckIn{ID: 1, AuthorID: 1, People: []string{"mom"}, OccurredAt: time.Now()}
	s.PutCheckIn(c)
	c.People[0] = "dad"

	items, err := s.Find(ctx, dao.Query{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "mom", items[0].People[0])

	s.DeleteCheckIn(1)
	n, err := s.Count(ctx, dao.Query{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Find(ctx, dao.Query{})
	var se *dao.StoreError
	assert.True(t, errors.As(err, &se))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.PutUser(&models.User{ID: 1, Username: "ana"})

	u, err := s.FindUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)

	_, err = s.FindUser(ctx, 2)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)
}
