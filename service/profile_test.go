package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Moodring/models"
)

func TestGetSummary(t *testing.T) {
	f := newFixture("ana")
	f.add(1, models.PrivacyPublic, "joy", now.Add(-time.Hour))
	f.add(1, models.PrivacyPrivate, "joy", now.AddDate(0, 0, -1))
	f.add(1, models.PrivacyPublic, "calm", now.AddDate(0, 0, -2))
	f.add(1, models.PrivacyPublic, "calm", now.AddDate(0, 0, -4))
	f.add(1, models.PrivacyPublic, "calm", now.AddDate(0, 0, -30))

	resp, err := f.profile().GetSummary(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "ana", resp.Username)
	assert.EqualValues(t, 5, resp.TotalCheckins)
	assert.Equal(t, 3, resp.CheckinStreak)
	require.NotNil(t, resp.TopMood)
	assert.Equal(t, "calm", resp.TopMood.Name)
	assert.Equal(t, 3, resp.TopMood.Count)

	require.Len(t, resp.RecentCheckins, 3)
	assert.Equal(t, uint64(1), resp.RecentCheckins[0].ID)
	assert.Equal(t, uint64(2), resp.RecentCheckins[1].ID)
	assert.Equal(t, "ana", resp.RecentCheckins[0].Username)

	assert.Equal(t, 4, resp.WeeklySummary.TotalCheckins)
	assert.Equal(t, 2, resp.WeeklySummary.TopEmotionCount)
	// joy 与 calm 各 2 次，取字典序较小的
	assert.Equal(t, "calm", *resp.WeeklySummary.TopEmotion)
}

func TestGetSummary_NoCheckIns(t *testing.T) {
	resp, err := newFixture("ana").profile().GetSummary(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, resp.TotalCheckins)
	assert.Zero(t, resp.CheckinStreak)
	assert.Nil(t, resp.TopMood)
	assert.NotNil(t, resp.RecentCheckins)
	assert.Empty(t, resp.RecentCheckins)
	assert.Nil(t, resp.WeeklySummary.AverageAttributes)
}

func TestGetSummary_UserNotFound(t *testing.T) {
	_, err := newFixture().profile().GetSummary(ctx, 42)
	assertBizCode(t, err, http.StatusNotFound)
}

func TestGetSummary_StoreFailure(t *testing.T) {
	svc := newFixture("ana").profile()
	svc.Engine = failingEngine{}
	_, err := svc.GetSummary(ctx, 1)
	assert.ErrorIs(t, err, errDown)
}
