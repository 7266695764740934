package types

import "Moodring/internal/analytics"

type AnalyticsRequest struct {
	Period string `form:"period"`
}

// AnalyticsResponse 个人情绪统计
type AnalyticsResponse struct {
	Period                 string                  `json:"period"`
	DateRange              analytics.Window        `json:"dateRange"`
	AverageMoodForPeriod   analytics.Summary       `json:"averageMoodForPeriod"`
	AverageMoodByDayOfWeek []analytics.DayBucket   `json:"averageMoodByDayOfWeek"`
	AverageMoodByActivity  analytics.ContextReport `json:"averageMoodByActivity"`
	AverageMoodByPeople    analytics.ContextReport `json:"averageMoodByPeople"`
}

// ProfileSummaryResponse 个人主页概览，topMood 按全部历史统计
type ProfileSummaryResponse struct {
	Username       string                `json:"username"`
	TotalCheckins  int64                 `json:"totalCheckins"`
	CheckinStreak  int                   `json:"checkinStreak"`
	TopMood        *analytics.TopEmotion `json:"topMood"`
	RecentCheckins []*CheckInItem        `json:"recentCheckins"`
	WeeklySummary  analytics.Summary     `json:"weeklySummary"`
}
