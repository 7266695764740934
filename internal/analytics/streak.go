package analytics

import "time"

// civilDay 以 UTC 零点表示 loc 下的自然日，便于按整天加减
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CurrentStreak 截止今天（或昨天）的连续打卡天数
//
// 最近一次打卡早于昨天时为 0；今天有打卡则从今天往前数，否则从昨天开始。
// 只衡量当前连续，不计算历史最长。
func CurrentStreak(timestamps []time.Time, now time.Time, loc *time.Location) int {
	if len(timestamps) == 0 {
		return 0
	}

	days := make(map[time.Time]struct{}, len(timestamps))
	var latest time.Time
	for _, ts := range timestamps {
		d := civilDay(ts, loc)
		days[d] = struct{}{}
		if d.After(latest) {
			latest = d
		}
	}

	today := civilDay(now, loc)
	yesterday := today.AddDate(0, 0, -1)
	if latest.Before(yesterday) {
		return 0
	}

	cursor := yesterday
	if _, ok := days[today]; ok {
		cursor = today
	}

	streak := 0
	for {
		if _, ok := days[cursor]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
