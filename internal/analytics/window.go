package analytics

import (
	"fmt"
	"time"
)

type Period string

const (
	Week        Period = "week"
	Month       Period = "month"
	ThreeMonths Period = "3months"
	Year        Period = "year"
	All         Period = "all"
)

// ParsePeriod 空值默认 week
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return Week, nil
	case Week, Month, ThreeMonths, Year, All:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q, expect week|month|3months|year|all", s)
}

// Window 左闭右开 [Start, End)，Start 为 nil 表示不设下界
type Window struct {
	Start *time.Time `json:"start"`
	End   time.Time  `json:"end"`
}

// Contains 判断时间点是否落在窗口内
func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	return t.Before(w.End)
}

// Resolve 以 loc 下"今天结束"（明天零点）为右界，向前回退对应的自然单位
func (p Period) Resolve(now time.Time, loc *time.Location) Window {
	end := StartOfDay(now, loc).AddDate(0, 0, 1)
	w := Window{End: end}

	var start time.Time
	switch p {
	case Week:
		start = end.AddDate(0, 0, -7)
	case Month:
		start = end.AddDate(0, -1, 0)
	case ThreeMonths:
		start = end.AddDate(0, -3, 0)
	case Year:
		start = end.AddDate(-1, 0, 0)
	default:
		return w
	}
	w.Start = &start
	return w
}

// StartOfDay loc 下 t 所在自然日的零点
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
