package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"Moodring/models"
)

// Averages 四个情绪维度的均值，保留两位小数
type Averages struct {
	Pleasantness float64 `json:"pleasantness"`
	Intensity    float64 `json:"intensity"`
	Control      float64 `json:"control"`
	Clarity      float64 `json:"clarity"`
}

// Summary 一组打卡的统计结果；没有数据时 AverageAttributes 与 TopEmotion 为 nil
type Summary struct {
	AverageAttributes *Averages `json:"averageAttributes"`
	TotalCheckins     int       `json:"totalCheckins"`
	TopEmotion        *string   `json:"topEmotion"`
	TopEmotionCount   int       `json:"topEmotionCount"`
}

type DayBucket struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Day       string `json:"day"`
	Summary
}

type ContextType string

const (
	ContextActivity ContextType = "activity"
	ContextPerson   ContextType = "person"
)

type ContextBucket struct {
	Tag string `json:"tag"`
	Summary
	PercentageOfTotal float64 `json:"percentageOfTotal"`
}

type ContextSummary struct {
	TotalDistinctTags int `json:"totalDistinctTags"`
	TaggedCheckins    int `json:"taggedCheckins"`
}

type ContextReport struct {
	ContextType ContextType     `json:"contextType"`
	Buckets     []ContextBucket `json:"data"`
	Summary     ContextSummary  `json:"summary"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize 计算均值与最高频情绪，不做除零
func Summarize(items []*models.CheckIn) Summary {
	s := Summary{TotalCheckins: len(items)}
	if len(items) == 0 {
		return s
	}

	var sum models.Attributes
	names := make([]string, 0, len(items))
	for _, c := range items {
		sum.Pleasantness += c.Attributes.Pleasantness
		sum.Intensity += c.Attributes.Intensity
		sum.Control += c.Attributes.Control
		sum.Clarity += c.Attributes.Clarity
		names = append(names, c.EmotionName)
	}

	n := float64(len(items))
	s.AverageAttributes = &Averages{
		Pleasantness: round2(sum.Pleasantness / n),
		Intensity:    round2(sum.Intensity / n),
		Control:      round2(sum.Control / n),
		Clarity:      round2(sum.Clarity / n),
	}
	if top := ResolveTopEmotion(names); top != nil {
		s.TopEmotion = &top.Name
		s.TopEmotionCount = top.Count
	}
	return s
}

// Filter 取出落在窗口内的打卡
func Filter(items []*models.CheckIn, w Window) []*models.CheckIn {
	out := make([]*models.CheckIn, 0, len(items))
	for _, c := range items {
		if w.Contains(c.OccurredAt) {
			out = append(out, c)
		}
	}
	return out
}

// ByDayOfWeek 固定返回 7 个桶，周日为 1，周六为 7
func ByDayOfWeek(items []*models.CheckIn, loc *time.Location) []DayBucket {
	var groups [7][]*models.CheckIn
	for _, c := range items {
		wd := c.OccurredAt.In(loc).Weekday()
		groups[wd] = append(groups[wd], c)
	}

	out := make([]DayBucket, 7)
	for i := range groups {
		out[i] = DayBucket{
			DayOfWeek: i + 1,
			Day:       time.Weekday(i).String(),
			Summary:   Summarize(groups[i]),
		}
	}
	return out
}

func tagsOf(c *models.CheckIn, t ContextType) []string {
	if t == ContextPerson {
		return c.People
	}
	return c.Activities
}

// ByContext 按标签分组，一条打卡对其携带的每个不同标签各计一次
func ByContext(items []*models.CheckIn, t ContextType) ContextReport {
	groups := make(map[string][]*models.CheckIn)
	tagged := 0
	for _, c := range items {
		seen := make(map[string]struct{})
		for _, raw := range tagsOf(c, t) {
			tag := strings.TrimSpace(raw)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			groups[tag] = append(groups[tag], c)
		}
		if len(seen) > 0 {
			tagged++
		}
	}

	buckets := make([]ContextBucket, 0, len(groups))
	for tag, group := range groups {
		buckets = append(buckets, ContextBucket{
			Tag:               tag,
			Summary:           Summarize(group),
			PercentageOfTotal: round2(float64(len(group)) / float64(tagged) * 100),
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].TotalCheckins != buckets[j].TotalCheckins {
			return buckets[i].TotalCheckins > buckets[j].TotalCheckins
		}
		return buckets[i].Tag < buckets[j].Tag
	})

	return ContextReport{
		ContextType: t,
		Buckets:     buckets,
		Summary: ContextSummary{
			TotalDistinctTags: len(groups),
			TaggedCheckins:    tagged,
		},
	}
}
