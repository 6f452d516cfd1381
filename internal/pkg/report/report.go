package report

import (
	"Todak/internal/model"
	"Todak/internal/pkg/consts"
	"Todak/internal/pkg/emotion"
	"sort"
	"strings"
	"time"
)

// Mood 统计所需的最小记录视图
type Mood struct {
	Date       string
	EmotionIDs []string
	Timestamp  int64
}

func FromRecords(records []*model.MoodRecord) []Mood {
	out := make([]Mood, 0, len(records))
	for _, r := range records {
		out = append(out, Mood{
			Date:       r.RecordDate,
			EmotionIDs: r.EmotionIDs(),
			Timestamp:  r.TimestampMs,
		})
	}
	return out
}

type Segment struct {
	EmotionID string
	Color     string
	Share     float64
}

type Day struct {
	Date     string
	HasValue bool
	Segments []Segment
}

type EmotionCount struct {
	Emotion emotion.Emotion
	Count   int
}

func byDate(moods []Mood) map[string]Mood {
	m := make(map[string]Mood, len(moods))
	for _, mood := range moods {
		m[mood.Date] = mood
	}
	return m
}

// DailyDistribution 每天最多 3 段，每段占比 1/n
func DailyDistribution(moods []Mood, days []time.Time) []Day {
	index := byDate(moods)
	out := make([]Day, 0, len(days))
	for _, d := range days {
		key := d.Format(consts.DateLayout)
		day := Day{Date: key, Segments: []Segment{}}
		if mood, ok := index[key]; ok && len(mood.EmotionIDs) > 0 {
			ids := mood.EmotionIDs
			if len(ids) > emotion.MaxPerRecord {
				ids = ids[:emotion.MaxPerRecord]
			}
			day.HasValue = true
			share := 1 / float64(len(ids))
			for _, id := range ids {
				day.Segments = append(day.Segments, Segment{
					EmotionID: id,
					Color:     emotion.Color(id),
					Share:     share,
				})
			}
		}
		out = append(out, day)
	}
	return out
}

// MonthlyCounts 每月记录数，以及按月份倒序的列表
func MonthlyCounts(moods []Mood) (map[string]int, []string) {
	counts := make(map[string]int)
	for _, mood := range moods {
		if len(mood.Date) < 7 {
			continue
		}
		counts[mood.Date[:7]]++
	}
	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return counts, months
}

// Streak 从今天往回数连续有记录的天数，今天没有记录则为 0
func Streak(moods []Mood, today time.Time) int {
	index := byDate(moods)
	streak := 0
	for d := truncateDay(today); ; d = d.AddDate(0, 0, -1) {
		if _, ok := index[d.Format(consts.DateLayout)]; !ok {
			return streak
		}
		streak++
	}
}

// EmotionFrequency month 为空时统计全部；按次数倒序，次数相同保持目录顺序
func EmotionFrequency(moods []Mood, month string) []EmotionCount {
	counts := make(map[string]int)
	for _, mood := range moods {
		if month != "" && !strings.HasPrefix(mood.Date, month) {
			continue
		}
		for _, id := range mood.EmotionIDs {
			counts[id]++
		}
	}
	all := emotion.All()
	out := make([]EmotionCount, 0, len(all))
	for _, e := range all {
		out = append(out, EmotionCount{Emotion: e, Count: counts[e.ID]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// InPeriod 过滤出区间内的记录
func InPeriod(moods []Mood, p Period) []Mood {
	from, to := p.StartDate(), p.EndDate()
	out := make([]Mood, 0, len(moods))
	for _, mood := range moods {
		if mood.Date >= from && mood.Date <= to {
			out = append(out, mood)
		}
	}
	return out
}

// LatestTimestamp 区间内最新的保存时间
func LatestTimestamp(moods []Mood) int64 {
	var latest int64
	for _, mood := range moods {
		if mood.Timestamp > latest {
			latest = mood.Timestamp
		}
	}
	return latest
}
