package report

import (
	"Todak/internal/pkg/emotion"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestStreak(t *testing.T) {
	today := day(2024, 5, 10)
	moods := []Mood{
		{Date: "2024-05-10", EmotionIDs: []string{emotion.Happy}},
		{Date: "2024-05-09", EmotionIDs: []string{emotion.Calm}},
		{Date: "2024-05-07", EmotionIDs: []string{emotion.Sad}},
	}
	assert.Equal(t, 2, Streak(moods, today))
	assert.Equal(t, 0, Streak(moods, day(2024, 5, 11)))
	assert.Equal(t, 0, Streak(nil, today))
}

func TestStreakAcrossMonth(t *testing.T) {
	moods := []Mood{{Date: "2024-03-01"}, {Date: "2024-02-29"}, {Date: "2024-02-28"}}
	assert.Equal(t, 3, Streak(moods, day(2024, 3, 1)))
}

func TestPeriodFor(t *testing.T) {
	// 2024-05-15 是周三
	p, err := PeriodFor(Weekly, day(2024, 5, 15))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-12", p.Key)
	assert.Equal(t, "2024-05-12", p.StartDate())
	assert.Equal(t, "2024-05-18", p.EndDate())
	assert.Len(t, p.Days(), 7)
	assert.Equal(t, time.Sunday, p.Days()[0].Weekday())

	p, err = PeriodFor(Monthly, day(2024, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, "2024-02", p.Key)
	assert.Equal(t, "2024-02-29", p.EndDate())
	assert.Len(t, MonthDays(day(2024, 2, 10)), 29)

	_, err = PeriodFor("daily", day(2024, 2, 10))
	assert.ErrorIs(t, err, ErrPeriodType)
}

func TestWeekDaysOnSunday(t *testing.T) {
	days := WeekDays(day(2024, 5, 12))
	require.Len(t, days, 7)
	assert.Equal(t, 12, days[0].Day())
	assert.Equal(t, time.Saturday, days[6].Weekday())
}

func TestDailyDistribution(t *testing.T) {
	moods := []Mood{{Date: "2024-05-12", EmotionIDs: []string{emotion.Happy, emotion.Proud}}}
	out := DailyDistribution(moods, WeekDays(day(2024, 5, 12)))
	require.Len(t, out, 7)

	assert.True(t, out[0].HasValue)
	require.Len(t, out[0].Segments, 2)
	assert.Equal(t, emotion.Happy, out[0].Segments[0].EmotionID)
	assert.Equal(t, "#FFF59D", out[0].Segments[0].Color)
	assert.InDelta(t, 0.5, out[0].Segments[1].Share, 1e-9)

	assert.False(t, out[1].HasValue)
	assert.Empty(t, out[1].Segments)
}

func TestMonthlyCounts(t *testing.T) {
	moods := []Mood{{Date: "2024-05-01"}, {Date: "2024-05-03"}, {Date: "2024-03-09"}, {Date: "2023-12-31"}}
	counts, months := MonthlyCounts(moods)
	assert.Equal(t, 2, counts["2024-05"])
	assert.Equal(t, 1, counts["2023-12"])
	assert.Equal(t, []string{"2024-05", "2024-03", "2023-12"}, months)
}

func TestEmotionFrequency(t *testing.T) {
	moods := []Mood{
		{Date: "2024-05-01", EmotionIDs: []string{emotion.Sad, emotion.Calm}},
		{Date: "2024-05-02", EmotionIDs: []string{emotion.Sad}},
		{Date: "2024-04-30", EmotionIDs: []string{emotion.Angry, emotion.Angry, emotion.Angry}},
	}

	all := EmotionFrequency(moods, "")
	require.Len(t, all, 12)
	assert.Equal(t, emotion.Angry, all[0].Emotion.ID)
	assert.Equal(t, 3, all[0].Count)

	may := EmotionFrequency(moods, "2024-05")
	assert.Equal(t, emotion.Sad, may[0].Emotion.ID)
	assert.Equal(t, 2, may[0].Count)
	assert.Equal(t, emotion.Calm, may[1].Emotion.ID)
	// 次数为 0 的保持目录顺序
	assert.Equal(t, emotion.Angry, may[2].Emotion.ID)
	assert.Equal(t, emotion.Worried, may[3].Emotion.ID)
}

func TestInPeriodAndLatest(t *testing.T) {
	p, _ := PeriodFor(Weekly, day(2024, 5, 15))
	moods := []Mood{
		{Date: "2024-05-11", Timestamp: 50},
		{Date: "2024-05-12", Timestamp: 10},
		{Date: "2024-05-18", Timestamp: 30},
		{Date: "2024-05-19", Timestamp: 99},
	}
	in := InPeriod(moods, p)
	assert.Len(t, in, 2)
	assert.Equal(t, int64(30), LatestTimestamp(in))
	assert.Equal(t, int64(0), LatestTimestamp(nil))
}
