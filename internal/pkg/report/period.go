package report

import (
	"Todak/internal/pkg/consts"
	"errors"
	"time"
)

const (
	Weekly  = "weekly"
	Monthly = "monthly"
)

var ErrPeriodType = errors.New("unknown period type")

// Period 闭区间 [Start, End]，按天计
type Period struct {
	Type  string
	Key   string
	Start time.Time
	End   time.Time
}

func (p Period) StartDate() string {
	return p.Start.Format(consts.DateLayout)
}

func (p Period) EndDate() string {
	return p.End.Format(consts.DateLayout)
}

// Days 区间内每天
func (p Period) Days() []time.Time {
	var days []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// PeriodFor 周以周日开始，key 为周日日期；月 key 为 YYYY-MM
func PeriodFor(periodType string, date time.Time) (Period, error) {
	day := truncateDay(date)
	switch periodType {
	case Weekly:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return Period{
			Type:  Weekly,
			Key:   start.Format(consts.DateLayout),
			Start: start,
			End:   start.AddDate(0, 0, 6),
		}, nil
	case Monthly:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return Period{
			Type:  Monthly,
			Key:   start.Format(consts.MonthLayout),
			Start: start,
			End:   start.AddDate(0, 1, -1),
		}, nil
	default:
		return Period{}, ErrPeriodType
	}
}

// WeekDays 周日到周六
func WeekDays(date time.Time) []time.Time {
	p, _ := PeriodFor(Weekly, date)
	return p.Days()
}

// MonthDays 1 号到月末
func MonthDays(date time.Time) []time.Time {
	p, _ := PeriodFor(Monthly, date)
	return p.Days()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
