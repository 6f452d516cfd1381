package service

import (
	"Todak/internal/api/dto"
	"Todak/internal/model"
	"Todak/internal/pkg/emotion"
	"Todak/internal/pkg/report"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type ReportService interface {
	GetReport(ctx context.Context, req *dto.PeriodQueryDTO) (*dto.ReportDTO, error)
	Emotions() []dto.EmotionDTO
}

type ReportServiceImpl struct {
	moodRepo repository.MoodRepo
	clock    util.Clock
}

func NewReportService(moodRepo repository.MoodRepo, clock util.Clock) ReportService {
	return &ReportServiceImpl{
		moodRepo: moodRepo,
		clock:    clock,
	}
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, req *dto.PeriodQueryDTO) (*dto.ReportDTO, error) {
	if !validPeriodType(req.PeriodType) {
		return nil, ErrPeriodInvalid
	}
	date, err := util.ParseDate(req.Date, s.clock.Location())
	if err != nil {
		return nil, ErrDateInvalid
	}
	period, err := report.PeriodFor(req.PeriodType, date)
	if err != nil {
		return nil, ErrPeriodInvalid
	}

	records, err := s.moodRepo.ListMoods(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	moods := report.FromRecords(records)
	inPeriod := report.InPeriod(moods, period)

	var palette []report.EmotionCount
	if period.Type == model.PeriodMonthly {
		palette = report.EmotionFrequency(moods, period.Key)
	} else {
		palette = report.EmotionFrequency(inPeriod, "")
	}
	counts, months := report.MonthlyCounts(moods)

	out := &dto.ReportDTO{
		PeriodType:    period.Type,
		PeriodKey:     period.Key,
		Start:         period.StartDate(),
		End:           period.EndDate(),
		TotalRecords:  len(inPeriod),
		MonthlyCounts: counts,
		Months:        months,
		Streak:        report.Streak(moods, s.clock.Now()),
	}

	for _, d := range report.DailyDistribution(inPeriod, period.Days()) {
		day := dto.DayDTO{Date: d.Date, HasValue: d.HasValue, Segments: make([]dto.SegmentDTO, 0, len(d.Segments))}
		_ = copier.Copy(&day.Segments, &d.Segments)
		out.Days = append(out.Days, day)
	}
	for _, c := range palette {
		item := dto.EmotionCountDTO{Count: c.Count}
		_ = copier.Copy(&item.EmotionDTO, &c.Emotion)
		out.Palette = append(out.Palette, item)
	}
	return out, nil
}

func (s *ReportServiceImpl) Emotions() []dto.EmotionDTO {
	out := make([]dto.EmotionDTO, 0)
	_ = copier.Copy(&out, emotion.All())
	return out
}
