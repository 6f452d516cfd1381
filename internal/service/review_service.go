package service

import (
	"Todak/internal/api/dto"
	"Todak/internal/model"
	"Todak/internal/pkg/consts"
	"Todak/internal/pkg/llm"
	"Todak/internal/pkg/report"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type ReviewService interface {
	GetReview(ctx context.Context, userID uint64, periodType, periodKey string) (*dto.ReviewResponseDTO, error)
	PutReview(ctx context.Context, req *dto.PutReviewDTO) (*dto.ReviewResponseDTO, error)
	ResolveReview(ctx context.Context, req *dto.PeriodQueryDTO) (*dto.ReviewResponseDTO, error)
	GenerateReview(ctx context.Context, req *dto.PeriodQueryDTO) (*dto.AIReviewResultDTO, error)
}

type ReviewServiceImpl struct {
	reviewRepo repository.ReviewRepo
	moodRepo   repository.MoodRepo
	companion  llm.Companion
	clock      util.Clock
}

func NewReviewService(reviewRepo repository.ReviewRepo, moodRepo repository.MoodRepo, companion llm.Companion, clock util.Clock) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		moodRepo:   moodRepo,
		companion:  companion,
		clock:      clock,
	}
}

func (s *ReviewServiceImpl) GetReview(ctx context.Context, userID uint64, periodType, periodKey string) (*dto.ReviewResponseDTO, error) {
	if err := s.checkKey(periodType, periodKey); err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.GetReview(ctx, userID, periodType, periodKey)
	if err != nil {
		return nil, err
	}
	return &dto.ReviewResponseDTO{Review: toReviewDTO(review)}, nil
}

func (s *ReviewServiceImpl) PutReview(ctx context.Context, req *dto.PutReviewDTO) (*dto.ReviewResponseDTO, error) {
	if err := s.checkKey(req.PeriodType, req.PeriodKey); err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.PutReview(ctx, &model.PeriodReview{
		UserID:     req.UserID,
		PeriodType: req.PeriodType,
		PeriodKey:  req.PeriodKey,
		Content:    req.Content,
		LastMoodTs: req.LastMoodTimestamp,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ReviewResponseDTO{Review: toReviewDTO(review)}, nil
}

// ResolveReview 缓存不存在或区间内有更新的记录时才重新生成，空区间不缓存
func (s *ReviewServiceImpl) ResolveReview(ctx context.Context, req *dto.PeriodQueryDTO) (*dto.ReviewResponseDTO, error) {
	period, moods, err := s.loadPeriod(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(moods) == 0 {
		return &dto.ReviewResponseDTO{Review: &dto.ReviewDTO{
			UserID:     req.UserID,
			PeriodType: period.Type,
			PeriodKey:  period.Key,
			Content:    s.companion.PeriodReview(ctx, nil, period.Type),
			UpdatedAt:  s.clock.Now(),
		}}, nil
	}

	latest := report.LatestTimestamp(report.FromRecords(moods))
	cached, err := s.reviewRepo.GetReview(ctx, req.UserID, period.Type, period.Key)
	if err != nil {
		return nil, err
	}
	if cached != nil && latest <= cached.LastMoodTs {
		return &dto.ReviewResponseDTO{Review: toReviewDTO(cached)}, nil
	}

	content := s.companion.PeriodReview(ctx, toReviewEntries(moods), period.Type)
	review, err := s.reviewRepo.PutReview(ctx, &model.PeriodReview{
		UserID:     req.UserID,
		PeriodType: period.Type,
		PeriodKey:  period.Key,
		Content:    content,
		LastMoodTs: latest,
	})
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "review regenerated", "period_type", period.Type, "period_key", period.Key)
	return &dto.ReviewResponseDTO{Review: toReviewDTO(review)}, nil
}

// GenerateReview 只生成不缓存
func (s *ReviewServiceImpl) GenerateReview(ctx context.Context, req *dto.PeriodQueryDTO) (*dto.AIReviewResultDTO, error) {
	period, moods, err := s.loadPeriod(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.AIReviewResultDTO{
		PeriodType: period.Type,
		PeriodKey:  period.Key,
		Content:    s.companion.PeriodReview(ctx, toReviewEntries(moods), period.Type),
	}, nil
}

func (s *ReviewServiceImpl) loadPeriod(ctx context.Context, req *dto.PeriodQueryDTO) (report.Period, []*model.MoodRecord, error) {
	if !validPeriodType(req.PeriodType) {
		return report.Period{}, nil, ErrPeriodInvalid
	}
	date, err := util.ParseDate(req.Date, s.clock.Location())
	if err != nil {
		return report.Period{}, nil, ErrDateInvalid
	}
	period, err := report.PeriodFor(req.PeriodType, date)
	if err != nil {
		return report.Period{}, nil, ErrPeriodInvalid
	}
	moods, err := s.moodRepo.ListMoodsBetween(ctx, req.UserID, period.StartDate(), period.EndDate())
	if err != nil {
		return report.Period{}, nil, err
	}
	return period, moods, nil
}

// checkKey 周 key 必须是周日，月 key 为 YYYY-MM
func (s *ReviewServiceImpl) checkKey(periodType, periodKey string) error {
	switch periodType {
	case model.PeriodWeekly:
		d, err := util.ParseDate(periodKey, time.UTC)
		if err != nil || d.Weekday() != time.Sunday {
			return ErrParamInvalid
		}
	case model.PeriodMonthly:
		t, err := time.Parse(consts.MonthLayout, periodKey)
		if err != nil || t.Format(consts.MonthLayout) != periodKey {
			return ErrParamInvalid
		}
	default:
		return ErrPeriodInvalid
	}
	return nil
}

func toReviewEntries(moods []*model.MoodRecord) []llm.ReviewEntry {
	entries := make([]llm.ReviewEntry, 0, len(moods))
	for _, m := range moods {
		entries = append(entries, llm.ReviewEntry{
			Date:       m.RecordDate,
			EmotionIDs: m.EmotionIDs(),
			Content:    m.Content,
		})
	}
	return entries
}

func toReviewDTO(r *model.PeriodReview) *dto.ReviewDTO {
	if r == nil {
		return nil
	}
	return &dto.ReviewDTO{
		ID:                r.ID,
		UserID:            r.UserID,
		PeriodType:        r.PeriodType,
		PeriodKey:         r.PeriodKey,
		Content:           r.Content,
		LastMoodTimestamp: r.LastMoodTs,
		UpdatedAt:         r.UpdatedAt,
	}
}
