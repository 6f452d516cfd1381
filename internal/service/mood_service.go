package service

import (
	"Todak/internal/api/dto"
	"Todak/internal/model"
	"Todak/internal/pkg/redis"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"context"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MoodService interface {
	SaveMood(ctx context.Context, req *dto.SaveMoodDTO) (*dto.MoodRecordDTO, error)
	ListMoods(ctx context.Context, userID uint64) ([]*dto.MoodRecordDTO, error)
	DeleteMood(ctx context.Context, userID, id uint64) error
}

type MoodServiceImpl struct {
	moodRepo repository.MoodRepo
	cache    *redis.Cache
	clock    util.Clock
}

func NewMoodService(moodRepo repository.MoodRepo, cache *redis.Cache, clock util.Clock) MoodService {
	return &MoodServiceImpl{
		moodRepo: moodRepo,
		cache:    cache,
		clock:    clock,
	}
}

// SaveMood 同一天重复保存时整体替换情绪与推荐
func (s *MoodServiceImpl) SaveMood(ctx context.Context, req *dto.SaveMoodDTO) (*dto.MoodRecordDTO, error) {
	if req.UserID == 0 {
		return nil, ErrParamInvalid
	}
	if err := ValidateEmotionIDs(req.EmotionIDs); err != nil {
		return nil, err
	}
	content, err := ValidateContent(req.Content)
	if err != nil {
		return nil, err
	}
	if _, err = util.ParseDate(req.Date, s.clock.Location()); err != nil {
		return nil, ErrDateInvalid
	}
	if req.Date != s.clock.Today() {
		return nil, ErrMoodNotEditable
	}

	record := &model.MoodRecord{
		UserID:      req.UserID,
		RecordDate:  req.Date,
		ExternalID:  uuid.NewString(),
		Content:     content,
		TimestampMs: s.clock.Now().UnixMilli(),
	}
	if req.AIMessage != nil && strings.TrimSpace(*req.AIMessage) != "" {
		record.AIMessage = util.PtrString(strings.TrimSpace(*req.AIMessage))
	}
	for _, id := range req.EmotionIDs {
		record.Emotions = append(record.Emotions, model.MoodRecordEmotion{EmotionID: id})
	}
	for _, rec := range req.Recommendations {
		if !validRecType(rec.Type) {
			return nil, ErrRecommendationType
		}
		key := rec.Key
		if key == "" {
			key = "gen-" + rec.Type
		}
		record.Recommendations = append(record.Recommendations, model.MoodRecommendation{
			RecType:     rec.Type,
			RecKey:      key,
			Title:       rec.Title,
			Description: rec.Description,
			Link:        rec.Link,
		})
	}

	saved, err := s.moodRepo.UpsertMood(ctx, record)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, req.UserID)

	log.InfoContext(ctx, "mood saved", "record_id", saved.ID, "date", saved.RecordDate)
	return toMoodDTO(saved), nil
}

// ListMoods 先读缓存，未命中再查库并回填
func (s *MoodServiceImpl) ListMoods(ctx context.Context, userID uint64) ([]*dto.MoodRecordDTO, error) {
	if userID == 0 {
		return nil, ErrParamInvalid
	}

	if payload, ok, err := s.cache.GetMoods(ctx, userID); err != nil {
		log.WarnContext(ctx, "read mood cache failed", "err", err)
	} else if ok {
		out := make([]*dto.MoodRecordDTO, 0)
		if err = json.Unmarshal(payload, &out); err == nil {
			return out, nil
		}
		log.WarnContext(ctx, "decode mood cache failed", "err", err)
	}

	records, err := s.moodRepo.ListMoods(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MoodRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, toMoodDTO(r))
	}

	if s.cache.Enabled() {
		if payload, err := json.Marshal(out); err == nil {
			if err = s.cache.SetMoods(ctx, userID, payload); err != nil {
				log.WarnContext(ctx, "write mood cache failed", "err", err)
			}
		}
	}
	return out, nil
}

func (s *MoodServiceImpl) DeleteMood(ctx context.Context, userID, id uint64) error {
	record, err := s.moodRepo.GetMoodById(ctx, id)
	if err != nil {
		return err
	}
	if record == nil || record.UserID != userID {
		return ErrMoodNotFound
	}
	if record.RecordDate != s.clock.Today() {
		return ErrMoodNotEditable
	}

	affected, err := s.moodRepo.DeleteMood(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMoodNotFound
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *MoodServiceImpl) invalidate(ctx context.Context, userID uint64) {
	if err := s.cache.InvalidateMoods(ctx, userID); err != nil {
		log.WarnContext(ctx, "invalidate mood cache failed", "err", err)
	}
}

func toMoodDTO(r *model.MoodRecord) *dto.MoodRecordDTO {
	out := &dto.MoodRecordDTO{}
	_ = copier.Copy(out, r)
	out.Date = r.RecordDate
	out.EmotionIDs = r.EmotionIDs()
	out.Timestamp = r.TimestampMs
	out.Recommendations = make([]dto.RecommendationDTO, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		out.Recommendations = append(out.Recommendations, dto.RecommendationDTO{
			Type:        rec.RecType,
			Key:         rec.RecKey,
			Title:       rec.Title,
			Description: rec.Description,
			Link:        rec.Link,
		})
	}
	return out
}
