package repository

import (
	"Todak/internal/model"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MoodRepo interface {
	UpsertMood(ctx context.Context, record *model.MoodRecord) (*model.MoodRecord, error)
	GetMoodById(ctx context.Context, id uint64) (*model.MoodRecord, error)
	GetMoodByDate(ctx context.Context, userID uint64, date string) (*model.MoodRecord, error)
	ListMoods(ctx context.Context, userID uint64) ([]*model.MoodRecord, error)
	ListMoodsBetween(ctx context.Context, userID uint64, from, to string) ([]*model.MoodRecord, error)
	ExistsMoodOnDate(ctx context.Context, userIDs []uint64, date string) (map[uint64]bool, error)
	DeleteMood(ctx context.Context, id uint64) (int64, error)
}

type MoodRepoImpl struct {
	db *gorm.DB
}

func NewMoodRepo(db *gorm.DB) MoodRepo {
	return &MoodRepoImpl{db: db}
}

func preloadChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Emotions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Recommendations", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		})
}

// UpsertMood 按 (user_id, record_date) 查找或创建，子表整体替换，全部在同一事务内
func (s *MoodRepoImpl) UpsertMood(ctx context.Context, record *model.MoodRecord) (*model.MoodRecord, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := &model.MoodRecord{}
		err := tx.Where("user_id = ? AND record_date = ?", record.UserID, record.RecordDate).First(existing).Error
		switch {
		case err == nil:
			record.ID = existing.ID
			record.ExternalID = existing.ExternalID
			record.CreatedAt = existing.CreatedAt
			if err = tx.Model(existing).Updates(map[string]any{
				"content":      record.Content,
				"ai_message":   record.AIMessage,
				"timestamp_ms": record.TimestampMs,
			}).Error; err != nil {
				return err
			}
			if err = deleteMoodChildren(tx, []uint64{record.ID}); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err = tx.Omit(clause.Associations).Create(record).Error; err != nil {
				return err
			}
		default:
			return err
		}

		for i := range record.Emotions {
			record.Emotions[i].ID = 0
			record.Emotions[i].MoodRecordID = record.ID
			record.Emotions[i].SortOrder = int8(i)
		}
		if len(record.Emotions) > 0 {
			if err = tx.Create(&record.Emotions).Error; err != nil {
				return err
			}
		}

		for i := range record.Recommendations {
			record.Recommendations[i].ID = 0
			record.Recommendations[i].MoodRecordID = record.ID
			record.Recommendations[i].SortOrder = int8(i)
		}
		if len(record.Recommendations) > 0 {
			if err = tx.Create(&record.Recommendations).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "upsert mood")
	}
	return s.GetMoodById(ctx, record.ID)
}

func (s *MoodRepoImpl) GetMoodById(ctx context.Context, id uint64) (*model.MoodRecord, error) {
	record := &model.MoodRecord{}
	err := preloadChildren(s.db.WithContext(ctx)).First(record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get mood by id")
	}
	return record, nil
}

func (s *MoodRepoImpl) GetMoodByDate(ctx context.Context, userID uint64, date string) (*model.MoodRecord, error) {
	record := &model.MoodRecord{}
	err := preloadChildren(s.db.WithContext(ctx)).
		Where("user_id = ? AND record_date = ?", userID, date).
		First(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get mood by date")
	}
	return record, nil
}

// ListMoods 按日期倒序
func (s *MoodRepoImpl) ListMoods(ctx context.Context, userID uint64) ([]*model.MoodRecord, error) {
	records := make([]*model.MoodRecord, 0)
	err := preloadChildren(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("record_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list moods")
	}
	return records, nil
}

// ListMoodsBetween 闭区间 [from, to]，按日期正序
func (s *MoodRepoImpl) ListMoodsBetween(ctx context.Context, userID uint64, from, to string) ([]*model.MoodRecord, error) {
	records := make([]*model.MoodRecord, 0)
	err := preloadChildren(s.db.WithContext(ctx)).
		Where("user_id = ? AND record_date >= ? AND record_date <= ?", userID, from, to).
		Order("record_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list moods between")
	}
	return records, nil
}

func (s *MoodRepoImpl) ExistsMoodOnDate(ctx context.Context, userIDs []uint64, date string) (map[uint64]bool, error) {
	out := make(map[uint64]bool, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var found []uint64
	err := s.db.WithContext(ctx).
		Model(&model.MoodRecord{}).
		Where("user_id IN ? AND record_date = ?", userIDs, date).
		Pluck("user_id", &found).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "exists mood on date")
	}
	for _, id := range found {
		out[id] = true
	}
	return out, nil
}

func (s *MoodRepoImpl) DeleteMood(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteMoodChildren(tx, []uint64{id}); err != nil {
			return err
		}
		result := tx.Delete(&model.MoodRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, pkgerrors.Wrap(err, "delete mood")
	}
	return affected, nil
}

func deleteMoodChildren(tx *gorm.DB, recordIDs []uint64) error {
	if len(recordIDs) == 0 {
		return nil
	}
	if err := tx.Where("mood_record_id IN ?", recordIDs).Delete(&model.MoodRecordEmotion{}).Error; err != nil {
		return err
	}
	return tx.Where("mood_record_id IN ?", recordIDs).Delete(&model.MoodRecommendation{}).Error
}
