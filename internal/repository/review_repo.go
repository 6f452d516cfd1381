package repository

import (
	"Todak/internal/model"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepo interface {
	GetReview(ctx context.Context, userID uint64, periodType, periodKey string) (*model.PeriodReview, error)
	PutReview(ctx context.Context, review *model.PeriodReview) (*model.PeriodReview, error)
}

type ReviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepo {
	return &ReviewRepoImpl{db: db}
}

func (s *ReviewRepoImpl) GetReview(ctx context.Context, userID uint64, periodType, periodKey string) (*model.PeriodReview, error) {
	review := &model.PeriodReview{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND period_type = ? AND period_key = ?", userID, periodType, periodKey).
		First(review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get review")
	}
	return review, nil
}

// PutReview 按 (user_id, period_type, period_key) upsert
func (s *ReviewRepoImpl) PutReview(ctx context.Context, review *model.PeriodReview) (*model.PeriodReview, error) {
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "period_type"}, {Name: "period_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "last_mood_ts", "updated_at"}),
		}).
		Create(review).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "put review")
	}
	return s.GetReview(ctx, review.UserID, review.PeriodType, review.PeriodKey)
}
