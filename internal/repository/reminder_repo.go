package repository

import (
	"Todak/internal/model"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReminderRepo interface {
	GetReminder(ctx context.Context, userID uint64) (*model.UserReminder, error)
	SetReminder(ctx context.Context, userID uint64, reminderTime string) error
	DeleteReminder(ctx context.Context, userID uint64) error
	ListByMinute(ctx context.Context, minute string) ([]*model.UserReminder, error)
}

type ReminderRepoImpl struct {
	db *gorm.DB
}

func NewReminderRepo(db *gorm.DB) ReminderRepo {
	return &ReminderRepoImpl{db: db}
}

func (s *ReminderRepoImpl) GetReminder(ctx context.Context, userID uint64) (*model.UserReminder, error) {
	reminder := &model.UserReminder{}
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "get reminder")
	}
	return reminder, nil
}

// SetReminder 每个用户一行，存在即更新
func (s *ReminderRepoImpl) SetReminder(ctx context.Context, userID uint64, reminderTime string) error {
	reminder := &model.UserReminder{
		UserID:       userID,
		ReminderTime: reminderTime,
	}
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"reminder_time", "updated_at"}),
		}).
		Create(reminder).Error
	if err != nil {
		return pkgerrors.Wrap(err, "set reminder")
	}
	return nil
}

func (s *ReminderRepoImpl) DeleteReminder(ctx context.Context, userID uint64) error {
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserReminder{}).Error
	if err != nil {
		return pkgerrors.Wrap(err, "delete reminder")
	}
	return nil
}

// ListByMinute minute 形如 21:30，匹配该分钟内的所有秒，附带用户信息
func (s *ReminderRepoImpl) ListByMinute(ctx context.Context, minute string) ([]*model.UserReminder, error) {
	reminders := make([]*model.UserReminder, 0)
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("reminder_time >= ? AND reminder_time <= ?", minute+":00", minute+":59").
		Order("user_id ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list reminders by minute")
	}
	return reminders, nil
}
