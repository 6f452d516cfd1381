package service

import (
	"Todak/internal/api/dto"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"context"
	"strings"
)

type ReminderService interface {
	GetReminder(ctx context.Context, userID uint64) (*dto.ReminderDTO, error)
	SetReminder(ctx context.Context, req *dto.SetReminderDTO) (*dto.ReminderDTO, error)
	DeleteReminder(ctx context.Context, userID uint64) error
}

type ReminderServiceImpl struct {
	reminderRepo repository.ReminderRepo
	userRepo     repository.UserRepo
}

func NewReminderService(reminderRepo repository.ReminderRepo, userRepo repository.UserRepo) ReminderService {
	return &ReminderServiceImpl{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
	}
}

func (s *ReminderServiceImpl) GetReminder(ctx context.Context, userID uint64) (*dto.ReminderDTO, error) {
	reminder, err := s.reminderRepo.GetReminder(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return &dto.ReminderDTO{}, nil
	}
	return &dto.ReminderDTO{ReminderTime: util.PtrString(util.ShortTimeOfDay(reminder.ReminderTime))}, nil
}

// SetReminder 存储为 HH:MM:SS，返回 HH:MM
func (s *ReminderServiceImpl) SetReminder(ctx context.Context, req *dto.SetReminderDTO) (*dto.ReminderDTO, error) {
	normalized, err := util.NormalizeTimeOfDay(strings.TrimSpace(req.ReminderTime))
	if err != nil {
		return nil, ErrTimeInvalid
	}

	user, err := s.userRepo.GetUserById(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = s.reminderRepo.SetReminder(ctx, req.UserID, normalized); err != nil {
		return nil, err
	}
	return &dto.ReminderDTO{ReminderTime: util.PtrString(util.ShortTimeOfDay(normalized))}, nil
}

func (s *ReminderServiceImpl) DeleteReminder(ctx context.Context, userID uint64) error {
	return s.reminderRepo.DeleteReminder(ctx, userID)
}
