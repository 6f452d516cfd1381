package repository

import (
	"Todak/internal/model"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByLoginID(ctx context.Context, loginID string) (*model.User, error)
	ExistsLoginID(ctx context.Context, loginID string) (bool, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateGuideSeen(ctx context.Context, id uint64) (int64, error)
	DeleteUser(ctx context.Context, id uint64) (int64, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(result.Error, "get user by id")
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("login_id = ?", loginID).
		First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(result.Error, "get user by login id")
	}
	return user, nil
}

func (s *UserRepoImpl) ExistsLoginID(ctx context.Context, loginID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("login_id = ?", loginID).
		Count(&count).Error
	if err != nil {
		return false, pkgerrors.Wrap(err, "count login id")
	}
	return count > 0, nil
}

// CreateUser login_id 冲突时返回 ErrDuplicateKey
func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if isDuplicateKey(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return pkgerrors.Wrap(err, "create user")
	}
	return nil
}

func (s *UserRepoImpl) UpdateGuideSeen(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("has_seen_guide", true)
	if result.Error != nil {
		return 0, pkgerrors.Wrap(result.Error, "update guide seen")
	}
	return result.RowsAffected, nil
}

// DeleteUser 在一个事务里删除用户及其全部记录
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recordIDs []uint64
		if err := tx.Model(&model.MoodRecord{}).Where("user_id = ?", id).Pluck("id", &recordIDs).Error; err != nil {
			return err
		}
		if err := deleteMoodChildren(tx, recordIDs); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.MoodRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.UserReminder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.PeriodReview{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, pkgerrors.Wrap(err, "delete user")
	}
	return affected, nil
}
