package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicateKey 唯一索引冲突
var ErrDuplicateKey = errors.New("duplicate key")

// Store 存储抽象，HTTP 层只依赖这些接口
type Store interface {
	Users() UserRepo
	Moods() MoodRepo
	Reminders() ReminderRepo
	Reviews() ReviewRepo
	Ping(ctx context.Context) error
}

type GormStore struct {
	db        *gorm.DB
	users     UserRepo
	moods     MoodRepo
	reminders ReminderRepo
	reviews   ReviewRepo
}

func NewStore(db *gorm.DB) Store {
	return &GormStore{
		db:        db,
		users:     NewUserRepo(db),
		moods:     NewMoodRepo(db),
		reminders: NewReminderRepo(db),
		reviews:   NewReviewRepo(db),
	}
}

func (s *GormStore) Users() UserRepo         { return s.users }
func (s *GormStore) Moods() MoodRepo         { return s.moods }
func (s *GormStore) Reminders() ReminderRepo { return s.reminders }
func (s *GormStore) Reviews() ReviewRepo     { return s.reviews }

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
