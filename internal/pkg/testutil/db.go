package testutil

import (
	"Todak/internal/api/config"
	"Todak/internal/model"
	"Todak/internal/pkg/database"
	"Todak/internal/pkg/security"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// DB 每个测试一个独立的内存 sqlite，已完成迁移
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:todak_test_%d?mode=memory&cache=shared", dbSeq.Add(1))

	db, err := database.NewGormDB(&config.DBConfig{
		Driver:      "sqlite",
		DSN:         dsn,
		AutoMigrate: true,
	})
	require.NoError(tb, err)

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser 直接写库，密码为 pw123
func CreateUser(tb testing.TB, db *gorm.DB, loginID string) *model.User {
	tb.Helper()

	hash, err := security.HashPassword("pw123")
	require.NoError(tb, err)

	user := &model.User{
		LoginID:      loginID,
		PasswordHash: hash,
		Nickname:     loginID,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(tb, db.Create(user).Error)
	return user
}
