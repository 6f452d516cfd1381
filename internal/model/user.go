package model

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primaryKey"`
	LoginID      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_login_id"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Nickname     string    `gorm:"type:varchar(50);not null"`
	StartDate    time.Time `gorm:"not null"`
	HasSeenGuide bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
