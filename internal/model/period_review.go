package model

import "time"

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// PeriodReview AI 周/月回顾缓存
type PeriodReview struct {
	ID         uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"not null;uniqueIndex:idx_user_period,priority:1"`
	PeriodType string `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_period,priority:2"`
	PeriodKey  string `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_period,priority:3"`
	Content    string `gorm:"type:text;not null"`
	LastMoodTs int64  `gorm:"not null;default:0;column:last_mood_ts"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (PeriodReview) TableName() string {
	return "period_reviews"
}
