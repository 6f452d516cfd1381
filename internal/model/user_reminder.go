package model

import "time"

// UserReminder 每个用户最多一条，reminder_time 形如 21:30:00
type UserReminder struct {
	UserID       uint64 `gorm:"primaryKey;autoIncrement:false"`
	ReminderTime string `gorm:"type:varchar(8);not null;index:idx_reminder_time"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (UserReminder) TableName() string {
	return "user_reminders"
}
