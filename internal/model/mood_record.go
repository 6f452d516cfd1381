package model

import (
	"time"
)

// MoodRecord 一个用户一天一条
type MoodRecord struct {
	ID          uint64  `gorm:"primaryKey"`
	UserID      uint64  `gorm:"not null;uniqueIndex:idx_user_record_date,priority:1"`
	RecordDate  string  `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_record_date,priority:2"`
	ExternalID  string  `gorm:"type:varchar(36);not null"`
	Content     string  `gorm:"type:text;not null"`
	AIMessage   *string `gorm:"type:text;column:ai_message"`
	TimestampMs int64   `gorm:"not null;column:timestamp_ms"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User            User                 `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Emotions        []MoodRecordEmotion  `gorm:"foreignKey:MoodRecordID;references:ID;constraint:OnDelete:CASCADE"`
	Recommendations []MoodRecommendation `gorm:"foreignKey:MoodRecordID;references:ID;constraint:OnDelete:CASCADE"`
}

func (MoodRecord) TableName() string {
	return "mood_records"
}

// EmotionIDs 按保存顺序返回，第一个为主情绪
func (m *MoodRecord) EmotionIDs() []string {
	ids := make([]string, 0, len(m.Emotions))
	for _, e := range m.Emotions {
		ids = append(ids, e.EmotionID)
	}
	return ids
}
