package model

type MoodRecordEmotion struct {
	ID           uint64 `gorm:"primaryKey"`
	MoodRecordID uint64 `gorm:"not null;index:idx_mood_record_sort,priority:1"`
	EmotionID    string `gorm:"type:varchar(20);not null"`
	SortOrder    int8   `gorm:"not null;default:0;index:idx_mood_record_sort,priority:2"`
}

func (MoodRecordEmotion) TableName() string {
	return "mood_record_emotions"
}
