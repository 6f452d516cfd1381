package model

const (
	RecTypeMusic    = "music"
	RecTypeVideo    = "video"
	RecTypeActivity = "activity"
)

type MoodRecommendation struct {
	ID           uint64  `gorm:"primaryKey"`
	MoodRecordID uint64  `gorm:"not null;index:idx_mood_rec_sort,priority:1"`
	RecType      string  `gorm:"type:varchar(20);not null"`
	RecKey       string  `gorm:"type:varchar(64);not null"`
	Title        string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:text"`
	Link         *string `gorm:"type:varchar(1024)"`
	SortOrder    int8    `gorm:"not null;default:0;index:idx_mood_rec_sort,priority:2"`
}

func (MoodRecommendation) TableName() string {
	return "mood_recommendations"
}
