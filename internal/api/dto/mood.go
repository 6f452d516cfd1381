package dto

// SaveMoodDTO 保存当天心情，emotionIds 的业务规则在 service 层校验
type SaveMoodDTO struct {
	UserID          uint64              `json:"userId" validate:"required"`
	Date            string              `json:"date" validate:"required,datetime=2006-01-02"`
	EmotionIDs      []string            `json:"emotionIds"`
	Content         string              `json:"content"`
	AIMessage       *string             `json:"aiMessage,omitempty"`
	Recommendations []RecommendationDTO `json:"recommendations,omitempty" validate:"omitempty,max=10,dive"`
}

type RecommendationDTO struct {
	Type        string  `json:"type" validate:"required,oneof=music video activity"`
	Key         string  `json:"key" validate:"max=64"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	Link        *string `json:"link,omitempty" validate:"omitempty,max=1024"`
}

type MoodRecordDTO struct {
	ID              uint64              `json:"id"`
	ExternalID      string              `json:"externalId"`
	UserID          uint64              `json:"userId"`
	Date            string              `json:"date"`
	EmotionIDs      []string            `json:"emotionIds"`
	Content         string              `json:"content"`
	AIMessage       *string             `json:"aiMessage"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	Timestamp       int64               `json:"timestamp"`
}
