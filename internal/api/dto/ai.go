package dto

type ReflectionDTO struct {
	EmotionIDs []string `json:"emotionIds"`
	Content    string   `json:"content"`
}

type ReflectionResultDTO struct {
	AIMessage       string              `json:"aiMessage"`
	Recommendations []RecommendationDTO `json:"recommendations"`
}

type AIReviewResultDTO struct {
	PeriodType string `json:"periodType"`
	PeriodKey  string `json:"periodKey"`
	Content    string `json:"content"`
}
