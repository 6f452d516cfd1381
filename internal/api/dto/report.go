package dto

type EmotionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

type SegmentDTO struct {
	EmotionID string  `json:"emotionId"`
	Color     string  `json:"color"`
	Share     float64 `json:"share"`
}

type DayDTO struct {
	Date     string       `json:"date"`
	HasValue bool         `json:"hasValue"`
	Segments []SegmentDTO `json:"segments"`
}

type EmotionCountDTO struct {
	EmotionDTO
	Count int `json:"count"`
}

type ReportDTO struct {
	PeriodType    string            `json:"periodType"`
	PeriodKey     string            `json:"periodKey"`
	Start         string            `json:"start"`
	End           string            `json:"end"`
	TotalRecords  int               `json:"totalRecords"`
	Days          []DayDTO          `json:"days"`
	MonthlyCounts map[string]int    `json:"monthlyCounts"`
	Months        []string          `json:"months"`
	Streak        int               `json:"streak"`
	Palette       []EmotionCountDTO `json:"palette"`
}
