package dto

import "time"

type PutReviewDTO struct {
	UserID            uint64 `json:"userId" validate:"required"`
	PeriodType        string `json:"periodType" validate:"required,oneof=weekly monthly"`
	PeriodKey         string `json:"periodKey" validate:"required,max=10"`
	Content           string `json:"content" validate:"required"`
	LastMoodTimestamp int64  `json:"lastMoodTimestamp" validate:"min=0"`
}

// PeriodQueryDTO 由 date 推算所在的周或月
type PeriodQueryDTO struct {
	UserID     uint64 `json:"userId" form:"userId" validate:"required"`
	PeriodType string `json:"periodType" form:"periodType" validate:"required,oneof=weekly monthly"`
	Date       string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
}

type ReviewDTO struct {
	ID                uint64    `json:"id"`
	UserID            uint64    `json:"userId"`
	PeriodType        string    `json:"periodType"`
	PeriodKey         string    `json:"periodKey"`
	Content           string    `json:"content"`
	LastMoodTimestamp int64     `json:"lastMoodTimestamp"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type ReviewResponseDTO struct {
	Review *ReviewDTO `json:"review"`
}
