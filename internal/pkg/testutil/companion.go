package testutil

import (
	"Todak/internal/pkg/llm"
	"context"
	"sync/atomic"
)

// StubCompanion 固定返回值，记录回顾生成次数
type StubCompanion struct {
	Message     string
	Media       llm.MediaRecommendations
	Review      string
	ReviewCalls atomic.Int32
}

func NewStubCompanion() *StubCompanion {
	return &StubCompanion{
		Message: "오늘도 잘 버텼어. 🌿",
		Media:   llm.MediaFallback(),
		Review:  "한 주 동안 수고했어.",
	}
}

func (s *StubCompanion) EmpathyMessage(context.Context, []string, string) string {
	return s.Message
}

func (s *StubCompanion) MediaRecommendations(context.Context, []string, string) llm.MediaRecommendations {
	return s.Media
}

func (s *StubCompanion) PeriodReview(_ context.Context, entries []llm.ReviewEntry, periodType string) string {
	if len(entries) == 0 {
		return llm.ReviewFallback(periodType, false)
	}
	s.ReviewCalls.Add(1)
	return s.Review
}
