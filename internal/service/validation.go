package service

import (
	"Todak/internal/model"
	"Todak/internal/pkg/emotion"
	"strings"
)

// ValidateEmotionIDs 1~3 个、不重复、都在目录里
func ValidateEmotionIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrEmotionRequired
	}
	if len(ids) > emotion.MaxPerRecord {
		return ErrEmotionTooMany
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !emotion.Valid(id) {
			return ErrEmotionUnknown
		}
		if _, ok := seen[id]; ok {
			return ErrEmotionDuplicate
		}
		seen[id] = struct{}{}
	}
	return nil
}

func ValidateContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrContentRequired
	}
	return trimmed, nil
}

func validRecType(t string) bool {
	switch t {
	case model.RecTypeMusic, model.RecTypeVideo, model.RecTypeActivity:
		return true
	}
	return false
}

func validPeriodType(t string) bool {
	return t == model.PeriodWeekly || t == model.PeriodMonthly
}
