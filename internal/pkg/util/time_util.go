package util

import (
	"Todak/internal/pkg/consts"
	"errors"
	"time"
)

var ErrTimeFormat = errors.New("invalid time of day")

// ParseDate 严格的 YYYY-MM-DD
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(consts.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(consts.DateLayout) != s {
		return time.Time{}, errors.New("non canonical date")
	}
	return t, nil
}

// NormalizeTimeOfDay 接受 HH:MM 或 HH:MM:SS，统一成 HH:MM:SS
func NormalizeTimeOfDay(s string) (string, error) {
	for _, layout := range []string{consts.ShortTimeLayout, consts.TimeLayout} {
		if len(s) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format(consts.TimeLayout), nil
		}
	}
	return "", ErrTimeFormat
}

// ShortTimeOfDay HH:MM:SS 截成 HH:MM
func ShortTimeOfDay(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
