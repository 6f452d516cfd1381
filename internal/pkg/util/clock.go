package util

import (
	"Todak/internal/pkg/consts"
	"time"
)

// Clock 统一服务端"今天"的判定，时区由配置决定
type Clock interface {
	Now() time.Time
	Today() string
	Location() *time.Location
}

type SystemClock struct {
	loc *time.Location
}

// NewSystemClock 时区无法加载时退回 UTC+9
func NewSystemClock(timezone string) *SystemClock {
	return &SystemClock{loc: LoadLocation(timezone)}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *SystemClock) Today() string {
	return c.Now().Format(consts.DateLayout)
}

func (c *SystemClock) Location() *time.Location {
	return c.loc
}

// FixedClock 测试用
type FixedClock struct {
	At time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.At
}

func (c *FixedClock) Today() string {
	return c.At.Format(consts.DateLayout)
}

func (c *FixedClock) Location() *time.Location {
	return c.At.Location()
}

func LoadLocation(timezone string) *time.Location {
	if timezone == "" {
		timezone = consts.DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}
