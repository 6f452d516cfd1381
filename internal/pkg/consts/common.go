package consts

const (
	DateLayout      = "2006-01-02"
	MonthLayout     = "2006-01"
	TimeLayout      = "15:04:05"
	ShortTimeLayout = "15:04"
)

const (
	DefaultTimezone = "Asia/Seoul"
)
