package consts

const (
	TokenBlacklistKey = "auth:blacklist:"
	MoodListKey       = "mood:list:"
)

const (
	ReminderDispatchLock = "lock:reminder:dispatch:"
)
