package dto

type SetReminderDTO struct {
	UserID       uint64 `json:"userId" validate:"required"`
	ReminderTime string `json:"reminderTime" validate:"required"`
}

// ReminderDTO 未设置时 reminderTime 为 null
type ReminderDTO struct {
	ReminderTime *string `json:"reminderTime"`
}
