package api

import "Todak/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler     *handler.UserHandler
	MoodHandler     *handler.MoodHandler
	ReminderHandler *handler.ReminderHandler
	ReviewHandler   *handler.ReviewHandler
	AIHandler       *handler.AIHandler
	ReportHandler   *handler.ReportHandler
	SystemHandler   *handler.SystemHandler
}
