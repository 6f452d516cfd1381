package api

import (
	"Todak/internal/api/middleware"
	"Todak/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRouter auth 为鉴权中间件，logIndex 写入访问日志供 Logstash 分流
func SetupRouter(group *HandlersGroup, auth gin.HandlerFunc, logIndex string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, logIndex)

	apiGroup := r.Group("/api")
	{
		// 无需登录即可访问的接口
		apiGroup.GET("/health", group.SystemHandler.Health)
		apiGroup.GET("/emotions", group.ReportHandler.Emotions)
		apiGroup.POST("/signup", group.UserHandler.Signup)
		apiGroup.POST("/login", group.UserHandler.Login)
		apiGroup.GET("/check-id", group.UserHandler.CheckLoginID)

		authGroup := apiGroup.Group("")
		authGroup.Use(auth)
		{
			authGroup.POST("/logout", group.UserHandler.Logout)
			authGroup.PATCH("/users/:id/guide", group.UserHandler.MarkGuideSeen)
			authGroup.DELETE("/users/:id", group.UserHandler.DeleteUser)

			authGroup.GET("/moods", group.MoodHandler.ListMoods)
			authGroup.POST("/moods", group.MoodHandler.SaveMood)
			authGroup.DELETE("/moods/:id", group.MoodHandler.DeleteMood)

			authGroup.GET("/reminder", group.ReminderHandler.GetReminder)
			authGroup.POST("/reminder", group.ReminderHandler.SetReminder)
			authGroup.DELETE("/reminder", group.ReminderHandler.DeleteReminder)

			authGroup.GET("/reviews", group.ReviewHandler.GetReview)
			authGroup.POST("/reviews", group.ReviewHandler.PutReview)
			authGroup.POST("/reviews/resolve", group.ReviewHandler.ResolveReview)

			authGroup.GET("/report", group.ReportHandler.GetReport)
		}

		aiGroup := authGroup.Group("/ai")
		{
			aiGroup.POST("/reflection", group.AIHandler.Reflection)
			aiGroup.POST("/review", group.AIHandler.Review)
		}
	}

	return r
}
