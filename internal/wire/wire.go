package wire

import (
	"Todak/internal/api"
	"Todak/internal/api/config"
	"Todak/internal/api/handler"
	"Todak/internal/api/middleware"
	"Todak/internal/job"
	"Todak/internal/pkg/cron"
	"Todak/internal/pkg/kafka"
	"Todak/internal/pkg/llm"
	redispkg "Todak/internal/pkg/redis"
	"Todak/internal/pkg/security"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"Todak/internal/service"
	"errors"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrJWTSecretMissing = errors.New("jwt.secret is required")

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router    *gin.Engine
	DB        *gorm.DB
	Store     repository.Store
	CronMgr   *cron.Manager
	Publisher kafka.ReminderPublisher
}

// BuildApplication rdb 为 nil 时缓存与黑名单退化为空操作
func BuildApplication(db *gorm.DB, rdb *redis.Client, cfg *config.Config) (*ApplicationContainer, error) {
	if cfg.JWT.Secret == "" {
		return nil, ErrJWTSecretMissing
	}

	store := repository.NewStore(db)
	cache := redispkg.NewCache(rdb, time.Duration(cfg.Redis.MoodCacheTTL)*time.Second)
	clock := util.NewSystemClock(cfg.Server.Timezone)
	tokens := security.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)

	companion, err := llm.NewCompanionFromConfig(cfg.LLM)
	if err != nil {
		return nil, err
	}
	log.Info("LLM companion ready", "provider", companion.ProviderName())

	userService := service.NewUserService(store.Users(), tokens, cache, clock)
	moodService := service.NewMoodService(store.Moods(), cache, clock)
	reminderService := service.NewReminderService(store.Reminders(), store.Users())
	reviewService := service.NewReviewService(store.Reviews(), store.Moods(), companion, clock)
	reflectionService := service.NewReflectionService(companion)
	reportService := service.NewReportService(store.Moods(), clock)

	handlers := &api.HandlersGroup{
		UserHandler:     handler.NewUserHandler(userService),
		MoodHandler:     handler.NewMoodHandler(moodService),
		ReminderHandler: handler.NewReminderHandler(reminderService),
		ReviewHandler:   handler.NewReviewHandler(reviewService),
		AIHandler:       handler.NewAIHandler(reflectionService, reviewService),
		ReportHandler:   handler.NewReportHandler(reportService),
		SystemHandler:   handler.NewSystemHandler(store),
	}

	router := api.SetupRouter(handlers, middleware.AuthMiddleware(tokens, cache), cfg.Logstash.Index)

	publisher, err := kafka.NewReminderPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	var reminderJob *job.ReminderJob
	if cfg.Reminder.Enabled {
		reminderJob = job.NewReminderJob(store.Reminders(), store.Moods(), cache, clock, publisher)
	}
	cronMgr := cron.NewCronManager(reminderJob, cfg.Reminder.Spec)

	return &ApplicationContainer{
		Router:    router,
		DB:        db,
		Store:     store,
		CronMgr:   cronMgr,
		Publisher: publisher,
	}, nil
}
