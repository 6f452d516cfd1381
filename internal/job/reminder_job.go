package job

import (
	"Todak/internal/pkg/consts"
	"Todak/internal/pkg/kafka"
	"Todak/internal/pkg/logger"
	"Todak/internal/pkg/redis"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// lockTTL 覆盖同一分钟内其他实例的扫描
const lockTTL = 2 * time.Minute

// ReminderJob 每分钟扫描提醒时间到点、且今天还没有记录的用户
type ReminderJob struct {
	reminderRepo repository.ReminderRepo
	moodRepo     repository.MoodRepo
	cache        *redis.Cache
	clock        util.Clock
	publisher    kafka.ReminderPublisher
}

func NewReminderJob(
	reminderRepo repository.ReminderRepo,
	moodRepo repository.MoodRepo,
	cache *redis.Cache,
	clock util.Clock,
	publisher kafka.ReminderPublisher,
) *ReminderJob {
	return &ReminderJob{
		reminderRepo: reminderRepo,
		moodRepo:     moodRepo,
		cache:        cache,
		clock:        clock,
		publisher:    publisher,
	}
}

func (s *ReminderJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if _, err := s.Dispatch(ctx); err != nil {
		log.ErrorContext(ctx, "dispatch reminders error", "err", err)
	}
}

// Dispatch 返回成功发出的事件数
func (s *ReminderJob) Dispatch(ctx context.Context) (int, error) {
	now := s.clock.Now()
	today := now.Format(consts.DateLayout)
	minute := now.Format(consts.ShortTimeLayout)

	lockKey := consts.ReminderDispatchLock + today + ":" + minute
	traceID, _ := ctx.Value(logger.TraceIDKey).(string)
	ok, err := s.cache.TryLock(ctx, lockKey, traceID, lockTTL)
	if err != nil {
		return 0, err
	}
	if !ok {
		log.DebugContext(ctx, "reminder dispatch already claimed", "minute", minute)
		return 0, nil
	}

	reminders, err := s.reminderRepo.ListByMinute(ctx, minute)
	if err != nil {
		return 0, err
	}
	if len(reminders) == 0 {
		return 0, nil
	}

	userIDs := make([]uint64, 0, len(reminders))
	for _, r := range reminders {
		userIDs = append(userIDs, r.UserID)
	}
	recorded, err := s.moodRepo.ExistsMoodOnDate(ctx, userIDs, today)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, r := range reminders {
		if recorded[r.UserID] {
			continue
		}
		err = s.publisher.PublishReminder(ctx, kafka.ReminderEvent{
			UserID:       r.UserID,
			Nickname:     r.User.Nickname,
			ReminderTime: util.ShortTimeOfDay(r.ReminderTime),
			Date:         today,
			TraceID:      traceID,
		})
		if err != nil {
			log.ErrorContext(ctx, "publish reminder error", "user_id", r.UserID, "err", err)
			continue
		}
		sent++
	}

	log.InfoContext(ctx, "reminders dispatched", "minute", minute, "due", len(reminders), "sent", sent)
	return sent, nil
}
