package cron

import (
	"Todak/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultReminderSpec 每分钟第 0 秒
const DefaultReminderSpec = "0 * * * * *"

type Manager struct {
	engine       *cron.Cron
	reminderJob  *job.ReminderJob
	reminderSpec string
}

// NewCronManager reminderJob 为 nil 时不注册提醒任务
func NewCronManager(reminderJob *job.ReminderJob, reminderSpec string) *Manager {
	if reminderSpec == "" {
		reminderSpec = DefaultReminderSpec
	}
	return &Manager{
		engine:       cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		reminderJob:  reminderJob,
		reminderSpec: reminderSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.reminderJob == nil {
		return nil
	}
	if _, err := s.engine.AddJob(s.reminderSpec, s.reminderJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
