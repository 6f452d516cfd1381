package kafka

import (
	"Todak/internal/api/config"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ReminderEvent 推送服务消费的提醒事件
type ReminderEvent struct {
	UserID       uint64 `json:"userId"`
	Nickname     string `json:"nickname"`
	ReminderTime string `json:"reminderTime"`
	Date         string `json:"date"`
	TraceID      string `json:"traceId,omitempty"`
}

type ReminderPublisher interface {
	PublishReminder(ctx context.Context, event ReminderEvent) error
	Close() error
}

// NewReminderPublisher kafka 未启用时返回空实现
func NewReminderPublisher(cfg config.KafkaConfig) (ReminderPublisher, error) {
	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info("kafka disabled, reminder events will only be logged")
		return NopPublisher{}, nil
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, err
	}
	return NewSaramaPublisher(producer, cfg.ReminderTopic), nil
}

type SaramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaPublisher(producer sarama.SyncProducer, topic string) *SaramaPublisher {
	return &SaramaPublisher{producer: producer, topic: topic}
}

// PublishReminder 以 userId 为 key，同一用户的事件落在同一分区
func (s *SaramaPublisher) PublishReminder(ctx context.Context, event ReminderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.UserID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "reminder event sent", "user_id", event.UserID, "partition", partition, "offset", offset)
	return nil
}

func (s *SaramaPublisher) Close() error {
	return s.producer.Close()
}

type NopPublisher struct{}

func (NopPublisher) PublishReminder(ctx context.Context, event ReminderEvent) error {
	log.InfoContext(ctx, "reminder due", "user_id", event.UserID, "reminder_time", event.ReminderTime)
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
