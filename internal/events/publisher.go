package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/config"
)

// Типы доменных событий, публикуемых в поток.
const (
	TypeIncidentCreated = "incident.created"
	TypeWarningCreated  = "warning.created"
)

// Event - событие жизненного цикла инцидента или предупреждения.
type Event struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Publisher - интерфейс публикации доменных событий.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// KafkaPublisher пишет события в топик Kafka.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *logrus.Logger
}

// NewKafkaPublisher создает продюсер для настроенного топика.
func NewKafkaPublisher(cfg *config.Config, logger *logrus.Logger) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &KafkaPublisher{writer: w, logger: logger}
}

// Publish сериализует событие и отправляет его одним сообщением.
// Ключ - идентификатор сущности, чтобы события одной сущности
// попадали в одну партицию.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}
	msg := kafkago.Message{
		Key:   []byte(event.EntityID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "occurred_at", Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда брокеры Kafka не сконфигурированы.
type NopPublisher struct{}

func NewNopPublisher() NopPublisher { return NopPublisher{} }

func (NopPublisher) Publish(ctx context.Context, event Event) error { return nil }
