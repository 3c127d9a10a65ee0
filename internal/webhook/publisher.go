package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "alert_events"
)

// Виды оповещений, доставляемых вебхуком.
const (
	KindSOSRaised       = "sos_raised"
	KindSOSResolved     = "sos_resolved"
	KindWarningIssued   = "warning_issued"
	KindWarningResolved = "warning_resolved"
)

// AlertEvent - полезная нагрузка оповещения о SOS или зональном
// предупреждении.
type AlertEvent struct {
	Kind        string    `json:"kind"`
	IncidentID  string    `json:"incident_id,omitempty"`
	WarningID   string    `json:"warning_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Pincode     string    `json:"pincode,omitempty"`
	Pincodes    []string  `json:"pincodes,omitempty"`
	Severity    string    `json:"severity,omitempty"`
	RiskLevel   string    `json:"risk_level,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// AlertPublisher - интерфейс для постановки оповещений в очередь доставки
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует оповещение в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
