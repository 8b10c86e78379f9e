package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/bodycam_dashboard/internal/models"
)

const (
	alertQueueKey = "incident_alerts"
)

// AlertEvent - оповещение о новой записи с уровнем опасности выше None
type AlertEvent struct {
	IncidentID      string          `json:"incident_id"`
	Title           string          `json:"title"`
	Severity        models.Severity `json:"severity"`
	MatchedKeywords []string        `json:"matched_keywords"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	MediaRef        string          `json:"media_ref"`
	Timestamp       time.Time       `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher кладёт события в список Redis, откуда их забирает AlertWorker
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH в голову, воркер читает BRPOP с хвоста
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
