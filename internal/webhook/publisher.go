package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_portal/internal/models"
)

const (
	reportQueueKey = "report_events"
)

// ReportEvent - событие об отправленном сообщении для экстренных служб
type ReportEvent struct {
	ID            uuid.UUID        `json:"id"`
	Reference     string           `json:"reference"`
	Type          string           `json:"type"`
	TypeLabel     string           `json:"type_label"`
	LocationText  string           `json:"location_text,omitempty"`
	GPSCoordinate *models.GeoPoint `json:"gps_coordinate,omitempty"`
	Description   string           `json:"description,omitempty"`
	HasPhoto      bool             `json:"has_photo"`
	SubmittedAt   time.Time        `json:"submitted_at"`
}

// NewReportEvent собирает событие из сохраненного сообщения
func NewReportEvent(r *models.SubmittedReport) ReportEvent {
	return ReportEvent{
		ID:            r.ID,
		Reference:     r.Reference,
		Type:          string(r.Type),
		TypeLabel:     r.Type.Label(),
		LocationText:  r.LocationText,
		GPSCoordinate: r.GPSCoordinate,
		Description:   r.Description,
		HasPhoto:      r.HasPhoto,
		SubmittedAt:   r.SubmittedAt,
	}
}

// Publisher - интерфейс для публикации событий
//
//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/shenikar/disaster_portal/internal/webhook Publisher
type Publisher interface {
	Publish(ctx context.Context, event ReportEvent) error
}

// RedisPublisher складывает события в очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, reportQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish report event to Redis: %w", err)
	}
	return nil
}
