package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_connect/internal/models"
)

const (
	webhookQueueKey = "webhook_events"

	// EventIncidentReported - инцидент успешно подан через шлюз
	EventIncidentReported = "incident.reported"
)

// Event - структура для данных вебхука
type Event struct {
	Type         string              `json:"type"`
	IncidentID   int64               `json:"incident_id,omitempty"`
	Title        string              `json:"title"`
	IncidentType models.IncidentType `json:"incident_type"`
	Location     string              `json:"location,omitempty"`
	ReporterID   int64               `json:"reporter_id"`
	CampusID     int64               `json:"campus_id"`
	MediaCount   int                 `json:"media_count"`
	Timestamp    time.Time           `json:"timestamp"`
}

// NewIncidentReported собирает событие о поданном инциденте.
// created может быть nil, если сервер не вернул созданную запись.
func NewIncidentReported(report models.IncidentReport, created *models.Incident, reporter models.UserProfile, at time.Time) Event {
	event := Event{
		Type:         EventIncidentReported,
		Title:        report.Title,
		IncidentType: report.IncidentType,
		Location:     report.Location,
		ReporterID:   reporter.ID,
		CampusID:     reporter.CampusID,
		MediaCount:   len(report.MediaFiles),
		Timestamp:    at.UTC(),
	}
	if created != nil {
		event.IncidentID = created.ID
		if created.Campus.ID != 0 {
			event.CampusID = created.Campus.ID
		}
	}
	return event
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
