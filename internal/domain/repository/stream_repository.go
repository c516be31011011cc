package repository

import (
	"context"

	"github.com/foodspot-microservice/internal/domain"
)

// StreamRepository - публикация и чтение событий поиска через Redis Streams
type StreamRepository interface {
	// PublishSearchEvent добавляет событие в стрим событий поиска
	PublishSearchEvent(ctx context.Context, event domain.SearchEvent) error

	// CreateConsumerGroup создаёт consumer group для стрима
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream читает сообщения стрима через consumer group
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
