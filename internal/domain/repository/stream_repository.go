package repository

import (
	"context"

	"github.com/venue-admin/internal/domain"
)

// StreamConsumer - чтение стрима инвалидаций своей consumer group.
// У каждой реплики своя группа, поэтому она создаётся на старте
// и удаляется при остановке.
type StreamConsumer interface {
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	DeleteConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream отдаёт новые сообщения группы, пока жив ctx.
	// Канал закрывается при остановке.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)
	AckMessage(ctx context.Context, stream, group, messageID string) error
}

// StreamPublisher кладёт data в стрим JSON-ом
type StreamPublisher interface {
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}

type StreamRepository interface {
	StreamConsumer
	StreamPublisher
}
