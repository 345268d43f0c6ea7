package redis

import (
	"context"

	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/domain/repository"
)

type invalidationPublisher struct {
	streams repository.StreamPublisher
	stream  string
}

// NewInvalidationPublisher публикует инвалидации в stream
func NewInvalidationPublisher(streams repository.StreamPublisher, stream string) repository.InvalidationPublisher {
	if stream == "" {
		stream = domain.StreamDashboardInvalidate
	}
	return &invalidationPublisher{
		streams: streams,
		stream:  stream,
	}
}

func (p *invalidationPublisher) PublishInvalidation(ctx context.Context, event domain.InvalidationEvent) error {
	return p.streams.PublishToStream(ctx, p.stream, event)
}
