package repository

import (
	"context"

	"github.com/venue-admin/internal/domain"
)

// InvalidationPublisher рассылает инвалидации кеша другим репликам дашборда
type InvalidationPublisher interface {
	PublishInvalidation(ctx context.Context, event domain.InvalidationEvent) error
}
