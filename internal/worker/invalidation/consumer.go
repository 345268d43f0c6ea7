// Package invalidation applies cache invalidations published by other
// dashboard replicas.
package invalidation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/domain/repository"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/worker"
	"go.uber.org/zap"
)

const (
	// DefaultGroupPrefix - префикс consumer group; каждая реплика читает
	// стрим своей группой, чтобы получить все события
	DefaultGroupPrefix = "venue-admin"
	cleanupTimeout     = 5 * time.Second
)

// Worker читает стрим инвалидаций и помечает ключи локального кеша
// устаревшими. События своей реплики пропускаются.
type Worker struct {
	*worker.BaseWorker
	streamRepo repository.StreamConsumer
	cache      *querycache.Cache
	stream     string
	origin     string
}

func NewWorker(
	streamRepo repository.StreamConsumer,
	cache *querycache.Cache,
	stream, groupPrefix, origin string,
	logger *zap.Logger,
) *Worker {
	if stream == "" {
		stream = domain.StreamDashboardInvalidate
	}
	if groupPrefix == "" {
		groupPrefix = DefaultGroupPrefix
	}
	group := fmt.Sprintf("%s:%s", groupPrefix, origin)

	return &Worker{
		BaseWorker: worker.NewBaseWorker("cache-invalidation", group, logger),
		streamRepo: streamRepo,
		cache:      cache,
		stream:     stream,
		origin:     origin,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.stream, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	defer w.cleanup()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(runCtx, w.stream, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	logger.Info("Listening for invalidations",
		zap.String("stream", w.stream),
		zap.String("consumer_group", w.ConsumerGroup()))

	for {
		select {
		case <-w.StopChan():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			w.handleMessage(runCtx, msg)
		}
	}
}

// handleMessage applies one event. Malformed messages are acked and dropped
// so they never block the group.
func (w *Worker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.InvalidationEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Dropping malformed invalidation",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	} else if event.Origin != w.origin {
		var marked []domain.QueryKey
		if event.Exact {
			marked = w.cache.InvalidateExact(event.Key)
		} else {
			marked = w.cache.Invalidate(event.Key)
		}
		logger.Debug("Applied remote invalidation",
			zap.Strings("key", event.Key),
			zap.Bool("exact", event.Exact),
			zap.String("origin", event.Origin),
			zap.Int("marked", len(marked)))
	}

	if err := w.streamRepo.AckMessage(ctx, w.stream, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Warn("Failed to ack invalidation", zap.String("message_id", msg.ID), zap.Error(err))
	}
}

// cleanup drops this replica's group so restarts don't leave groups behind.
func (w *Worker) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if err := w.streamRepo.DeleteConsumerGroup(ctx, w.stream, w.ConsumerGroup()); err != nil {
		w.Logger().Warn("Failed to delete consumer group", zap.Error(err))
	}
}
