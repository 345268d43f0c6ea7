package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	// defaultMaxLen - примерная длина стрима, старые события обрезаются
	defaultMaxLen   = 10000
	readBatchSize   = 10
	readErrorPause  = time.Second
	defaultBlockFor = time.Second
)

type streamRepository struct {
	client   *redis.Client
	logger   *zap.Logger
	blockFor time.Duration
	maxLen   int64
}

// StreamOption настраивает streamRepository
type StreamOption func(*streamRepository)

// WithBlock задаёт, сколько XREADGROUP ждёт новых сообщений
func WithBlock(d time.Duration) StreamOption {
	return func(r *streamRepository) {
		if d > 0 {
			r.blockFor = d
		}
	}
}

// WithMaxLen ограничивает длину стрима при публикации
func WithMaxLen(n int64) StreamOption {
	return func(r *streamRepository) { r.maxLen = n }
}

// NewStreamRepository создает новый экземпляр StreamRepository
func NewStreamRepository(client *redis.Client, logger *zap.Logger, opts ...StreamOption) repository.StreamRepository {
	r := &streamRepository{
		client:   client,
		logger:   logger,
		blockFor: defaultBlockFor,
		maxLen:   defaultMaxLen,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateConsumerGroup создаёт consumer group, читающую только новые сообщения.
// Стрим создаётся, если его ещё нет.
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		if strings.HasPrefix(err.Error(), "BUSYGROUP") {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

func (r *streamRepository) DeleteConsumerGroup(ctx context.Context, stream, group string) error {
	if err := r.client.XGroupDestroy(ctx, stream, group).Err(); err != nil {
		return fmt.Errorf("failed to destroy consumer group: %w", err)
	}
	r.logger.Info("Consumer group destroyed",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeStream читает новые сообщения группы в канал. Канал закрывается,
// когда ctx отменён.
func (r *streamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	msgChan := make(chan domain.StreamMessage, readBatchSize)

	go func() {
		defer close(msgChan)

		for {
			if ctx.Err() != nil {
				r.logger.Info("Stream consumer stopped",
					zap.String("stream", stream),
					zap.String("consumer", consumer))
				return
			}

			result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    group,
				Consumer: consumer,
				Streams:  []string{stream, ">"},
				Count:    readBatchSize,
				Block:    r.blockFor,
			}).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}
				if ctx.Err() != nil {
					return
				}
				r.logger.Error("Failed to read from stream",
					zap.String("stream", stream),
					zap.Error(err))
				select {
				case <-time.After(readErrorPause):
				case <-ctx.Done():
					return
				}
				continue
			}

			for _, s := range result {
				for _, msg := range s.Messages {
					data, ok := msg.Values["data"].(string)
					if !ok {
						r.logger.Warn("Message does not contain 'data' field, acknowledging",
							zap.String("message_id", msg.ID))
						// иначе сообщение навсегда останется в pending группы
						_ = r.AckMessage(ctx, stream, group, msg.ID)
						continue
					}

					select {
					case msgChan <- domain.StreamMessage{ID: msg.ID, Data: data}:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return msgChan, nil
}

func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		r.logger.Error("Failed to acknowledge message",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.String("message_id", messageID),
			zap.Error(err))
		return fmt.Errorf("failed to acknowledge message: %w", err)
	}
	return nil
}

// PublishToStream кладёт data в поле "data" сообщения в виде JSON
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: r.maxLen,
		Approx: r.maxLen > 0,
		Values: map[string]interface{}{
			"data": string(jsonData),
		},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", id))
	return nil
}
