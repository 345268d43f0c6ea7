package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/venue-admin/internal/config"
	"go.uber.org/zap"
)

const (
	clientName  = "venue-admin"
	pingTimeout = 2 * time.Second
)

// Redis держит подключение для стрима инвалидаций и отвечает на /health.
type Redis struct {
	client *redis.Client
	addr   string
	logger *zap.Logger
}

// NewRedis подключается и проверяет соединение. Реплика без Redis
// не увидит изменений соседей, поэтому ошибка здесь фатальна для старта.
func NewRedis(ctx context.Context, cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	addr := cfg.Addr()
	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: clientName,
	})

	r := &Redis{client: client, addr: addr, logger: logger}
	if err := r.Health(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("Redis connected", zap.String("addr", addr), zap.Int("db", cfg.DB))
	return r, nil
}

// Health пингует Redis, не дольше pingTimeout.
func (r *Redis) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s unreachable: %w", r.addr, err)
	}
	return nil
}

func (r *Redis) Client() *redis.Client {
	return r.client
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection", zap.String("addr", r.addr))
	return r.client.Close()
}
