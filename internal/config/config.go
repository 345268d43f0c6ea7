package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Backend      BackendConfig
	Redis        RedisConfig
	Cache        CacheConfig
	Log          LogConfig
	Invalidation InvalidationConfig
	CORS         CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// BackendConfig - настройки REST бэкенда площадок
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// StaleTime - 0 means entries stay fresh until invalidated
	StaleTime time.Duration
}

type LogConfig struct {
	Level string
}

// InvalidationConfig controls fan-out of cache invalidations between replicas.
type InvalidationConfig struct {
	Enabled           bool
	Stream            string
	ConsumerGroup     string
	StreamReadTimeout time.Duration
}

type CORSConfig struct {
	AllowOrigins string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when it exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:8000/api/v1")
	v.SetDefault("BACKEND_TIMEOUT", 15)
	v.SetDefault("CACHE_STALE_TIME", 0)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("INVALIDATION_ENABLED", false)
	v.SetDefault("INVALIDATION_STREAM", "stream:dashboard:invalidate")
	v.SetDefault("INVALIDATION_CONSUMER_GROUP", "")
	v.SetDefault("INVALIDATION_STREAM_READ_TIMEOUT", 1000)
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/"),
			Timeout: time.Duration(v.GetInt("BACKEND_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StaleTime: time.Duration(v.GetInt("CACHE_STALE_TIME")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Invalidation: InvalidationConfig{
			Enabled:           v.GetBool("INVALIDATION_ENABLED"),
			Stream:            v.GetString("INVALIDATION_STREAM"),
			ConsumerGroup:     v.GetString("INVALIDATION_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("INVALIDATION_STREAM_READ_TIMEOUT")) * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = 15 * time.Second
	}
	if cfg.Invalidation.StreamReadTimeout <= 0 {
		cfg.Invalidation.StreamReadTimeout = time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
