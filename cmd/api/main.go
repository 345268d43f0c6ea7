package main

// @title Venue Admin BFF API
// @version 1.0.0
// @description Backend-for-frontend админ-панели площадок. Держит кеш запросов к REST бэкенду,
// @description отправляет из форм только изменённые поля и инвалидирует зависимые данные после мутаций.

// @contact.name API Support

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/venue-admin/docs"
	"github.com/venue-admin/internal/config"
	httpDelivery "github.com/venue-admin/internal/delivery/http"
	"github.com/venue-admin/internal/delivery/http/handler"
	"github.com/venue-admin/internal/domain/repository"
	"github.com/venue-admin/internal/infrastructure/backend"
	"github.com/venue-admin/internal/pkg/logger"
	"github.com/venue-admin/internal/pkg/metrics"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/repository/redis"
	"github.com/venue-admin/internal/usecase"
	"github.com/venue-admin/internal/worker"
	"github.com/venue-admin/internal/worker/invalidation"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Venue Admin BFF")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("backend", cfg.Backend.BaseURL),
		zap.Bool("invalidation", cfg.Invalidation.Enabled),
	)

	// 3. Query cache and backend client
	cache := querycache.New(log, querycache.WithStaleTime(cfg.Cache.StaleTime))
	client := backend.NewClient(&cfg.Backend, log)

	// 4. Invalidation stream (optional)
	var (
		redisClient *redis.Redis
		streamRepo  repository.StreamRepository
		publisher   repository.InvalidationPublisher
		health      handler.HealthChecker
	)
	if cfg.Invalidation.Enabled {
		redisClient, err = redis.NewRedis(context.Background(), &cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		streamRepo = redis.NewStreamRepository(redisClient.Client(), log,
			redis.WithBlock(cfg.Invalidation.StreamReadTimeout))
		publisher = redis.NewInvalidationPublisher(streamRepo, cfg.Invalidation.Stream)
		health = redisClient
	}

	cacheSync := usecase.NewCacheSync(cache, publisher, log)

	workerManager := worker.NewWorkerManager(log)
	if streamRepo != nil {
		consumer := invalidation.NewWorker(
			streamRepo,
			cache,
			cfg.Invalidation.Stream,
			cfg.Invalidation.ConsumerGroup,
			cacheSync.Origin(),
			log,
		)
		if err := workerManager.Register(consumer); err != nil {
			log.Fatal("Failed to register invalidation worker", zap.Error(err))
		}
	}

	// 5. Initialize Use Cases
	userUC := usecase.NewUserUseCase(client, cacheSync, log)
	venueUC := usecase.NewVenueUseCase(client, cacheSync, log)
	imageUC := usecase.NewVenueImageUseCase(client, cacheSync, log)
	unavailabilityUC := usecase.NewVenueUnavailabilityUseCase(client, cacheSync, log)
	statsUC := usecase.NewStatsUseCase(userUC, venueUC, log)

	log.Info("Use cases initialized", zap.String("origin", cacheSync.Origin()))

	// 6. Initialize HTTP Handlers and Server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		User:                handler.NewUserHandler(userUC, statsUC, log),
		Venue:               handler.NewVenueHandler(venueUC, statsUC, log),
		VenueImage:          handler.NewVenueImageHandler(imageUC, log),
		VenueUnavailability: handler.NewVenueUnavailabilityHandler(unavailabilityUC, log),
		Health:              handler.NewHealthHandler(cache, health, log),
		Metrics:             metrics.New(cache),
	})

	// 7. Start workers and server
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if workerManager.Len() > 0 {
		workerManager.Start(ctx)
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	cancel()
	if err := workerManager.Stop(shutdownCtx); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
