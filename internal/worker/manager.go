package worker

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// WorkerManager запускает воркеры рядом с HTTP сервером и останавливает их
// при завершении процесса.
type WorkerManager struct {
	workers []Worker
	logger  *zap.Logger
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		logger: logger,
	}
}

// Register добавляет воркер; после Start регистрация запрещена
func (m *WorkerManager) Register(w Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return fmt.Errorf("cannot register worker %q after start", w.Name())
	}
	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
	return nil
}

func (m *WorkerManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

// Start запускает каждый воркер в своей горутине. Ошибка воркера логируется
// и не останавливает остальные.
func (m *WorkerManager) Start(ctx context.Context) {
	m.mu.Lock()
	m.started = true
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	for _, w := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()

			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			if err := w.Start(ctx); err != nil && ctx.Err() == nil {
				m.logger.Error("Worker failed",
					zap.String("name", w.Name()),
					zap.Error(err))
			}
		}(w)
	}
}

// Stop сигнализирует всем воркерам и ждёт их до дедлайна ctx
func (m *WorkerManager) Stop(ctx context.Context) error {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))
	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped")
		return nil
	case <-ctx.Done():
		m.logger.Warn("Workers shutdown timed out")
		return fmt.Errorf("workers shutdown: %w", ctx.Err())
	}
}
