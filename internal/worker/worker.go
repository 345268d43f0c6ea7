package worker

import (
	"context"
)

// Worker - фоновая задача процесса API
type Worker interface {
	// Start блокирует до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop просит воркер завершиться
	Stop() error

	Name() string
}
