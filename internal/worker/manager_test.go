package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	started atomic.Bool
	ignore  bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	if w.ignore {
		select {}
	}
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	a := &blockingWorker{BaseWorker: NewBaseWorker("a", "group", zap.NewNop())}
	b := &blockingWorker{BaseWorker: NewBaseWorker("b", "group", zap.NewNop())}
	require.NoError(t, m.Register(a))
	require.NoError(t, m.Register(b))
	assert.Equal(t, 2, m.Len())

	m.Start(context.Background())
	assert.Eventually(t, func() bool { return a.started.Load() && b.started.Load() }, time.Second, 5*time.Millisecond)

	assert.Error(t, m.Register(&blockingWorker{BaseWorker: NewBaseWorker("late", "group", zap.NewNop())}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))
	assert.True(t, a.IsStopped())

	// second stop is harmless
	require.NoError(t, a.Stop())
}

func TestWorkerManager_StopTimesOut(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	stuck := &blockingWorker{BaseWorker: NewBaseWorker("stuck", "group", zap.NewNop()), ignore: true}
	require.NoError(t, m.Register(stuck))
	m.Start(context.Background())
	assert.Eventually(t, stuck.started.Load, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, m.Stop(ctx), context.DeadlineExceeded)
}

func TestBaseWorker_ConsumerName(t *testing.T) {
	w := NewBaseWorker("x", "g", zap.NewNop())
	assert.NotEmpty(t, w.ConsumerName())
	assert.Equal(t, "g", w.ConsumerGroup())
	assert.False(t, w.IsStopped())
}
