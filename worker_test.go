package chatsweep

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorker_StopsAfterStoppedRun(t *testing.T) {
	engine := NewMockIEngine(t)
	engine.EXPECT().Run(mock.Anything, mock.Anything).
		Return(&Run{ID: "r1", Status: RunStatusStopped}, nil).Once()

	worker := NewWorker(engine, RunConfig{TargetUser: "42", Channels: []string{"c1"}}, time.Hour)
	assert.NotEmpty(t, worker.ID())

	done := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorker_RepeatsUntilStopped(t *testing.T) {
	var calls atomic.Int32

	engine := NewMockIEngine(t)
	worker := NewWorker(engine, RunConfig{TargetUser: "42", Channels: []string{"c1"}}, 10*time.Millisecond)

	engine.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, cfg RunConfig) (*Run, error) {
			assert.Nil(t, cfg.Stop)

			if calls.Add(1) == 3 {
				worker.Stop()
			}

			return &Run{ID: "r", Status: RunStatusCompleted}, nil
		})

	done := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	assert.Equal(t, int32(3), calls.Load())
}

func TestWorker_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	engine := NewMockIEngine(t)
	engine.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, RunConfig) (*Run, error) {
			cancel()

			return &Run{Status: RunStatusFailed}, context.Canceled
		}).Once()

	worker := NewWorker(engine, RunConfig{}, time.Hour)
	worker.Start(ctx)
}
