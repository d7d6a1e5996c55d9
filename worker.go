package chatsweep

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Worker repeats a sweep: once at start, then every interval. A sweep still
// running when the ticker fires is not overlapped.
type Worker struct {
	engine   IEngine
	cfg      RunConfig
	workerID string
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewWorker(engine IEngine, cfg RunConfig, interval time.Duration) *Worker {
	return &Worker{
		engine:   engine,
		cfg:      cfg,
		workerID: uuid.New().String(),
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (w *Worker) ID() string {
	return w.workerID
}

func (w *Worker) Start(ctx context.Context) {
	log.Printf("Sweep worker %s started", w.workerID)

	if !w.sweep(ctx) {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Sweep worker %s stopping: context cancelled", w.workerID)

			return
		case <-w.stopCh:
			log.Printf("Sweep worker %s stopping: stop signal received", w.workerID)

			return
		case <-ticker.C:
			if !w.sweep(ctx) {
				return
			}
		}
	}
}

func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}

// sweep reports whether the worker should keep going.
func (w *Worker) sweep(ctx context.Context) bool {
	select {
	case <-w.stopCh:
		return false
	default:
	}

	cfg := w.cfg
	cfg.Stop = nil

	run, err := w.engine.Run(ctx, cfg)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return false
		}

		log.Printf("Sweep worker %s error: %v", w.workerID, err)

		return true
	}

	log.Printf("Sweep worker %s: run %s %s, deleted=%d failed=%d", w.workerID, run.ID, run.Status, run.Deleted, run.Failed)

	return run.Status != RunStatusStopped
}
