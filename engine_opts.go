package chatsweep

import (
	"context"
	"time"
)

const DefaultDelay = 1500 * time.Millisecond

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

type EngineOption func(engine *Engine)

func WithEngineStore(store Store) EngineOption {
	return func(engine *Engine) {
		engine.store = store
	}
}

func WithEnginePluginManager(pluginManager *PluginManager) EngineOption {
	return func(engine *Engine) {
		engine.pluginManager = pluginManager
	}
}

// WithEngineSleeper replaces the timer used for the delay before each deletion.
func WithEngineSleeper(sleeper Sleeper) EngineOption {
	return func(engine *Engine) {
		engine.sleep = sleeper
	}
}

// WithEngineClock replaces the clock used to compute the cutoff date.
func WithEngineClock(now func() time.Time) EngineOption {
	return func(engine *Engine) {
		engine.now = now
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
