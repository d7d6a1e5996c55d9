package metrics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rom8726/chatsweep"
)

var _ chatsweep.Plugin = (*MetricsPlugin)(nil)

type MetricsPlugin struct {
	chatsweep.BasePlugin

	collector        MetricsCollector
	runStartTimes    map[string]time.Time
	deleteStartTimes map[string]time.Time
	matchedSoFar     map[string]int
	mu               sync.Mutex
}

func New(collector MetricsCollector) *MetricsPlugin {
	return &MetricsPlugin{
		BasePlugin:       chatsweep.NewBasePlugin("metrics", chatsweep.PriorityHigh),
		collector:        collector,
		runStartTimes:    make(map[string]time.Time),
		deleteStartTimes: make(map[string]time.Time),
		matchedSoFar:     make(map[string]int),
	}
}

func (p *MetricsPlugin) OnRunStart(ctx context.Context, run *chatsweep.Run) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.runStartTimes[run.ID] = time.Now()

	if p.collector != nil {
		p.collector.RecordRunStarted(run.DryRun)
	}

	return nil
}

func (p *MetricsPlugin) OnRunComplete(ctx context.Context, run *chatsweep.Run) error {
	p.finishRun(run)

	return nil
}

func (p *MetricsPlugin) OnRunFailed(ctx context.Context, run *chatsweep.Run, err error) error {
	p.finishRun(run)

	return nil
}

func (p *MetricsPlugin) finishRun(run *chatsweep.Run) {
	p.mu.Lock()
	defer p.mu.Unlock()

	startTime, ok := p.runStartTimes[run.ID]
	if !ok {
		return
	}

	delete(p.runStartTimes, run.ID)
	delete(p.matchedSoFar, run.ID)

	if p.collector != nil {
		p.collector.RecordRunFinished(run.Status, time.Since(startTime))
	}
}

func (p *MetricsPlugin) OnPageFetched(ctx context.Context, run *chatsweep.Run, page []chatsweep.Message) error {
	p.mu.Lock()
	// run.Matched already includes this page
	matched := run.Matched - p.matchedSoFar[run.ID]
	p.matchedSoFar[run.ID] = run.Matched
	p.mu.Unlock()

	if p.collector != nil {
		p.collector.RecordPageFetched(run.CurrentChannel, len(page), matched)
	}

	return nil
}

func (p *MetricsPlugin) OnDeleteStart(ctx context.Context, run *chatsweep.Run, message *chatsweep.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.deleteStartTimes[deleteKey(run, message)] = time.Now()

	return nil
}

func (p *MetricsPlugin) OnDeleteComplete(ctx context.Context, run *chatsweep.Run, message *chatsweep.Message) error {
	duration, ok := p.deleteDuration(run, message)

	// dry runs delete nothing
	if run.DryRun {
		return nil
	}

	if ok && p.collector != nil {
		p.collector.RecordMessageDeleted(message.ChannelID, duration)
	}

	return nil
}

func (p *MetricsPlugin) OnDeleteFailed(
	ctx context.Context,
	run *chatsweep.Run,
	message *chatsweep.Message,
	err error,
) error {
	duration, _ := p.deleteDuration(run, message)

	statusCode := 0
	var apiErr *chatsweep.APIError
	if errors.As(err, &apiErr) {
		statusCode = apiErr.StatusCode
	}

	if p.collector != nil {
		p.collector.RecordDeleteFailed(message.ChannelID, statusCode, duration)
	}

	return nil
}

func (p *MetricsPlugin) deleteDuration(run *chatsweep.Run, message *chatsweep.Message) (time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := deleteKey(run, message)

	startTime, ok := p.deleteStartTimes[key]
	if !ok {
		return 0, false
	}

	delete(p.deleteStartTimes, key)

	return time.Since(startTime), true
}

func deleteKey(run *chatsweep.Run, message *chatsweep.Message) string {
	return run.ID + "/" + message.ID
}
