package chatsweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

type RunConfig struct {
	// Channels are channel ids or page locations ending with the channel id.
	Channels   []string
	TargetUser string
	Usernames  []string
	// Months is the retention window: only messages older than now-Months are deleted.
	Months   int
	PageSize int
	Delay    time.Duration
	DryRun   bool
	// Stop is optional; the engine allocates one when nil.
	Stop *StopFlag
}

func (cfg RunConfig) withDefaults() RunConfig {
	channels := make([]string, 0, len(cfg.Channels))
	for _, channel := range cfg.Channels {
		if id := ChannelFromLocation(channel); id != "" {
			channels = append(channels, id)
		}
	}
	cfg.Channels = channels

	if cfg.Months <= 0 {
		cfg.Months = 2
	}

	if cfg.PageSize <= 0 || cfg.PageSize > DefaultPageSize {
		cfg.PageSize = DefaultPageSize
	}

	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}

	return cfg
}

func (cfg RunConfig) validate() error {
	if cfg.TargetUser == "" {
		return ErrEmptyTarget
	}

	if len(cfg.Channels) == 0 {
		return ErrNoChannels
	}

	return nil
}

type Engine struct {
	client        ChannelClient
	store         Store
	pluginManager *PluginManager
	sleep         Sleeper
	now           func() time.Time

	mu        sync.Mutex
	stopFlags map[string]*StopFlag
}

func NewEngine(client ChannelClient, opts ...EngineOption) *Engine {
	engine := &Engine{
		client:        client,
		store:         NewMemoryStore(),
		pluginManager: NewPluginManager(),
		sleep:         sleepContext,
		now:           time.Now,
		stopFlags:     make(map[string]*StopFlag),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

func (engine *Engine) Store() Store {
	return engine.store
}

// Run sweeps every configured channel one after the other. Fetch errors abort
// the run and are returned; delete errors are logged and skipped.
func (engine *Engine) Run(ctx context.Context, cfg RunConfig) (*Run, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}

	stop := cfg.Stop
	if stop == nil {
		stop = NewStopFlag()
	}

	startedAt := engine.now()
	run := &Run{
		Status:     RunStatusRunning,
		Phase:      PhaseFetching,
		TargetUser: cfg.TargetUser,
		Channels:   cfg.Channels,
		Cutoff:     startedAt.AddDate(0, -cfg.Months, 0),
		DryRun:     cfg.DryRun,
		StartedAt:  &startedAt,
	}

	if err := engine.store.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	engine.trackStop(run.ID, stop)
	defer engine.untrackStop(run.ID)

	_ = engine.store.LogEvent(ctx, run.ID, EventRunStarted, map[string]any{
		KeyCutoff: run.Cutoff,
		KeyDryRun: run.DryRun,
	})

	if err := engine.pluginManager.ExecuteRunStart(ctx, run); err != nil {
		return engine.failRun(ctx, run, err)
	}

	filter := NewFilter(cfg.TargetUser, cfg.Usernames, run.Cutoff)

	for _, channelID := range cfg.Channels {
		stopped, err := engine.sweepChannel(ctx, run, channelID, filter, cfg, stop)
		if err != nil {
			return engine.failRun(ctx, run, err)
		}

		if stopped {
			return engine.finishRun(ctx, run, RunStatusStopped), nil
		}
	}

	return engine.finishRun(ctx, run, RunStatusCompleted), nil
}

func (engine *Engine) sweepChannel(
	ctx context.Context,
	run *Run,
	channelID string,
	filter Filter,
	cfg RunConfig,
	stop *StopFlag,
) (stopped bool, err error) {
	run.CurrentChannel = channelID
	run.Cursor = ""

	_ = engine.store.LogEvent(ctx, run.ID, EventChannelStarted, map[string]any{
		KeyChannelID: channelID,
	})

	var before string

	for {
		if stop.Raised() {
			return true, nil
		}

		run.Phase = PhaseFetching

		page, err := engine.client.ListMessages(ctx, channelID, before, cfg.PageSize)
		if err != nil {
			return false, fmt.Errorf("list messages of channel %s: %w", channelID, err)
		}

		run.Pages++

		if len(page) == 0 {
			engine.saveRun(ctx, run)

			return false, nil
		}

		before = page[len(page)-1].ID
		run.Cursor = before
		run.Scanned += len(page)

		run.Phase = PhaseFiltering
		matched := filter.Apply(page)
		run.Matched += len(matched)

		_ = engine.store.LogEvent(ctx, run.ID, EventPageFetched, map[string]any{
			KeyChannelID: channelID,
			KeyCursor:    before,
			KeyPageSize:  len(page),
			KeyMatched:   len(matched),
		})
		engine.pluginManager.ExecutePageFetched(ctx, run, page)

		run.Phase = PhaseDeleting
		engine.saveRun(ctx, run)

		for i := range matched {
			if matched[i].ChannelID == "" {
				matched[i].ChannelID = channelID
			}

			if err := engine.sleep(ctx, cfg.Delay); err != nil {
				return false, fmt.Errorf("wait before delete: %w", err)
			}

			if err := engine.deleteMessage(ctx, run, channelID, &matched[i]); err != nil {
				return false, err
			}
		}

		engine.saveRun(ctx, run)
	}
}

func (engine *Engine) deleteMessage(ctx context.Context, run *Run, channelID string, message *Message) error {
	if err := engine.pluginManager.ExecuteDeleteStart(ctx, run, message); err != nil {
		slog.DebugContext(ctx, "delete vetoed by plugin", "channel_id", channelID, "message_id", message.ID)
		engine.recordFailure(ctx, run, channelID, message, err)

		return nil
	}

	slog.InfoContext(ctx, fmt.Sprintf("%s: %s", message.Timestamp.Format(time.RFC3339), message.Content),
		"channel_id", channelID,
		"message_id", message.ID,
		"dry_run", run.DryRun,
	)

	if run.DryRun {
		engine.recordDeletion(ctx, run, channelID, message, 0, nil)
		engine.pluginManager.ExecuteDeleteComplete(ctx, run, message)

		return nil
	}

	if err := engine.client.DeleteMessage(ctx, channelID, message.ID); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("delete message %s: %w", message.ID, ctxErr)
		}

		engine.recordFailure(ctx, run, channelID, message, err)

		return nil
	}

	run.Deleted++
	engine.recordDeletion(ctx, run, channelID, message, http.StatusNoContent, nil)

	_ = engine.store.LogEvent(ctx, run.ID, EventMessageDeleted, map[string]any{
		KeyChannelID: channelID,
		KeyMessageID: message.ID,
	})
	engine.pluginManager.ExecuteDeleteComplete(ctx, run, message)

	return nil
}

func (engine *Engine) recordFailure(ctx context.Context, run *Run, channelID string, message *Message, deleteErr error) {
	run.Failed++

	statusCode := 0
	attrs := []any{
		"channel_id", channelID,
		"message_id", message.ID,
		"error", deleteErr,
	}

	var apiErr *APIError
	if errors.As(deleteErr, &apiErr) {
		statusCode = apiErr.StatusCode
		attrs = append(attrs, "status", apiErr.StatusCode, "body", apiErr.Body)
	}

	slog.ErrorContext(ctx, "delete message", attrs...)

	errMsg := deleteErr.Error()
	engine.recordDeletion(ctx, run, channelID, message, statusCode, &errMsg)

	_ = engine.store.LogEvent(ctx, run.ID, EventDeleteFailed, map[string]any{
		KeyChannelID: channelID,
		KeyMessageID: message.ID,
		KeyStatus:    statusCode,
		KeyError:     errMsg,
	})
	engine.pluginManager.ExecuteDeleteFailed(ctx, run, message, deleteErr)
}

func (engine *Engine) recordDeletion(
	ctx context.Context,
	run *Run,
	channelID string,
	message *Message,
	statusCode int,
	errMsg *string,
) {
	deletion := &Deletion{
		RunID:      run.ID,
		ChannelID:  channelID,
		MessageID:  message.ID,
		AuthorID:   message.Author.ID,
		Content:    message.Content,
		Timestamp:  message.Timestamp,
		StatusCode: statusCode,
		Error:      errMsg,
		DryRun:     run.DryRun,
	}

	if err := engine.store.AppendDeletion(ctx, deletion); err != nil {
		slog.Error("[chatsweep] append deletion", "run_id", run.ID, "error", err)
	}
}

func (engine *Engine) finishRun(ctx context.Context, run *Run, status RunStatus) *Run {
	ctx = context.WithoutCancel(ctx)

	completedAt := engine.now()
	run.Status = status
	run.Phase = PhaseDone
	run.CompletedAt = &completedAt
	engine.saveRun(ctx, run)

	event := EventRunCompleted
	if status == RunStatusStopped {
		event = EventRunStopped
	}

	_ = engine.store.LogEvent(ctx, run.ID, event, map[string]any{
		KeyStatus: status,
	})
	engine.pluginManager.ExecuteRunComplete(ctx, run)

	return run
}

func (engine *Engine) failRun(ctx context.Context, run *Run, runErr error) (*Run, error) {
	ctx = context.WithoutCancel(ctx)

	completedAt := engine.now()
	errMsg := runErr.Error()
	run.Status = RunStatusFailed
	run.Phase = PhaseDone
	run.Error = &errMsg
	run.CompletedAt = &completedAt
	engine.saveRun(ctx, run)

	_ = engine.store.LogEvent(ctx, run.ID, EventRunFailed, map[string]any{
		KeyError: errMsg,
	})
	engine.pluginManager.ExecuteRunFailed(ctx, run, runErr)

	return run, runErr
}

func (engine *Engine) saveRun(ctx context.Context, run *Run) {
	if err := engine.store.UpdateRun(ctx, run); err != nil {
		slog.Error("[chatsweep] update run", "run_id", run.ID, "error", err)
	}
}

// Stop raises the stop flag of an active run. The run ends before its next
// page fetch.
func (engine *Engine) Stop(ctx context.Context, runID string, requestedBy string) error {
	engine.mu.Lock()
	flag, ok := engine.stopFlags[runID]
	engine.mu.Unlock()

	if !ok {
		if _, err := engine.store.GetRun(ctx, runID); err != nil {
			return err
		}

		return fmt.Errorf("run %s: %w", runID, ErrRunNotActive)
	}

	flag.Raise()

	_ = engine.store.LogEvent(ctx, runID, EventStopRequested, map[string]any{
		"requested_by": requestedBy,
	})

	return nil
}

func (engine *Engine) StopAll(ctx context.Context, requestedBy string) {
	engine.mu.Lock()
	runIDs := make([]string, 0, len(engine.stopFlags))
	for runID, flag := range engine.stopFlags {
		flag.Raise()
		runIDs = append(runIDs, runID)
	}
	engine.mu.Unlock()

	for _, runID := range runIDs {
		_ = engine.store.LogEvent(ctx, runID, EventStopRequested, map[string]any{
			"requested_by": requestedBy,
		})
	}
}

func (engine *Engine) trackStop(runID string, flag *StopFlag) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	engine.stopFlags[runID] = flag
}

func (engine *Engine) untrackStop(runID string) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	delete(engine.stopFlags, runID)
}
