package chatsweep

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, call)
}

func (r *callRecorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.calls...)
}

func newTestEngine(client ChannelClient, recorder *callRecorder, opts ...EngineOption) *Engine {
	base := []EngineOption{
		WithEngineClock(func() time.Time { return testNow }),
		WithEngineSleeper(func(ctx context.Context, d time.Duration) error {
			recorder.add("sleep:" + d.String())

			return ctx.Err()
		}),
	}

	return NewEngine(client, append(base, opts...)...)
}

func oldMessage(id, author string) Message {
	return Message{
		ID:        id,
		Author:    User{ID: author, Username: "user-" + author},
		Content:   "content " + id,
		Timestamp: testNow.AddDate(0, -6, 0),
		Type:      MessageTypeDefault,
	}
}

func TestEngine_Run_DeletesMatchingMessagesWithDelay(t *testing.T) {
	ctx := context.Background()
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Return([]Message{oldMessage("3", "42"), oldMessage("2", "7"), oldMessage("1", "42")}, nil).Once()
	client.EXPECT().ListMessages(mock.Anything, "c1", "1", 100).
		Return([]Message{}, nil).Once()
	client.EXPECT().DeleteMessage(mock.Anything, "c1", mock.Anything).
		Run(func(_ context.Context, _ string, messageID string) {
			recorder.add("delete:" + messageID)
		}).
		Return(nil).Twice()

	engine := newTestEngine(client, recorder)

	run, err := engine.Run(ctx, RunConfig{
		Channels:   []string{"c1"},
		TargetUser: "42",
		Delay:      2 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.Equal(t, PhaseDone, run.Phase)
	assert.Equal(t, 2, run.Pages)
	assert.Equal(t, 3, run.Scanned)
	assert.Equal(t, 2, run.Matched)
	assert.Equal(t, 2, run.Deleted)
	assert.Equal(t, 0, run.Failed)
	assert.Equal(t, testNow.AddDate(0, -2, 0), run.Cutoff)
	assert.Equal(t, []string{"sleep:2s", "delete:3", "sleep:2s", "delete:1"}, recorder.list())

	deletions, err := engine.Store().GetDeletions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, deletions, 2)
	assert.Equal(t, http.StatusNoContent, deletions[0].StatusCode)
	assert.Equal(t, "content 3", deletions[0].Content)

	stored, err := engine.Store().GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusCompleted, stored.Status)
}

func TestEngine_Run_DefaultDelay(t *testing.T) {
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Return([]Message{oldMessage("3", "42"), oldMessage("2", "7"), oldMessage("1", "42")}, nil).Once()
	client.EXPECT().ListMessages(mock.Anything, "c1", "1", 100).
		Return([]Message{}, nil).Once()
	client.EXPECT().DeleteMessage(mock.Anything, "c1", mock.Anything).
		Run(func(_ context.Context, _ string, messageID string) {
			recorder.add("delete:" + messageID)
		}).
		Return(nil).Twice()

	engine := newTestEngine(client, recorder)

	run, err := engine.Run(context.Background(), RunConfig{Channels: []string{"c1"}, TargetUser: "42"})
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, DefaultDelay)
	assert.Equal(t, 2, run.Deleted)
	assert.Equal(t, []string{"sleep:1.5s", "delete:3", "sleep:1.5s", "delete:1"}, recorder.list())
}

func TestEngine_Run_AdvancesCursorAcrossPages(t *testing.T) {
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 2).
		Return([]Message{oldMessage("9", "7"), oldMessage("8", "7")}, nil).Once()
	client.EXPECT().ListMessages(mock.Anything, "c1", "8", 2).
		Return([]Message{oldMessage("5", "7"), oldMessage("4", "7")}, nil).Once()
	client.EXPECT().ListMessages(mock.Anything, "c1", "4", 2).
		Return(nil, nil).Once()

	engine := newTestEngine(client, recorder)

	run, err := engine.Run(context.Background(), RunConfig{
		Channels:   []string{"c1"},
		TargetUser: "42",
		PageSize:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.Equal(t, 3, run.Pages)
	assert.Equal(t, 4, run.Scanned)
	assert.Equal(t, 0, run.Matched)
	assert.Equal(t, "4", run.Cursor)
	assert.Empty(t, recorder.list())
}

func TestEngine_Run_RaisedStopFlagMakesNoRequest(t *testing.T) {
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	stop := NewStopFlag()
	stop.Raise()

	engine := newTestEngine(client, recorder)

	run, err := engine.Run(context.Background(), RunConfig{
		Channels:   []string{"c1"},
		TargetUser: "42",
		Stop:       stop,
	})
	require.NoError(t, err)

	assert.Equal(t, RunStatusStopped, run.Status)
	assert.Equal(t, 0, run.Pages)
	client.AssertNotCalled(t, "ListMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_Run_StopFinishesCurrentPage(t *testing.T) {
	ctx := context.Background()
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}
	engine := newTestEngine(client, recorder)

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Return([]Message{oldMessage("2", "42"), oldMessage("1", "42")}, nil).Once()
	client.EXPECT().DeleteMessage(mock.Anything, "c1", "2").
		Run(func(_ context.Context, _ string, _ string) {
			active, err := engine.Store().GetActiveRuns(ctx)
			require.NoError(t, err)
			require.Len(t, active, 1)
			require.NoError(t, engine.Stop(ctx, active[0].ID, "test"))
		}).
		Return(nil).Once()
	client.EXPECT().DeleteMessage(mock.Anything, "c1", "1").Return(nil).Once()

	run, err := engine.Run(ctx, RunConfig{Channels: []string{"c1", "c2"}, TargetUser: "42"})
	require.NoError(t, err)

	assert.Equal(t, RunStatusStopped, run.Status)
	assert.Equal(t, 2, run.Deleted)
	assert.Equal(t, 1, run.Pages)

	events, err := engine.Store().GetRunEvents(ctx, run.ID)
	require.NoError(t, err)

	types := make([]string, 0, len(events))
	for _, event := range events {
		types = append(types, event.EventType)
	}
	assert.Contains(t, types, EventStopRequested)
	assert.Contains(t, types, EventRunStopped)
}

func TestEngine_Run_DeleteFailureIsLoggedAndSkipped(t *testing.T) {
	ctx := context.Background()
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Return([]Message{oldMessage("2", "42"), oldMessage("1", "42")}, nil).Once()
	client.EXPECT().ListMessages(mock.Anything, "c1", "1", 100).
		Return([]Message{}, nil).Once()
	client.EXPECT().DeleteMessage(mock.Anything, "c1", "2").
		Return(&APIError{StatusCode: http.StatusInternalServerError, Body: "oops"}).Once()
	client.EXPECT().DeleteMessage(mock.Anything, "c1", "1").Return(nil).Once()

	engine := newTestEngine(client, recorder)

	run, err := engine.Run(ctx, RunConfig{Channels: []string{"c1"}, TargetUser: "42"})
	require.NoError(t, err)

	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.Equal(t, 1, run.Deleted)
	assert.Equal(t, 1, run.Failed)

	deletions, err := engine.Store().GetDeletions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, deletions, 2)
	assert.Equal(t, http.StatusInternalServerError, deletions[0].StatusCode)
	require.NotNil(t, deletions[0].Error)
	assert.Contains(t, *deletions[0].Error, "oops")
	assert.Nil(t, deletions[1].Error)
}

func TestEngine_Run_FetchErrorFailsRun(t *testing.T) {
	ctx := context.Background()
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}
	fetchErr := &APIError{StatusCode: http.StatusForbidden, Body: "missing access"}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).Return(nil, fetchErr).Once()

	engine := newTestEngine(client, recorder)

	run, err := engine.Run(ctx, RunConfig{Channels: []string{"c1"}, TargetUser: "42"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	require.NotNil(t, run)
	assert.Equal(t, RunStatusFailed, run.Status)
	require.NotNil(t, run.Error)
	require.NotNil(t, run.CompletedAt)
}

func TestEngine_Run_CancelledContextAbortsDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := NewMockChannelClient(t)

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Return([]Message{oldMessage("1", "42")}, nil).Once()

	engine := NewEngine(client,
		WithEngineClock(func() time.Time { return testNow }),
		WithEngineSleeper(func(ctx context.Context, d time.Duration) error {
			cancel()

			return ctx.Err()
		}),
	)

	run, err := engine.Run(ctx, RunConfig{Channels: []string{"c1"}, TargetUser: "42"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, RunStatusFailed, run.Status)
	assert.Equal(t, 0, run.Deleted)
}

func TestEngine_Run_DryRun(t *testing.T) {
	ctx := context.Background()
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Return([]Message{oldMessage("1", "42")}, nil).Once()
	client.EXPECT().ListMessages(mock.Anything, "c1", "1", 100).
		Return([]Message{}, nil).Once()

	engine := newTestEngine(client, recorder)

	run, err := engine.Run(ctx, RunConfig{Channels: []string{"c1"}, TargetUser: "42", DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 1, run.Matched)
	assert.Equal(t, 0, run.Deleted)
	assert.True(t, run.DryRun)

	deletions, err := engine.Store().GetDeletions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, deletions, 1)
	assert.True(t, deletions[0].DryRun)
	assert.Equal(t, 0, deletions[0].StatusCode)
	client.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_Run_SweepsChannelsInOrder(t *testing.T) {
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Run(func(_ context.Context, channelID string, _ string, _ int) {
			recorder.add("list:" + channelID)
		}).
		Return([]Message{}, nil).Once()
	client.EXPECT().ListMessages(mock.Anything, "c2", "", 100).
		Run(func(_ context.Context, channelID string, _ string, _ int) {
			recorder.add("list:" + channelID)
		}).
		Return([]Message{}, nil).Once()

	engine := newTestEngine(client, recorder)

	run, err := engine.Run(context.Background(), RunConfig{
		Channels:   []string{"https://discord.com/channels/100/c1", "c2", " "},
		TargetUser: "42",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2"}, run.Channels)
	assert.Equal(t, "c2", run.CurrentChannel)
	assert.Equal(t, []string{"list:c1", "list:c2"}, recorder.list())
}

func TestEngine_Run_InvalidConfig(t *testing.T) {
	engine := NewEngine(NewMockChannelClient(t))

	_, err := engine.Run(context.Background(), RunConfig{Channels: []string{"c1"}})
	require.ErrorIs(t, err, ErrEmptyTarget)

	_, err = engine.Run(context.Background(), RunConfig{TargetUser: "42"})
	require.ErrorIs(t, err, ErrNoChannels)
}

type vetoPlugin struct {
	BasePlugin
	veto      string
	failed    []string
	completed []string
}

func (p *vetoPlugin) OnDeleteStart(_ context.Context, _ *Run, message *Message) error {
	if message.ID == p.veto {
		return errors.New("vetoed")
	}

	return nil
}

func (p *vetoPlugin) OnDeleteComplete(_ context.Context, _ *Run, message *Message) error {
	p.completed = append(p.completed, message.ID)

	return nil
}

func (p *vetoPlugin) OnDeleteFailed(_ context.Context, _ *Run, message *Message, _ error) error {
	p.failed = append(p.failed, message.ID)

	return nil
}

func TestEngine_Run_PluginVetoSkipsMessage(t *testing.T) {
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Return([]Message{oldMessage("2", "42"), oldMessage("1", "42")}, nil).Once()
	client.EXPECT().ListMessages(mock.Anything, "c1", "1", 100).
		Return([]Message{}, nil).Once()
	client.EXPECT().DeleteMessage(mock.Anything, "c1", "1").Return(nil).Once()

	plugin := &vetoPlugin{BasePlugin: NewBasePlugin("veto", PriorityNormal), veto: "2"}
	pluginManager := NewPluginManager()
	pluginManager.Register(plugin)

	engine := newTestEngine(client, recorder, WithEnginePluginManager(pluginManager))

	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer slog.SetDefault(previous)

	run, err := engine.Run(context.Background(), RunConfig{Channels: []string{"c1"}, TargetUser: "42"})
	require.NoError(t, err)

	assert.Equal(t, 1, run.Deleted)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, []string{"2"}, plugin.failed)
	assert.Equal(t, []string{"1"}, plugin.completed)

	assert.Contains(t, logs.String(), "content 1")
	assert.NotContains(t, logs.String(), "content 2")
}

func TestEngine_Stop_Errors(t *testing.T) {
	ctx := context.Background()
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).Return([]Message{}, nil).Once()

	engine := newTestEngine(client, recorder)

	err := engine.Stop(ctx, "unknown", "test")
	require.ErrorIs(t, err, ErrEntityNotFound)

	run, err := engine.Run(ctx, RunConfig{Channels: []string{"c1"}, TargetUser: "42"})
	require.NoError(t, err)

	err = engine.Stop(ctx, run.ID, "test")
	require.ErrorIs(t, err, ErrRunNotActive)
}

func TestEngine_StopAll(t *testing.T) {
	ctx := context.Background()
	client := NewMockChannelClient(t)
	recorder := &callRecorder{}
	engine := newTestEngine(client, recorder)

	client.EXPECT().ListMessages(mock.Anything, "c1", "", 100).
		Run(func(_ context.Context, _ string, _ string, _ int) {
			engine.StopAll(ctx, "signal")
		}).
		Return([]Message{oldMessage("1", "7")}, nil).Once()

	run, err := engine.Run(ctx, RunConfig{Channels: []string{"c1"}, TargetUser: "42"})
	require.NoError(t, err)

	assert.Equal(t, RunStatusStopped, run.Status)
	assert.Equal(t, 1, run.Pages)
}
