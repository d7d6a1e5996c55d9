package chatsweep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RunLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	run := &Run{TargetUser: "42", Channels: []string{"c1"}}
	require.NoError(t, store.CreateRun(ctx, run))
	require.NotEmpty(t, run.ID)
	assert.Equal(t, RunStatusPending, run.Status)

	run.Channels[0] = "mutated"

	stored, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, stored.Channels)

	run.Status = RunStatusRunning
	run.Deleted = 3
	require.NoError(t, store.UpdateRun(ctx, run))

	active, err := store.GetActiveRuns(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 3, active[0].Deleted)

	_, err = store.GetRun(ctx, "missing")
	require.ErrorIs(t, err, ErrEntityNotFound)
	require.ErrorIs(t, store.UpdateRun(ctx, &Run{ID: "missing"}), ErrEntityNotFound)
}

func TestMemoryStore_Deletions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	run := &Run{}
	require.NoError(t, store.CreateRun(ctx, run))

	require.NoError(t, store.AppendDeletion(ctx, &Deletion{RunID: run.ID, MessageID: "1", StatusCode: 204}))
	require.NoError(t, store.AppendDeletion(ctx, &Deletion{RunID: run.ID, MessageID: "2", StatusCode: 500}))

	deletions, err := store.GetDeletions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, deletions, 2)
	assert.Equal(t, int64(1), deletions[0].ID)
	assert.Equal(t, "2", deletions[1].MessageID)
	assert.False(t, deletions[0].CreatedAt.IsZero())

	require.ErrorIs(t, store.AppendDeletion(ctx, &Deletion{RunID: "missing"}), ErrEntityNotFound)
}

func TestMemoryStore_EventsAreCapped(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.maxEventsPerRun = 3

	run := &Run{}
	require.NoError(t, store.CreateRun(ctx, run))

	for i := 0; i < 5; i++ {
		require.NoError(t, store.LogEvent(ctx, run.ID, EventPageFetched, map[string]any{KeyPageSize: i}))
	}

	events, err := store.GetRunEvents(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.JSONEq(t, `{"page_size":2}`, string(events[0].Payload))
}

func TestMemoryStore_SummaryAndCleanup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	longAgo := time.Now().Add(-48 * time.Hour)

	finished := &Run{Status: RunStatusCompleted, Deleted: 4, Failed: 1, CompletedAt: &longAgo}
	stopped := &Run{Status: RunStatusStopped, Deleted: 1}
	running := &Run{Status: RunStatusRunning}
	for _, run := range []*Run{finished, stopped, running} {
		require.NoError(t, store.CreateRun(ctx, run))
	}

	stats, err := store.GetSummaryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(3), stats.TotalRuns)
	assert.Equal(t, uint(1), stats.RunningRuns)
	assert.Equal(t, uint(1), stats.CompletedRuns)
	assert.Equal(t, uint(1), stats.StoppedRuns)
	assert.Equal(t, uint(5), stats.DeletedMessages)
	assert.Equal(t, uint(1), stats.FailedDeletions)

	removed, err := store.CleanupOldRuns(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	runs, err := store.GetAllRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

type orderPlugin struct {
	BasePlugin
}

func TestPluginManager_RegisterSortsByPriority(t *testing.T) {
	pm := NewPluginManager()
	pm.Register(orderPlugin{NewBasePlugin("low", PriorityLow)})
	pm.Register(orderPlugin{NewBasePlugin("high", PriorityHigh)})
	pm.Register(orderPlugin{NewBasePlugin("normal", PriorityNormal)})
	pm.Register(orderPlugin{NewBasePlugin("high-2", PriorityHigh)})

	names := make([]string, 0, 4)
	for _, plugin := range pm.Plugins() {
		names = append(names, plugin.Name())
	}

	assert.Equal(t, []string{"high", "high-2", "normal", "low"}, names)
}
