package chatsweep

import (
	"context"
	"time"
)

// Store is the in-process registry of runs. It holds no loop state: a run
// cannot be resumed from it, it only answers the control API.
type Store interface {
	CreateRun(ctx context.Context, run *Run) error
	UpdateRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, runID string) (*Run, error)
	GetAllRuns(ctx context.Context) ([]*Run, error)
	GetActiveRuns(ctx context.Context) ([]*Run, error)
	AppendDeletion(ctx context.Context, deletion *Deletion) error
	GetDeletions(ctx context.Context, runID string) ([]*Deletion, error)
	LogEvent(ctx context.Context, runID string, eventType string, payload any) error
	GetRunEvents(ctx context.Context, runID string) ([]*RunEvent, error)
	GetSummaryStats(ctx context.Context) (*SummaryStats, error)
	CleanupOldRuns(ctx context.Context, olderThan time.Duration) (int64, error)
}
