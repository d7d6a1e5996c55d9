package chatsweep

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu              sync.RWMutex
	runs            map[string]*Run
	deletionsByRun  map[string][]*Deletion
	eventsByRun     map[string][]*RunEvent
	nextDeletionID  int64
	nextEventID     int64
	maxEventsPerRun int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:            make(map[string]*Run),
		deletionsByRun:  make(map[string][]*Deletion),
		eventsByRun:     make(map[string][]*RunEvent),
		nextDeletionID:  1,
		nextEventID:     1,
		maxEventsPerRun: 10_000,
	}
}

func (s *MemoryStore) CreateRun(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	if _, exists := s.runs[run.ID]; exists {
		return fmt.Errorf("run %s already exists", run.ID)
	}

	now := time.Now()
	run.CreatedAt = now
	run.UpdatedAt = now
	if run.Status == "" {
		run.Status = RunStatusPending
	}

	s.runs[run.ID] = run.clone()

	return nil
}

func (s *MemoryStore) UpdateRun(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; !exists {
		return ErrEntityNotFound
	}

	run.UpdatedAt = time.Now()
	s.runs[run.ID] = run.clone()

	return nil
}

func (s *MemoryStore) GetRun(ctx context.Context, runID string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, exists := s.runs[runID]
	if !exists {
		return nil, ErrEntityNotFound
	}

	return run.clone(), nil
}

func (s *MemoryStore) GetAllRuns(ctx context.Context) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		result = append(result, run.clone())
	}

	sortRunsByCreation(result)

	return result, nil
}

func (s *MemoryStore) GetActiveRuns(ctx context.Context) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Run, 0)
	for _, run := range s.runs {
		if !run.Status.IsTerminal() {
			result = append(result, run.clone())
		}
	}

	sortRunsByCreation(result)

	return result, nil
}

func (s *MemoryStore) AppendDeletion(ctx context.Context, deletion *Deletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[deletion.RunID]; !exists {
		return ErrEntityNotFound
	}

	deletion.ID = s.nextDeletionID
	s.nextDeletionID++
	if deletion.CreatedAt.IsZero() {
		deletion.CreatedAt = time.Now()
	}

	cp := *deletion
	s.deletionsByRun[deletion.RunID] = append(s.deletionsByRun[deletion.RunID], &cp)

	return nil
}

func (s *MemoryStore) GetDeletions(ctx context.Context, runID string) ([]*Deletion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.runs[runID]; !exists {
		return nil, ErrEntityNotFound
	}

	deletions := s.deletionsByRun[runID]
	result := make([]*Deletion, 0, len(deletions))
	for _, deletion := range deletions {
		cp := *deletion
		result = append(result, &cp)
	}

	return result, nil
}

func (s *MemoryStore) LogEvent(ctx context.Context, runID string, eventType string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := &RunEvent{
		ID:        s.nextEventID,
		RunID:     runID,
		EventType: eventType,
		Payload:   payloadJSON,
		CreatedAt: time.Now(),
	}
	s.nextEventID++

	events := append(s.eventsByRun[runID], event)
	if len(events) > s.maxEventsPerRun {
		events = events[len(events)-s.maxEventsPerRun:]
	}
	s.eventsByRun[runID] = events

	return nil
}

func (s *MemoryStore) GetRunEvents(ctx context.Context, runID string) ([]*RunEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.runs[runID]; !exists {
		return nil, ErrEntityNotFound
	}

	return append([]*RunEvent(nil), s.eventsByRun[runID]...), nil
}

func (s *MemoryStore) GetSummaryStats(ctx context.Context) (*SummaryStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &SummaryStats{}
	for _, run := range s.runs {
		stats.TotalRuns++

		switch run.Status {
		case RunStatusPending, RunStatusRunning:
			stats.RunningRuns++
		case RunStatusCompleted:
			stats.CompletedRuns++
		case RunStatusStopped:
			stats.StoppedRuns++
		case RunStatusFailed:
			stats.FailedRuns++
		}

		stats.DeletedMessages += uint(run.Deleted)
		stats.FailedDeletions += uint(run.Failed)
	}

	return stats, nil
}

// CleanupOldRuns forgets finished runs that completed more than olderThan ago.
func (s *MemoryStore) CleanupOldRuns(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoffTime := time.Now().Add(-olderThan)
	deleted := int64(0)

	for id, run := range s.runs {
		if run.CompletedAt != nil && run.CompletedAt.Before(cutoffTime) {
			delete(s.runs, id)
			delete(s.deletionsByRun, id)
			delete(s.eventsByRun, id)

			deleted++
		}
	}

	return deleted, nil
}

func sortRunsByCreation(runs []*Run) {
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
}
