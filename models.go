package chatsweep

import (
	"encoding/json"
	"fmt"
	"time"
)

type MessageType int

const (
	MessageTypeDefault MessageType = 0
	MessageTypeReply   MessageType = 19
)

// DeletableTypes are the message types a sweep is allowed to remove.
// System messages (joins, pins, boosts...) carry other types.
var DeletableTypes = []MessageType{MessageTypeDefault, MessageTypeReply}

type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusStopped   RunStatus = "stopped"
	RunStatusFailed    RunStatus = "failed"
)

func (s RunStatus) IsTerminal() bool {
	return s == RunStatusCompleted || s == RunStatusStopped || s == RunStatusFailed
}

type Phase string

const (
	PhaseFetching  Phase = "fetching"
	PhaseFiltering Phase = "filtering"
	PhaseDeleting  Phase = "deleting"
	PhaseDone      Phase = "done"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bot      bool   `json:"bot"`
}

type Message struct {
	ID        string      `json:"id"`
	ChannelID string      `json:"channel_id"`
	Author    User        `json:"author"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type"`
}

func (m Message) String() string {
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp.Format(time.RFC3339), m.Author.Username, m.Content)
}

type Run struct {
	ID             string     `json:"id"`
	Status         RunStatus  `json:"status"`
	Phase          Phase      `json:"phase"`
	TargetUser     string     `json:"target_user"`
	Channels       []string   `json:"channels"`
	CurrentChannel string     `json:"current_channel"`
	Cursor         string     `json:"cursor"`
	Cutoff         time.Time  `json:"cutoff"`
	DryRun         bool       `json:"dry_run"`
	Pages          int        `json:"pages"`
	Scanned        int        `json:"scanned"`
	Matched        int        `json:"matched"`
	Deleted        int        `json:"deleted"`
	Failed         int        `json:"failed"`
	Error          *string    `json:"error"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (r *Run) clone() *Run {
	cp := *r
	cp.Channels = append([]string(nil), r.Channels...)

	return &cp
}

// Deletion is the outcome of one delete attempt, kept in the run registry.
type Deletion struct {
	ID         int64     `json:"id"`
	RunID      string    `json:"run_id"`
	ChannelID  string    `json:"channel_id"`
	MessageID  string    `json:"message_id"`
	AuthorID   string    `json:"author_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	StatusCode int       `json:"status_code"`
	Error      *string   `json:"error"`
	DryRun     bool      `json:"dry_run"`
	CreatedAt  time.Time `json:"created_at"`
}

type RunEvent struct {
	ID        int64           `json:"id"`
	RunID     string          `json:"run_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type SummaryStats struct {
	TotalRuns       uint `json:"total_runs"`
	RunningRuns     uint `json:"running_runs"`
	CompletedRuns   uint `json:"completed_runs"`
	StoppedRuns     uint `json:"stopped_runs"`
	FailedRuns      uint `json:"failed_runs"`
	DeletedMessages uint `json:"deleted_messages"`
	FailedDeletions uint `json:"failed_deletions"`
}
