package audit

import (
	"context"
	"time"

	"github.com/rom8726/chatsweep"
)

var _ chatsweep.Plugin = (*AuditPlugin)(nil)

const (
	EventRunStart       = "run_start"
	EventRunComplete    = "run_complete"
	EventRunFailed      = "run_failed"
	EventMessageDeleted = "message_deleted"
	EventMessageMatched = "message_matched"
	EventDeleteFailed   = "delete_failed"
)

// AuditLogEntry is one line of the deletion audit. Message fields are set for
// message events only.
type AuditLogEntry struct {
	Timestamp   time.Time  `json:"timestamp"`
	EventType   string     `json:"event_type"`
	RunID       string     `json:"run_id"`
	Status      string     `json:"status"`
	DryRun      bool       `json:"dry_run"`
	ChannelID   string     `json:"channel_id,omitempty"`
	MessageID   string     `json:"message_id,omitempty"`
	AuthorID    string     `json:"author_id,omitempty"`
	Content     string     `json:"content,omitempty"`
	MessageTime *time.Time `json:"message_time,omitempty"`
	Error       string     `json:"error,omitempty"`
}

type Writer interface {
	Write(ctx context.Context, entry *AuditLogEntry) error
}

type AuditPlugin struct {
	chatsweep.BasePlugin

	writer Writer
}

func New(writer Writer) *AuditPlugin {
	return &AuditPlugin{
		BasePlugin: chatsweep.NewBasePlugin("audit", chatsweep.PriorityNormal),
		writer:     writer,
	}
}

func (p *AuditPlugin) OnRunStart(ctx context.Context, run *chatsweep.Run) error {
	return p.logEvent(ctx, runEntry(EventRunStart, run))
}

func (p *AuditPlugin) OnRunComplete(ctx context.Context, run *chatsweep.Run) error {
	return p.logEvent(ctx, runEntry(EventRunComplete, run))
}

func (p *AuditPlugin) OnRunFailed(ctx context.Context, run *chatsweep.Run, err error) error {
	entry := runEntry(EventRunFailed, run)
	if run.Error != nil {
		entry.Error = *run.Error
	} else if err != nil {
		entry.Error = err.Error()
	}

	return p.logEvent(ctx, entry)
}

func (p *AuditPlugin) OnDeleteComplete(ctx context.Context, run *chatsweep.Run, message *chatsweep.Message) error {
	eventType := EventMessageDeleted
	if run.DryRun {
		eventType = EventMessageMatched
	}

	return p.logEvent(ctx, messageEntry(eventType, run, message))
}

func (p *AuditPlugin) OnDeleteFailed(
	ctx context.Context,
	run *chatsweep.Run,
	message *chatsweep.Message,
	err error,
) error {
	entry := messageEntry(EventDeleteFailed, run, message)
	if err != nil {
		entry.Error = err.Error()
	}

	return p.logEvent(ctx, entry)
}

func (p *AuditPlugin) logEvent(ctx context.Context, entry *AuditLogEntry) error {
	return p.writer.Write(ctx, entry)
}

func runEntry(eventType string, run *chatsweep.Run) *AuditLogEntry {
	return &AuditLogEntry{
		Timestamp: time.Now(),
		EventType: eventType,
		RunID:     run.ID,
		Status:    string(run.Status),
		DryRun:    run.DryRun,
	}
}

func messageEntry(eventType string, run *chatsweep.Run, message *chatsweep.Message) *AuditLogEntry {
	entry := runEntry(eventType, run)
	entry.ChannelID = message.ChannelID
	entry.MessageID = message.ID
	entry.AuthorID = message.Author.ID
	entry.Content = message.Content

	messageTime := message.Timestamp
	entry.MessageTime = &messageTime

	return entry
}
