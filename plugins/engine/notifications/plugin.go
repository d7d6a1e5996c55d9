package notifications

import (
	"context"

	"github.com/rom8726/chatsweep"
)

var _ chatsweep.Plugin = (*NotificationsPlugin)(nil)

type NotificationType string

const (
	NotificationTypeRunCompleted NotificationType = "run_completed"
	NotificationTypeRunStopped   NotificationType = "run_stopped"
	NotificationTypeRunFailed    NotificationType = "run_failed"
)

type Notification struct {
	Type     NotificationType `json:"type"`
	RunID    string           `json:"run_id"`
	Status   string           `json:"status"`
	Channels []string         `json:"channels"`
	DryRun   bool             `json:"dry_run"`
	Matched  int              `json:"matched"`
	Deleted  int              `json:"deleted"`
	Failed   int              `json:"failed"`
	Error    string           `json:"error,omitempty"`
}

type NotificationChannel interface {
	Send(ctx context.Context, notification Notification) error
}

// NotificationsPlugin reports the outcome of each run. Run start is not
// notified so a failing channel never prevents a sweep.
type NotificationsPlugin struct {
	chatsweep.BasePlugin

	channel NotificationChannel
}

func New(channel NotificationChannel) *NotificationsPlugin {
	return &NotificationsPlugin{
		BasePlugin: chatsweep.NewBasePlugin("notifications", chatsweep.PriorityLow),
		channel:    channel,
	}
}

func (p *NotificationsPlugin) OnRunComplete(ctx context.Context, run *chatsweep.Run) error {
	if p.channel == nil {
		return nil
	}

	notificationType := NotificationTypeRunCompleted
	if run.Status == chatsweep.RunStatusStopped {
		notificationType = NotificationTypeRunStopped
	}

	return p.channel.Send(ctx, newNotification(notificationType, run))
}

func (p *NotificationsPlugin) OnRunFailed(ctx context.Context, run *chatsweep.Run, err error) error {
	if p.channel == nil {
		return nil
	}

	notification := newNotification(NotificationTypeRunFailed, run)
	if run.Error != nil {
		notification.Error = *run.Error
	} else if err != nil {
		notification.Error = err.Error()
	}

	return p.channel.Send(ctx, notification)
}

func newNotification(notificationType NotificationType, run *chatsweep.Run) Notification {
	return Notification{
		Type:     notificationType,
		RunID:    run.ID,
		Status:   string(run.Status),
		Channels: run.Channels,
		DryRun:   run.DryRun,
		Matched:  run.Matched,
		Deleted:  run.Deleted,
		Failed:   run.Failed,
	}
}
