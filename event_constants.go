package chatsweep

const (
	// Event types
	EventRunStarted     = "run_started"
	EventRunCompleted   = "run_completed"
	EventRunStopped     = "run_stopped"
	EventRunFailed      = "run_failed"
	EventChannelStarted = "channel_started"
	EventPageFetched    = "page_fetched"
	EventMessageDeleted = "message_deleted"
	EventDeleteFailed   = "delete_failed"
	EventStopRequested  = "stop_requested"

	// Event data keys
	KeyChannelID = "channel_id"
	KeyMessageID = "message_id"
	KeyCursor    = "cursor"
	KeyPageSize  = "page_size"
	KeyMatched   = "matched"
	KeyStatus    = "status"
	KeyError     = "error"
	KeyDryRun    = "dry_run"
	KeyCutoff    = "cutoff"
)
