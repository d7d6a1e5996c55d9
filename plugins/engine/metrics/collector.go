package metrics

import (
	"time"

	"github.com/rom8726/chatsweep"
)

type MetricsCollector interface {
	RecordRunStarted(dryRun bool)
	RecordRunFinished(status chatsweep.RunStatus, duration time.Duration)
	RecordPageFetched(channelID string, size int, matched int)
	RecordMessageDeleted(channelID string, duration time.Duration)
	RecordDeleteFailed(channelID string, statusCode int, duration time.Duration)
}
