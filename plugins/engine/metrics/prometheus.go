package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rom8726/chatsweep"
)

var _ MetricsCollector = (*PrometheusCollector)(nil)

type PrometheusCollector struct {
	runStarted     *prometheus.CounterVec
	runFinished    *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	pagesFetched   *prometheus.CounterVec
	messagesSeen   *prometheus.CounterVec
	messagesMatch  *prometheus.CounterVec
	deleted        *prometheus.CounterVec
	deleteFailed   *prometheus.CounterVec
	deleteDuration *prometheus.HistogramVec
}

func NewPrometheusCollector(registry prometheus.Registerer) *PrometheusCollector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	return &PrometheusCollector{
		runStarted: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatsweep_run_started_total",
				Help: "Total number of sweep runs started",
			},
			[]string{"dry_run"},
		),
		runFinished: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatsweep_run_finished_total",
				Help: "Total number of finished sweep runs",
			},
			[]string{"status"},
		),
		runDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chatsweep_run_duration_seconds",
				Help:    "Duration of sweep runs in seconds",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"status"},
		),
		pagesFetched: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatsweep_pages_fetched_total",
				Help: "Total number of message pages fetched",
			},
			[]string{"channel_id"},
		),
		messagesSeen: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatsweep_messages_scanned_total",
				Help: "Total number of messages scanned",
			},
			[]string{"channel_id"},
		),
		messagesMatch: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatsweep_messages_matched_total",
				Help: "Total number of messages selected for deletion",
			},
			[]string{"channel_id"},
		),
		deleted: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatsweep_messages_deleted_total",
				Help: "Total number of deleted messages",
			},
			[]string{"channel_id"},
		),
		deleteFailed: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatsweep_delete_failed_total",
				Help: "Total number of failed deletions",
			},
			[]string{"channel_id", "status_code"},
		),
		deleteDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chatsweep_delete_duration_seconds",
				Help:    "Duration of delete requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
}

func (c *PrometheusCollector) RecordRunStarted(dryRun bool) {
	c.runStarted.WithLabelValues(strconv.FormatBool(dryRun)).Inc()
}

func (c *PrometheusCollector) RecordRunFinished(status chatsweep.RunStatus, duration time.Duration) {
	c.runFinished.WithLabelValues(string(status)).Inc()
	c.runDuration.WithLabelValues(string(status)).Observe(duration.Seconds())
}

func (c *PrometheusCollector) RecordPageFetched(channelID string, size int, matched int) {
	c.pagesFetched.WithLabelValues(channelID).Inc()
	c.messagesSeen.WithLabelValues(channelID).Add(float64(size))
	c.messagesMatch.WithLabelValues(channelID).Add(float64(matched))
}

func (c *PrometheusCollector) RecordMessageDeleted(channelID string, duration time.Duration) {
	c.deleted.WithLabelValues(channelID).Inc()
	c.deleteDuration.WithLabelValues("deleted").Observe(duration.Seconds())
}

func (c *PrometheusCollector) RecordDeleteFailed(channelID string, statusCode int, duration time.Duration) {
	c.deleteFailed.WithLabelValues(channelID, strconv.Itoa(statusCode)).Inc()
	c.deleteDuration.WithLabelValues("failed").Observe(duration.Seconds())
}
