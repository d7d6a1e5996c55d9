package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"github.com/rom8726/chatsweep"
	"github.com/rom8726/chatsweep/plugins/engine/audit"
	"github.com/rom8726/chatsweep/plugins/engine/metrics"
	"github.com/rom8726/chatsweep/plugins/engine/notifications"
	"github.com/rom8726/chatsweep/plugins/engine/protect"
	"github.com/rom8726/chatsweep/plugins/engine/telemetry"
)

type closeFunc func() error

// buildPlugins registers the engine plugins enabled by cfg. The returned
// closers release audit sinks and must run after the last sweep.
func buildPlugins(ctx context.Context, cfg Config, registry prometheus.Registerer) (*chatsweep.PluginManager, []closeFunc, error) {
	pm := chatsweep.NewPluginManager()

	pm.Register(metrics.New(metrics.NewPrometheusCollector(registry)))
	pm.Register(telemetry.New(otel.Tracer("chatsweep")))

	if len(cfg.Protect.IDs) > 0 || len(cfg.Protect.Keywords) > 0 {
		guard := protect.New()
		guard.AddRule(protect.MessageIDs(cfg.Protect.IDs...))
		guard.AddRule(protect.Keywords(cfg.Protect.Keywords...))
		pm.Register(guard)
	}

	writers, closers, err := auditWriters(ctx, cfg.Audit)
	if err != nil {
		closeAll(closers)

		return nil, nil, err
	}

	for _, writer := range writers {
		pm.Register(audit.New(writer))
	}

	if cfg.Notify.Webhook != "" {
		pm.Register(notifications.New(notifications.NewWebhookChannel(cfg.Notify.Webhook)))
	}

	return pm, closers, nil
}

func auditWriters(ctx context.Context, cfg AuditConfig) ([]audit.Writer, []closeFunc, error) {
	var (
		writers []audit.Writer
		closers []closeFunc
	)

	if cfg.JSONL != "" {
		file, err := os.OpenFile(cfg.JSONL, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closers, fmt.Errorf("open audit file: %w", err)
		}

		writers = append(writers, audit.NewJSONLinesWriter(file))
		closers = append(closers, file.Close)
	}

	if cfg.SQLite != "" {
		writer, err := audit.NewSQLiteWriter(ctx, cfg.SQLite)
		if err != nil {
			return nil, closers, fmt.Errorf("sqlite audit: %w", err)
		}

		writers = append(writers, writer)
		closers = append(closers, writer.Close)
	}

	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, closers, fmt.Errorf("connect postgres: %w", err)
		}

		closers = append(closers, func() error {
			pool.Close()

			return nil
		})

		if err := audit.RunPostgresMigrations(ctx, pool); err != nil {
			return nil, closers, fmt.Errorf("postgres audit migrations: %w", err)
		}

		writers = append(writers, audit.NewPostgresWriter(pool))
	}

	if cfg.FirestoreProject != "" {
		client, err := firestore.NewClient(ctx, cfg.FirestoreProject)
		if err != nil {
			return nil, closers, fmt.Errorf("firestore client: %w", err)
		}

		writers = append(writers, audit.NewFirestoreWriter(client, cfg.FirestoreCollection))
		closers = append(closers, client.Close)
	}

	return writers, closers, nil
}

func closeAll(closers []closeFunc) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			slog.Error("[chatsweep] close audit sink", "error", err)
		}
	}
}
