package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Writer = (*PostgresWriter)(nil)

type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(pool *pgxpool.Pool) *PostgresWriter {
	return &PostgresWriter{pool: pool}
}

func (w *PostgresWriter) Write(ctx context.Context, entry *AuditLogEntry) error {
	const query = `
INSERT INTO chatsweep.audit_log (
    created_at, event_type, run_id, status, dry_run,
    channel_id, message_id, author_id, content, message_time, error
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := w.pool.Exec(ctx, query,
		entry.Timestamp,
		entry.EventType,
		entry.RunID,
		entry.Status,
		entry.DryRun,
		nullable(entry.ChannelID),
		nullable(entry.MessageID),
		nullable(entry.AuthorID),
		nullable(entry.Content),
		entry.MessageTime,
		nullable(entry.Error),
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
