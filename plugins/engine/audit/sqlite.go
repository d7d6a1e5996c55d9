package audit

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

var _ Writer = (*SQLiteWriter)(nil)

type SQLiteWriter struct {
	db *sql.DB
}

// NewSQLiteWriter opens the database at dsn and applies the audit migrations.
func NewSQLiteWriter(ctx context.Context, dsn string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	if err := RunSQLiteMigrations(ctx, db); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &SQLiteWriter{db: db}, nil
}

func (w *SQLiteWriter) Write(ctx context.Context, entry *AuditLogEntry) error {
	const query = `
INSERT INTO audit_log (
    created_at, event_type, run_id, status, dry_run,
    channel_id, message_id, author_id, content, message_time, error
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := w.db.ExecContext(ctx, query,
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

func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
