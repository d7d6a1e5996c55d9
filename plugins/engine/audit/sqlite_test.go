package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteWriter(t *testing.T) {
	ctx := context.Background()

	writer, err := NewSQLiteWriter(ctx, filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	messageTime := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, writer.Write(ctx, &AuditLogEntry{
		Timestamp: time.Now(),
		EventType: EventRunStart,
		RunID:     "run-1",
		Status:    "running",
	}))
	require.NoError(t, writer.Write(ctx, &AuditLogEntry{
		Timestamp:   time.Now(),
		EventType:   EventMessageDeleted,
		RunID:       "run-1",
		Status:      "running",
		ChannelID:   "c1",
		MessageID:   "m1",
		AuthorID:    "42",
		Content:     "bye",
		MessageTime: &messageTime,
	}))

	var count int
	require.NoError(t, writer.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_log WHERE run_id = ?`, "run-1").Scan(&count))
	assert.Equal(t, 2, count)

	var nullMessages int
	require.NoError(t, writer.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_log WHERE message_id IS NULL`).Scan(&nullMessages))
	assert.Equal(t, 1, nullMessages)

	var content string
	require.NoError(t, writer.db.QueryRowContext(ctx,
		`SELECT content FROM audit_log WHERE message_id = ?`, "m1").Scan(&content))
	assert.Equal(t, "bye", content)
}

func TestSQLiteMigrations_AreIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "audit.db")

	first, err := NewSQLiteWriter(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewSQLiteWriter(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestSplitSQLStatements(t *testing.T) {
	stmts := splitSQLStatements(`
-- header comment
CREATE TABLE a (id INTEGER);

-- only a comment;
CREATE INDEX idx_a ON a (id);
`)

	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE a")
	assert.Equal(t, "CREATE INDEX idx_a ON a (id)", stmts[1])
}
