package audit

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
)

var _ Writer = (*FirestoreWriter)(nil)

const DefaultFirestoreCollection = "chatsweep_audit"

type FirestoreWriter struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreWriter(client *firestore.Client, collection string) *FirestoreWriter {
	if collection == "" {
		collection = DefaultFirestoreCollection
	}

	return &FirestoreWriter{client: client, collection: collection}
}

type auditDoc struct {
	CreatedAt   time.Time  `firestore:"created_at"`
	EventType   string     `firestore:"event_type"`
	RunID       string     `firestore:"run_id"`
	Status      string     `firestore:"status"`
	DryRun      bool       `firestore:"dry_run"`
	ChannelID   string     `firestore:"channel_id,omitempty"`
	MessageID   string     `firestore:"message_id,omitempty"`
	AuthorID    string     `firestore:"author_id,omitempty"`
	Content     string     `firestore:"content,omitempty"`
	MessageTime *time.Time `firestore:"message_time,omitempty"`
	Error       string     `firestore:"error,omitempty"`
}

func (w *FirestoreWriter) Write(ctx context.Context, entry *AuditLogEntry) error {
	doc := auditDoc{
		CreatedAt:   entry.Timestamp,
		EventType:   entry.EventType,
		RunID:       entry.RunID,
		Status:      entry.Status,
		DryRun:      entry.DryRun,
		ChannelID:   entry.ChannelID,
		MessageID:   entry.MessageID,
		AuthorID:    entry.AuthorID,
		Content:     entry.Content,
		MessageTime: entry.MessageTime,
		Error:       entry.Error,
	}

	if _, _, err := w.client.Collection(w.collection).Add(ctx, doc); err != nil {
		return fmt.Errorf("firestore add audit entry: %w", err)
	}

	return nil
}
