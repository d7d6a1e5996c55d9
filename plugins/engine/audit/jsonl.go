package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

var _ Writer = (*JSONLinesWriter)(nil)

// JSONLinesWriter appends one JSON document per line.
type JSONLinesWriter struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	return &JSONLinesWriter{encoder: json.NewEncoder(w)}
}

func (w *JSONLinesWriter) Write(_ context.Context, entry *AuditLogEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(entry); err != nil {
		return fmt.Errorf("encode audit entry: %w", err)
	}

	return nil
}
