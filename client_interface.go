package chatsweep

import (
	"context"
)

const DefaultPageSize = 100

// ChannelClient is the part of the chat REST API a sweep needs.
type ChannelClient interface {
	// ListMessages returns up to limit messages older than before, newest
	// first. An empty before means the most recent messages.
	ListMessages(ctx context.Context, channelID, before string, limit int) ([]Message, error)
	// DeleteMessage returns nil only when the API answered 204 No Content.
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}
