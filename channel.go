package chatsweep

import (
	"net/url"
	"strings"
)

// ChannelFromLocation extracts a channel id from a browser location such as
// https://discord.com/channels/<guild>/<channel>. The last path segment is the
// channel. A bare id is returned as is.
func ChannelFromLocation(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return ""
	}

	path := location
	if parsed, err := url.Parse(location); err == nil && parsed.Path != "" {
		path = parsed.Path
	}

	path = strings.TrimRight(path, "/")
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}

	return path
}
