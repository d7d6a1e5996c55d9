package chatsweep

import (
	"slices"
	"strings"
	"time"
)

// Filter selects the messages of a page that a run deletes.
type Filter struct {
	TargetUser string
	// Usernames additionally match message authors by username, case-insensitively.
	Usernames []string
	Cutoff    time.Time
	Types     []MessageType
}

func NewFilter(targetUser string, usernames []string, cutoff time.Time) Filter {
	return Filter{
		TargetUser: targetUser,
		Usernames:  usernames,
		Cutoff:     cutoff,
		Types:      DeletableTypes,
	}
}

func (f Filter) Match(message Message) bool {
	if !f.matchAuthor(message) {
		return false
	}

	if !message.Timestamp.Before(f.Cutoff) {
		return false
	}

	return slices.Contains(f.Types, message.Type)
}

func (f Filter) matchAuthor(message Message) bool {
	if message.Author.ID == f.TargetUser {
		return true
	}

	// bots quoting or mentioning the target, e.g. slash command answers
	if message.Author.Bot && strings.Contains(message.Content, f.TargetUser) {
		return true
	}

	for _, username := range f.Usernames {
		if strings.EqualFold(message.Author.Username, username) {
			return true
		}
	}

	return false
}

// Apply keeps matching messages in page order.
func (f Filter) Apply(page []Message) []Message {
	matched := make([]Message, 0, len(page))
	for _, message := range page {
		if f.Match(message) {
			matched = append(matched, message)
		}
	}

	return matched
}
