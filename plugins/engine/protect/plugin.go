package protect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rom8726/chatsweep"
)

var _ chatsweep.Plugin = (*ProtectPlugin)(nil)

var ErrProtected = errors.New("message is protected")

// Rule returns an error for a message that must not be deleted.
type Rule func(message *chatsweep.Message) error

// ProtectPlugin vetoes deletions. A vetoed message is skipped and counted as
// failed by the engine.
type ProtectPlugin struct {
	chatsweep.BasePlugin

	rules []Rule
	mu    sync.RWMutex
}

func New() *ProtectPlugin {
	return &ProtectPlugin{
		BasePlugin: chatsweep.NewBasePlugin("protect", chatsweep.PriorityHigh),
	}
}

func (p *ProtectPlugin) AddRule(rule Rule) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rules = append(p.rules, rule)
}

func (p *ProtectPlugin) OnDeleteStart(_ context.Context, _ *chatsweep.Run, message *chatsweep.Message) error {
	p.mu.RLock()
	rules := p.rules
	p.mu.RUnlock()

	for i, rule := range rules {
		if err := rule(message); err != nil {
			return fmt.Errorf("protect rule %d for message %s: %w", i, message.ID, err)
		}
	}

	return nil
}

// MessageIDs protects the listed messages.
func MessageIDs(ids ...string) Rule {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return func(message *chatsweep.Message) error {
		if _, ok := set[message.ID]; ok {
			return ErrProtected
		}

		return nil
	}
}

// Keywords protects messages whose content contains one of the keywords,
// case-insensitively. Empty keywords are ignored.
func Keywords(keywords ...string) Rule {
	lowered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			lowered = append(lowered, strings.ToLower(keyword))
		}
	}

	return func(message *chatsweep.Message) error {
		content := strings.ToLower(message.Content)

		for _, keyword := range lowered {
			if strings.Contains(content, keyword) {
				return fmt.Errorf("keyword %q: %w", keyword, ErrProtected)
			}
		}

		return nil
	}
}
