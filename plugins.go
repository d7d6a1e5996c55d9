package chatsweep

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

type PluginPriority int

const (
	PriorityLow    PluginPriority = 0
	PriorityNormal PluginPriority = 50
	PriorityHigh   PluginPriority = 100
)

// Plugin represents a lifecycle hook system for sweep runs
type Plugin interface {
	// Name returns unique plugin identifier
	Name() string

	// Priority determines execution order (higher = earlier)
	Priority() PluginPriority

	// Lifecycle hooks
	OnRunStart(ctx context.Context, run *Run) error
	OnRunComplete(ctx context.Context, run *Run) error
	OnRunFailed(ctx context.Context, run *Run, err error) error
	OnPageFetched(ctx context.Context, run *Run, page []Message) error
	OnDeleteStart(ctx context.Context, run *Run, message *Message) error
	OnDeleteComplete(ctx context.Context, run *Run, message *Message) error
	OnDeleteFailed(ctx context.Context, run *Run, message *Message, err error) error
}

// BasePlugin provides default no-op implementations
type BasePlugin struct {
	name     string
	priority PluginPriority
}

func NewBasePlugin(name string, priority PluginPriority) BasePlugin {
	return BasePlugin{name: name, priority: priority}
}

func (p BasePlugin) Name() string             { return p.name }
func (p BasePlugin) Priority() PluginPriority { return p.priority }
func (p BasePlugin) OnRunStart(context.Context, *Run) error {
	return nil
}
func (p BasePlugin) OnRunComplete(context.Context, *Run) error {
	return nil
}
func (p BasePlugin) OnRunFailed(context.Context, *Run, error) error {
	return nil
}
func (p BasePlugin) OnPageFetched(context.Context, *Run, []Message) error {
	return nil
}
func (p BasePlugin) OnDeleteStart(context.Context, *Run, *Message) error {
	return nil
}
func (p BasePlugin) OnDeleteComplete(context.Context, *Run, *Message) error {
	return nil
}
func (p BasePlugin) OnDeleteFailed(context.Context, *Run, *Message, error) error {
	return nil
}

// PluginManager manages plugin lifecycle
type PluginManager struct {
	plugins []Plugin
	mu      sync.RWMutex
}

func NewPluginManager() *PluginManager {
	return &PluginManager{
		plugins: make([]Plugin, 0),
	}
}

func (pm *PluginManager) Register(plugin Plugin) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.plugins = append(pm.plugins, plugin)

	sort.SliceStable(pm.plugins, func(i, j int) bool {
		return pm.plugins[i].Priority() > pm.plugins[j].Priority()
	})
}

func (pm *PluginManager) Plugins() []Plugin {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	return append([]Plugin(nil), pm.plugins...)
}

func (pm *PluginManager) ExecuteRunStart(ctx context.Context, run *Run) error {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for _, plugin := range pm.plugins {
		if err := plugin.OnRunStart(ctx, run); err != nil {
			return fmt.Errorf("plugin %s failed: %w", plugin.Name(), err)
		}
	}

	return nil
}

func (pm *PluginManager) ExecuteRunComplete(ctx context.Context, run *Run) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for _, plugin := range pm.plugins {
		if err := plugin.OnRunComplete(ctx, run); err != nil {
			slog.Error("[chatsweep] plugin error on run complete", "plugin", plugin.Name(), "error", err)
		}
	}
}

func (pm *PluginManager) ExecuteRunFailed(ctx context.Context, run *Run, runErr error) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for _, plugin := range pm.plugins {
		if err := plugin.OnRunFailed(ctx, run, runErr); err != nil {
			slog.Error("[chatsweep] plugin error on run failed", "plugin", plugin.Name(), "error", err)
		}
	}
}

func (pm *PluginManager) ExecutePageFetched(ctx context.Context, run *Run, page []Message) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for _, plugin := range pm.plugins {
		if err := plugin.OnPageFetched(ctx, run, page); err != nil {
			slog.Error("[chatsweep] plugin error on page fetched", "plugin", plugin.Name(), "error", err)
		}
	}
}

// ExecuteDeleteStart returns the first plugin error; the message is then skipped.
func (pm *PluginManager) ExecuteDeleteStart(ctx context.Context, run *Run, message *Message) error {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for _, plugin := range pm.plugins {
		if err := plugin.OnDeleteStart(ctx, run, message); err != nil {
			return fmt.Errorf("plugin %s failed: %w", plugin.Name(), err)
		}
	}

	return nil
}

func (pm *PluginManager) ExecuteDeleteComplete(ctx context.Context, run *Run, message *Message) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for _, plugin := range pm.plugins {
		if err := plugin.OnDeleteComplete(ctx, run, message); err != nil {
			slog.Error("[chatsweep] plugin error on delete complete", "plugin", plugin.Name(), "error", err)
		}
	}
}

func (pm *PluginManager) ExecuteDeleteFailed(ctx context.Context, run *Run, message *Message, deleteErr error) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for _, plugin := range pm.plugins {
		if err := plugin.OnDeleteFailed(ctx, run, message, deleteErr); err != nil {
			slog.Error("[chatsweep] plugin error on delete failed", "plugin", plugin.Name(), "error", err)
		}
	}
}
