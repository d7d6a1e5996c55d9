package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlugins(t *testing.T) {
	dir := t.TempDir()

	cfg := Config{
		Audit: AuditConfig{
			JSONL:  filepath.Join(dir, "audit.jsonl"),
			SQLite: filepath.Join(dir, "audit.db"),
		},
		Protect: ProtectConfig{Keywords: []string{"#keep"}},
		Notify:  NotifyConfig{Webhook: "http://localhost:9/hook"},
	}

	pm, closers, err := buildPlugins(context.Background(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	defer closeAll(closers)

	assert.Len(t, closers, 2)

	names := make([]string, 0)
	for _, plugin := range pm.Plugins() {
		names = append(names, plugin.Name())
	}

	assert.Equal(t, []string{"metrics", "telemetry", "protect", "audit", "audit", "notifications"}, names)
}

func TestBuildPlugins_Minimal(t *testing.T) {
	pm, closers, err := buildPlugins(context.Background(), Config{}, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.Empty(t, closers)
	assert.Len(t, pm.Plugins(), 2)
}
