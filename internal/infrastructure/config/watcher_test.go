package config

import (
	"os"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFileEvent_NotifiesOnlyOnChange(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var seen []*Config
	mgr.OnConfigChange(func(cfg *Config) { seen = append(seen, cfg) })

	path := mgr.ConfigFile()
	event := fsnotify.Event{Name: path, Op: fsnotify.Write}

	// Rewriting identical content is not a change.
	require.NoError(t, WriteConfigOrdered(mgr.Get(), path))
	mgr.handleFileEvent(event)
	assert.Empty(t, seen)

	cfg := mgr.Get()
	cfg.Zoom.Default = 1.25
	require.NoError(t, WriteConfigOrdered(cfg, path))
	mgr.handleFileEvent(event)

	require.Len(t, seen, 1)
	assert.InDelta(t, 1.25, seen[0].Zoom.Default, 1e-9)
	assert.InDelta(t, 1.25, mgr.Get().Zoom.Default, 1e-9)
}

func TestHandleFileEvent_KeepsPreviousOnInvalidFile(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	before := *mgr.Get()
	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	path := mgr.ConfigFile()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	broken := strings.Replace(string(data), "[accessibility]", "[accessibility]\nzoom_floor = 9.0", 1)
	require.NoError(t, os.WriteFile(path, []byte(broken), 0o600))

	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, before, *mgr.Get())
}
