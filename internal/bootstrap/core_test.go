package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/chatshell/internal/application/port"
	mock_port "github.com/bnema/chatshell/internal/application/port/mockgen"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/config"
	"github.com/bnema/chatshell/internal/infrastructure/persistence/jsonfile"
	"github.com/bnema/chatshell/internal/infrastructure/portal"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func loadedManager(t *testing.T) *config.Manager {
	t.Helper()
	mgr, err := config.NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func mockPaths(t *testing.T, root string) *mock_port.MockXDGPaths {
	t.Helper()
	ctrl := gomock.NewController(t)
	paths := mock_port.NewMockXDGPaths(ctrl)
	paths.EXPECT().AccountsDir().Return(filepath.Join(root, "accounts"), nil)
	paths.EXPECT().LegacyWebDataDir().Return(filepath.Join(root, "legacy", "webkit"), nil)
	paths.EXPECT().LegacyWebCacheDir().Return(filepath.Join(root, "legacy-cache", "webkit"), nil)
	return paths
}

func TestNewCore_OpensRegistry(t *testing.T) {
	root := isolateXDG(t)
	paths := mockPaths(t, root)

	core, ctx, err := NewCore(context.Background(), CoreOptions{Config: loadedManager(t), Paths: paths})
	require.NoError(t, err)
	t.Cleanup(func() { _ = core.Close() })

	assert.Equal(t, filepath.Join(root, "accounts"), core.AccountsDir)

	account, err := core.Accounts.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultAccountID, account.ID)
	assert.True(t, account.IsActive)
	assert.FileExists(t, jsonfile.Path(core.AccountsDir))
}

func TestNewCore_MigratesLegacySession(t *testing.T) {
	root := isolateXDG(t)
	paths := mockPaths(t, root)

	legacyStorage := filepath.Join(root, "legacy", "webkit", "storage")
	require.NoError(t, os.MkdirAll(legacyStorage, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(legacyStorage, "origin"), []byte("x"), 0o644))

	core, ctx, err := NewCore(context.Background(), CoreOptions{Config: loadedManager(t), Paths: paths})
	require.NoError(t, err)

	account, err := core.Accounts.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	assert.True(t, account.HasSession)
	assert.FileExists(t, filepath.Join(core.AccountsDir, "sessions", entity.DefaultAccountID, "data", "storage", "origin"))
	assert.NoDirExists(t, filepath.Join(root, "legacy", "webkit"))
}

func TestNewCore_AccountsDirError(t *testing.T) {
	isolateXDG(t)
	ctrl := gomock.NewController(t)
	paths := mock_port.NewMockXDGPaths(ctrl)
	paths.EXPECT().AccountsDir().Return("", errors.New("no home"))

	_, _, err := NewCore(context.Background(), CoreOptions{Config: loadedManager(t), Paths: paths})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no home")
}

func TestNewCore_LegacyLookupFailureDisablesMigration(t *testing.T) {
	root := isolateXDG(t)
	ctrl := gomock.NewController(t)
	paths := mock_port.NewMockXDGPaths(ctrl)
	paths.EXPECT().AccountsDir().Return(filepath.Join(root, "accounts"), nil)
	paths.EXPECT().LegacyWebDataDir().Return("", errors.New("unset"))

	core, ctx, err := NewCore(context.Background(), CoreOptions{Config: loadedManager(t), Paths: paths})
	require.NoError(t, err)

	account, err := core.Accounts.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	assert.False(t, account.HasSession)
}

func TestNewCore_DefaultPathsFollowConfig(t *testing.T) {
	root := isolateXDG(t)
	mgr := loadedManager(t)
	cfg := mgr.Get()
	cfg.Paths.AccountsDir = filepath.Join(root, "elsewhere")
	require.NoError(t, mgr.Save(cfg))

	core, _, err := NewCore(context.Background(), CoreOptions{Config: mgr})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "elsewhere"), core.AccountsDir)
}

func TestNewCore_FileLogging(t *testing.T) {
	root := isolateXDG(t)
	mgr := loadedManager(t)
	cfg := mgr.Get()
	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = filepath.Join(root, "logs")
	require.NoError(t, mgr.Save(cfg))

	core, ctx, err := NewCore(context.Background(), CoreOptions{Config: mgr, Paths: mockPaths(t, root), LogToFile: true})
	require.NoError(t, err)
	_, err = core.Accounts.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	require.NoError(t, core.Close())

	entries, err := os.ReadDir(filepath.Join(root, "logs"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

type stubView struct{}

func (stubView) Load(context.Context, string) error { return nil }
func (stubView) Reload(context.Context) error       { return nil }
func (stubView) SetVisible(bool)                    {}
func (stubView) SetZoomLevel(float64)               {}
func (stubView) Destroy()                           {}

type stubEngine struct {
	mu      sync.Mutex
	created []string
}

func (e *stubEngine) CreateSession(_ context.Context, spec port.SessionSpec) (port.EngineSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.created = append(e.created, spec.AccountID)
	return stubView{}, nil
}

func TestShell_RunsUntilCancelled(t *testing.T) {
	root := isolateXDG(t)
	core, ctx, err := NewCore(context.Background(), CoreOptions{Config: loadedManager(t), Paths: mockPaths(t, root)})
	require.NoError(t, err)

	engine := &stubEngine{}
	offline := portal.NewBus(func() (*dbus.Conn, error) { return nil, errors.New("no bus") })
	shell, err := NewShell(ctx, core, ShellOptions{Engine: engine, Bus: offline})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- shell.Run(ctx) }()

	var foreground string
	require.NoError(t, shell.Loop.Invoke(ctx, func() {
		foreground = shell.Coordinator.ForegroundAccountID()
	}))
	assert.Equal(t, entity.DefaultAccountID, foreground)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not stop")
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	assert.Equal(t, []string{entity.DefaultAccountID}, engine.created)
}

func TestNewShell_RequiresEngine(t *testing.T) {
	root := isolateXDG(t)
	core, ctx, err := NewCore(context.Background(), CoreOptions{Config: loadedManager(t), Paths: mockPaths(t, root)})
	require.NoError(t, err)

	_, err = NewShell(ctx, core, ShellOptions{})
	require.Error(t, err)
}

func TestStartupTimer(t *testing.T) {
	now := time.Unix(0, 0)
	timer := newStartupTimer(func() time.Time { return now })

	now = now.Add(10 * time.Millisecond)
	timer.Mark("config")
	now = now.Add(5 * time.Millisecond)
	timer.Mark("registry")

	assert.Equal(t, 15*time.Millisecond, timer.Total())
	require.Len(t, timer.phases, 2)
	assert.Equal(t, 10*time.Millisecond, timer.phases[0].dur)
	assert.Equal(t, 5*time.Millisecond, timer.phases[1].dur)
}
