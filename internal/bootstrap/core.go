// Package bootstrap assembles chatshell from configuration: logging, the
// account registry, the desktop portal adapters and the session coordinator.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/infrastructure/config"
	"github.com/bnema/chatshell/internal/infrastructure/filesystem"
	"github.com/bnema/chatshell/internal/infrastructure/persistence/jsonfile"
	"github.com/bnema/chatshell/internal/infrastructure/xdg"
	"github.com/bnema/chatshell/internal/logging"
)

// CoreOptions customizes NewCore.
type CoreOptions struct {
	// Config is a loaded manager. Nil loads the user's configuration.
	Config *config.Manager
	// Paths resolves directories. Nil uses XDG, honoring paths.accounts_dir.
	Paths port.XDGPaths
	// LogToFile also writes JSON logs to the rotating log file when the
	// configuration enables it.
	LogToFile bool
}

// Core is the part of chatshell that works without a window: configuration,
// logging and the account registry with its permission and zoom policies.
type Core struct {
	Config      *config.Manager
	Paths       port.XDGPaths
	FileSystem  port.FileSystem
	AccountsDir string

	Accounts    *usecase.ManageAccountsUseCase
	Permissions *usecase.HandlePermissionUseCase
	Zoom        *usecase.ManageZoomUseCase

	Logger zerolog.Logger

	closers []io.Closer
}

// NewCore loads configuration and opens the account registry. The returned
// context carries the configured logger.
func NewCore(ctx context.Context, opts CoreOptions) (*Core, context.Context, error) {
	timer := NewStartupTimer()

	manager := opts.Config
	if manager == nil {
		var err error
		manager, err = config.NewManager()
		if err != nil {
			return nil, ctx, err
		}
		if err := manager.Load(); err != nil {
			return nil, ctx, fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := manager.Get()
	timer.Mark("config")

	core := &Core{Config: manager}

	logger, closer, err := newLogger(cfg, opts.LogToFile)
	if err != nil {
		return nil, ctx, err
	}
	if closer != nil {
		core.closers = append(core.closers, closer)
	}
	core.Logger = logger
	ctx = logging.WithContext(ctx, logger)
	timer.Mark("logging")

	paths := opts.Paths
	if paths == nil {
		paths = xdg.New().WithAccountsDir(cfg.Paths.AccountsDir)
	}
	core.Paths = paths

	accountsDir, err := paths.AccountsDir()
	if err != nil {
		_ = core.Close()
		return nil, ctx, fmt.Errorf("failed to resolve accounts directory: %w", err)
	}
	core.AccountsDir = accountsDir
	core.FileSystem = filesystem.New()

	core.Accounts = usecase.NewManageAccountsUseCase(
		jsonfile.NewAccountRepository(accountsDir),
		core.FileSystem,
		accountsDir,
	)
	core.Accounts.SetLegacyDirs(legacyDirs(ctx, paths))
	core.Permissions = usecase.NewHandlePermissionUseCase(core.Accounts, nil)
	core.Zoom = usecase.NewManageZoomUseCase(core.Accounts)
	timer.Mark("registry")

	timer.Log(ctx)
	logging.FromContext(ctx).Debug().Str("accounts_dir", accountsDir).Msg("core ready")
	return core, ctx, nil
}

// Close releases the log file.
func (c *Core) Close() error {
	var errs []error
	for _, closer := range c.closers {
		errs = append(errs, closer.Close())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func newLogger(cfg *config.Config, toFile bool) (zerolog.Logger, io.Closer, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.Format != "" {
		logCfg.Format = cfg.Logging.Format
	}

	if !toFile || !cfg.Logging.EnableFileLog {
		return logging.New(logCfg), nil, nil
	}

	dir, err := cfg.LogDir()
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to resolve log directory: %w", err)
	}
	logger, closer, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Dir:        dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, closer, nil
}

// legacyDirs resolves the pre multi-account session directories. A failure
// only disables the migration.
func legacyDirs(ctx context.Context, paths port.XDGPaths) usecase.LegacyDirs {
	log := logging.FromContext(ctx)

	data, err := paths.LegacyWebDataDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve legacy data directory")
		return usecase.LegacyDirs{}
	}
	cache, err := paths.LegacyWebCacheDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve legacy cache directory")
		cache = ""
	}
	return usecase.LegacyDirs{Data: data, Cache: cache}
}
