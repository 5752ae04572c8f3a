// Package cli wires the command line tools to the account registry.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/chatshell/internal/bootstrap"
	"github.com/bnema/chatshell/internal/cli/styles"
	"github.com/bnema/chatshell/internal/domain/build"
	"github.com/bnema/chatshell/internal/infrastructure/config"
)

// App holds CLI dependencies.
type App struct {
	Core      *bootstrap.Core
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and opens the account registry. CLI runs log
// to stderr only.
func NewApp(ctx context.Context) (*App, error) {
	core, ctx, err := bootstrap.NewCore(ctx, bootstrap.CoreOptions{})
	if err != nil {
		return nil, fmt.Errorf("initialize core: %w", err)
	}
	cfg := core.Config.Get()

	return &App{
		Core:   core,
		Config: cfg,
		Theme:  styles.NewTheme(cfg.Appearance),
		ctx:    ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Core == nil {
		return nil
	}
	return a.Core.Close()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
