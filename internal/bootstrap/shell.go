package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/infrastructure/config"
	"github.com/bnema/chatshell/internal/infrastructure/portal"
	"github.com/bnema/chatshell/internal/logging"
	"github.com/bnema/chatshell/internal/ui/coordinator"
	"github.com/bnema/chatshell/internal/ui/mainloop"
)

// DefaultTaskLimit bounds concurrent portal calls.
const DefaultTaskLimit = 4

// ShellOptions are the window-side collaborators of a Shell.
type ShellOptions struct {
	Engine port.RenderingEngine
	Chrome port.WindowChrome
	Dialog port.PermissionDialogPresenter

	// Bus defaults to the session bus.
	Bus *portal.Bus
	// TaskLimit defaults to DefaultTaskLimit.
	TaskLimit int
	// NewID overrides account id generation.
	NewID func() string
}

// Shell runs the session coordinator on its own control loop.
type Shell struct {
	core        *Core
	Loop        *mainloop.Loop
	Coordinator *coordinator.SessionCoordinator

	runner *mainloop.TaskRunner
	bus    *portal.Bus
}

// NewShell wires the coordinator to core and the desktop portal.
func NewShell(ctx context.Context, core *Core, opts ShellOptions) (*Shell, error) {
	if core == nil {
		return nil, fmt.Errorf("core not configured")
	}
	if opts.TaskLimit <= 0 {
		opts.TaskLimit = DefaultTaskLimit
	}
	bus := opts.Bus
	if bus == nil {
		bus = portal.NewSessionBus()
	}

	loop := mainloop.New()
	runner := mainloop.NewTaskRunner(loop, opts.TaskLimit)

	core.Permissions.SetDialogPresenter(opts.Dialog)
	core.Permissions.SetCameraGate(portal.NewCameraPortal(bus), runner)

	coord, err := coordinator.NewSessionCoordinator(ctx, coordinator.SessionCoordinatorConfig{
		Accounts:    core.Accounts,
		Permissions: core.Permissions,
		Zoom:        core.Zoom,
		Engine:      opts.Engine,
		FileSystem:  core.FileSystem,
		Chrome:      opts.Chrome,
		Transport:   portal.NewNotificationTransport(ctx, bus),
		Idle:        portal.NewIdleInhibitor(bus),
		Runner:      runner,
		Poster:      loop,
		Settings:    coordinator.SettingsFromConfig(core.Config.Get()),
		NewID:       opts.NewID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session coordinator: %w", err)
	}

	return &Shell{
		core:        core,
		Loop:        loop,
		Coordinator: coord,
		runner:      runner,
		bus:         bus,
	}, nil
}

// Run starts the coordinator and serves the control loop until ctx is
// cancelled or the loop is stopped, then shuts everything down.
func (s *Shell) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	var startErr error
	s.Loop.Post(func() {
		if err := s.Coordinator.Start(ctx); err != nil {
			startErr = err
			s.Loop.Stop()
		}
	})

	s.core.Config.OnConfigChange(func(cfg *config.Config) {
		settings := coordinator.SettingsFromConfig(cfg)
		s.Loop.Post(func() {
			log.Info().Msg("configuration changed, applying")
			s.Coordinator.ApplyConfig(ctx, settings)
		})
	})
	if err := s.core.Config.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to watch configuration")
	}

	runErr := s.Loop.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	shutdownCtx := context.WithoutCancel(ctx)
	err := errors.Join(startErr, runErr, s.shutdown(shutdownCtx))
	if err != nil {
		log.Error().Err(err).Msg("shell stopped with errors")
	}
	return err
}

// shutdown runs after the loop stopped, so it owns coordinator state.
func (s *Shell) shutdown(ctx context.Context) error {
	coordErr := s.Coordinator.Shutdown(ctx)
	runnerErr := s.runner.Wait()
	busErr := s.bus.Close()
	return errors.Join(coordErr, runnerErr, busErr)
}
