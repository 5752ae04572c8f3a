// Package coordinator owns the session pool and the notification router and
// turns window, tray and engine events into account and session changes.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
	"github.com/bnema/chatshell/internal/ui/mainloop"
)

// ErrNoForegroundSession is returned by zoom and reload actions before any
// session was shown.
var ErrNoForegroundSession = errors.New("no foreground session")

const refreshKey = "accounts"

// SessionCoordinatorConfig holds the collaborators of a SessionCoordinator.
// Chrome, Transport and Idle are optional.
type SessionCoordinatorConfig struct {
	Accounts    *usecase.ManageAccountsUseCase
	Permissions *usecase.HandlePermissionUseCase
	Zoom        *usecase.ManageZoomUseCase

	Engine     port.RenderingEngine
	FileSystem port.FileSystem
	Chrome     port.WindowChrome
	Transport  port.NotificationTransport
	Idle       port.IdleInhibitor

	// Runner executes transport and inhibitor calls. Defaults to running inline.
	Runner port.BackgroundRunner
	// Poster is the control thread. Defaults to running inline.
	Poster mainloop.Poster

	Settings Settings
	// NewID generates ids for added accounts. Defaults to random UUIDs.
	NewID func() string
}

// SessionCoordinator is the single entry point of the chrome, the tray and
// the rendering engine. Every method must be called on the control thread.
type SessionCoordinator struct {
	accounts    *usecase.ManageAccountsUseCase
	permissions *usecase.HandlePermissionUseCase
	zoom        *usecase.ManageZoomUseCase
	pool        *usecase.SessionPool
	router      *usecase.RouteNotificationsUseCase

	chrome    port.WindowChrome
	transport port.NotificationTransport
	idle      port.IdleInhibitor
	runner    port.BackgroundRunner
	poster    mainloop.Poster
	refresh   *mainloop.Coalescer

	settings Settings
	newID    func() string

	focused     bool
	focusSweeps int
	capturing   map[string]bool
	lastUnread  bool
	unreadKnown bool
	closed      bool
}

// NewSessionCoordinator creates a coordinator. Nothing is shown until Start.
func NewSessionCoordinator(ctx context.Context, cfg SessionCoordinatorConfig) (*SessionCoordinator, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating session coordinator")

	switch {
	case cfg.Accounts == nil:
		return nil, fmt.Errorf("account registry not configured")
	case cfg.Permissions == nil:
		return nil, fmt.Errorf("permission ledger not configured")
	case cfg.Zoom == nil:
		return nil, fmt.Errorf("zoom policy not configured")
	case cfg.Engine == nil:
		return nil, fmt.Errorf("rendering engine not configured")
	case cfg.FileSystem == nil:
		return nil, fmt.Errorf("file system not configured")
	}

	if cfg.Runner == nil {
		cfg.Runner = mainloop.SyncRunner{}
	}
	if cfg.Poster == nil {
		cfg.Poster = mainloop.Inline{}
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	settings := cfg.Settings.withDefaults()

	return &SessionCoordinator{
		accounts:    cfg.Accounts,
		permissions: cfg.Permissions,
		zoom:        cfg.Zoom,
		pool:        usecase.NewSessionPool(cfg.Engine, cfg.FileSystem, settings.poolConfig()),
		router:      usecase.NewRouteNotificationsUseCase(settings.Notifications, settings.TrackCap),
		chrome:      cfg.Chrome,
		transport:   cfg.Transport,
		idle:        cfg.Idle,
		runner:      cfg.Runner,
		poster:      cfg.Poster,
		refresh:     mainloop.NewCoalescer(cfg.Poster),
		settings:    settings,
		newID:       cfg.NewID,
		capturing:   make(map[string]bool),
	}, nil
}

// Start bootstraps the registry, shows the active account and hooks
// notification clicks.
func (c *SessionCoordinator) Start(ctx context.Context) error {
	log := logging.FromContext(ctx)

	active, err := c.accounts.EnsureDefaultAccount(ctx)
	if err != nil {
		return fmt.Errorf("failed to bootstrap accounts: %w", err)
	}

	if _, err := c.zoom.ConfigureFloor(ctx, c.settings.ZoomFloorEnabled, c.settings.ZoomFloor); err != nil {
		log.Warn().Err(err).Msg("failed to apply zoom floor")
	}

	if c.transport != nil {
		c.transport.OnActivated(func(routingID string) {
			c.poster.Post(func() { c.NotificationClicked(ctx, routingID) })
		})
	}

	if err := c.switchTo(ctx, active.ID); err != nil {
		return fmt.Errorf("failed to show account %s: %w", active.ID, err)
	}
	if c.settings.PrewarmOnStart {
		c.prewarm(ctx)
	}

	log.Info().Str("account_id", active.ID).Int("sessions", c.pool.Len()).Msg("session coordinator started")
	return nil
}

// prewarm creates a background session for every account without one.
func (c *SessionCoordinator) prewarm(ctx context.Context) {
	accounts, err := c.accounts.ListSorted(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to list accounts for prewarm")
		return
	}
	for _, a := range accounts {
		if _, ok := c.pool.Get(a.ID); ok {
			continue
		}
		if _, err := c.pool.GetOrCreate(ctx, a.ID, c.accounts.StorageDirs(a.ID), false); err != nil {
			logging.FromContext(logging.WithAccountID(ctx, a.ID)).Warn().Err(err).Msg("failed to prewarm session")
			continue
		}
		c.applyZoom(ctx, a.ID)
	}
}

// Shutdown destroys every session and releases the transport and inhibitor.
func (c *SessionCoordinator) Shutdown(ctx context.Context) error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.refresh.Destroy()

	var errs []error
	if c.idle != nil {
		if len(c.capturing) > 0 {
			if err := c.idle.Uninhibit(ctx); err != nil {
				errs = append(errs, fmt.Errorf("failed to release idle inhibition: %w", err))
			}
		}
		if err := c.idle.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close idle inhibitor: %w", err))
		}
	}
	c.capturing = make(map[string]bool)

	c.pool.Close(ctx)

	if c.transport != nil {
		if err := c.transport.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close notification transport: %w", err))
		}
	}

	logging.FromContext(ctx).Debug().Msg("session coordinator shut down")
	return errors.Join(errs...)
}

// SwitchAccount brings the account's session to the foreground, creating it
// when needed. Switching to the foreground account is a no-op and an unknown
// id only refreshes the chrome.
func (c *SessionCoordinator) SwitchAccount(ctx context.Context, accountID string) error {
	ctx = logging.WithAccountID(ctx, accountID)
	if _, err := c.accounts.Get(ctx, accountID); err != nil {
		if errors.Is(err, entity.ErrAccountNotFound) {
			logging.FromContext(ctx).Debug().Msg("switch to unknown account ignored")
			c.scheduleRefresh(ctx)
			return nil
		}
		return err
	}
	if c.pool.Foreground() == accountID {
		return nil
	}
	return c.switchTo(ctx, accountID)
}

func (c *SessionCoordinator) switchTo(ctx context.Context, accountID string) error {
	previous := c.pool.Foreground()

	if _, err := c.pool.Switch(ctx, accountID, c.accounts.StorageDirs(accountID)); err != nil {
		return err
	}
	c.applyZoom(ctx, accountID)

	if err := c.accounts.SetActive(ctx, accountID); err != nil {
		return err
	}
	if c.focused {
		c.clearUnread(ctx, accountID)
	}

	if c.chrome != nil {
		account, err := c.accounts.Get(ctx, accountID)
		if err != nil {
			return err
		}
		c.chrome.ActiveAccountChanged(ctx, *account)
	}
	c.scheduleRefresh(ctx)

	logging.FromContext(ctx).Info().
		Str("from", previous).
		Str("to", accountID).
		Int("sessions", c.pool.Len()).
		Msg("switched account")
	return nil
}

// AddAccount registers a new account. It is not shown until switched to.
// An empty name or color is filled from the account count.
func (c *SessionCoordinator) AddAccount(ctx context.Context, name, color, emoji string) (*entity.Account, error) {
	account, err := c.accounts.Draft(ctx, c.newID(), name, color, emoji)
	if err != nil {
		return nil, err
	}
	account.ZoomLevel = c.settings.DefaultZoom
	if err := c.accounts.Add(ctx, account); err != nil {
		return nil, err
	}
	if _, enabled := c.zoom.Floor(); enabled {
		if _, err := c.zoom.Set(ctx, account.ID, account.ZoomLevel); err != nil {
			return nil, err
		}
	}

	added, err := c.accounts.Get(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	c.scheduleRefresh(ctx)
	return added, nil
}

// RemoveAccount deletes the account with its data, then destroys its session.
// The default account is protected and a failed registry update leaves the
// session running. When the foreground account is removed the newly active
// account is shown.
func (c *SessionCoordinator) RemoveAccount(ctx context.Context, accountID string) error {
	ctx = logging.WithAccountID(ctx, accountID)
	log := logging.FromContext(ctx)

	if accountID == entity.DefaultAccountID {
		return entity.ErrProtectedAccount
	}
	if _, err := c.accounts.Get(ctx, accountID); err != nil {
		if errors.Is(err, entity.ErrAccountNotFound) {
			log.Debug().Msg("remove of unknown account ignored")
			c.scheduleRefresh(ctx)
			return nil
		}
		return err
	}

	// A storage error after the registry was saved still removes the session.
	removeErr := c.accounts.Remove(ctx, accountID)
	if removeErr != nil {
		if _, err := c.accounts.Get(ctx, accountID); !errors.Is(err, entity.ErrAccountNotFound) {
			return removeErr
		}
	}

	wasForeground := c.pool.Foreground() == accountID
	c.MediaCaptureChanged(ctx, accountID, false)
	c.pool.Evict(ctx, accountID)
	c.router.Forget(accountID)
	c.scheduleRefresh(ctx)

	if wasForeground {
		if err := c.showActive(ctx); err != nil {
			return errors.Join(removeErr, err)
		}
	}
	return removeErr
}

// showActive shows the active account, if any.
func (c *SessionCoordinator) showActive(ctx context.Context) error {
	active, err := c.accounts.Active(ctx)
	if err != nil {
		return err
	}
	if active == nil {
		return nil
	}
	return c.switchTo(ctx, active.ID)
}

// ReorderAccount moves an account one step. The default account is pinned,
// so moving it is a no-op.
func (c *SessionCoordinator) ReorderAccount(ctx context.Context, accountID string, dir entity.Direction) error {
	ctx = logging.WithAccountID(ctx, accountID)
	log := logging.FromContext(ctx)

	err := c.accounts.Reorder(ctx, accountID, dir)
	switch {
	case errors.Is(err, entity.ErrProtectedAccount):
		log.Debug().Msg("default account is pinned, reorder ignored")
		return nil
	case errors.Is(err, entity.ErrAccountNotFound):
		log.Debug().Msg("reorder of unknown account ignored")
	case err != nil:
		return err
	}
	c.scheduleRefresh(ctx)
	return nil
}

// UpdateIdentity renames or restyles an account.
func (c *SessionCoordinator) UpdateIdentity(ctx context.Context, accountID, name, emoji, color string) error {
	ctx = logging.WithAccountID(ctx, accountID)
	if err := c.accounts.UpdateIdentity(ctx, accountID, name, emoji, color); err != nil {
		if errors.Is(err, entity.ErrAccountNotFound) {
			logging.FromContext(ctx).Debug().Msg("identity update of unknown account ignored")
			c.scheduleRefresh(ctx)
			return nil
		}
		return err
	}

	if c.chrome != nil && c.pool.Foreground() == accountID {
		if account, err := c.accounts.Get(ctx, accountID); err == nil {
			c.chrome.ActiveAccountChanged(ctx, *account)
		}
	}
	c.scheduleRefresh(ctx)
	return nil
}

// AccountsSummary returns the switcher rows in display order.
func (c *SessionCoordinator) AccountsSummary(ctx context.Context) ([]entity.AccountSummary, error) {
	return c.accounts.Summary(ctx)
}

// ActiveAccount returns the active account, or nil for an empty registry.
func (c *SessionCoordinator) ActiveAccount(ctx context.Context) (*entity.Account, error) {
	return c.accounts.Active(ctx)
}

// ForegroundAccountID returns the account shown in the window, or "".
func (c *SessionCoordinator) ForegroundAccountID() string {
	return c.pool.Foreground()
}

// Sessions returns the ids of accounts with a live session.
func (c *SessionCoordinator) Sessions() []string {
	return c.pool.IDs()
}

func (c *SessionCoordinator) SetZoom(ctx context.Context, level float64) (float64, error) {
	return c.changeZoom(ctx, func(id string) (float64, error) { return c.zoom.Set(ctx, id, level) })
}

func (c *SessionCoordinator) ZoomIn(ctx context.Context) (float64, error) {
	return c.changeZoom(ctx, func(id string) (float64, error) { return c.zoom.ZoomIn(ctx, id) })
}

func (c *SessionCoordinator) ZoomOut(ctx context.Context) (float64, error) {
	return c.changeZoom(ctx, func(id string) (float64, error) { return c.zoom.ZoomOut(ctx, id) })
}

func (c *SessionCoordinator) ResetZoom(ctx context.Context) (float64, error) {
	return c.changeZoom(ctx, func(id string) (float64, error) { return c.zoom.Reset(ctx, id) })
}

// changeZoom stores a new level for the foreground account and applies it.
func (c *SessionCoordinator) changeZoom(ctx context.Context, change func(id string) (float64, error)) (float64, error) {
	id := c.pool.Foreground()
	if id == "" {
		return entity.ZoomDefault, ErrNoForegroundSession
	}
	level, err := change(id)
	if err != nil {
		return level, err
	}
	if view, ok := c.pool.View(id); ok {
		view.SetZoomLevel(level)
	}
	return level, nil
}

// ReloadActive reloads the foreground session.
func (c *SessionCoordinator) ReloadActive(ctx context.Context) error {
	view, ok := c.pool.View(c.pool.Foreground())
	if !ok {
		return ErrNoForegroundSession
	}
	return view.Reload(ctx)
}

// ApplyConfig applies changed settings to live state. The zoom floor is
// re-evaluated and raised sessions are re-zoomed; the service URL only
// affects sessions created afterwards.
func (c *SessionCoordinator) ApplyConfig(ctx context.Context, settings Settings) {
	settings = settings.withDefaults()
	c.settings = settings

	c.router.SetPolicy(settings.Notifications)
	c.pool.SetConfig(settings.poolConfig())

	raised, err := c.zoom.ConfigureFloor(ctx, settings.ZoomFloorEnabled, settings.ZoomFloor)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to apply zoom floor")
	}
	for _, id := range raised {
		c.applyZoom(ctx, id)
	}

	if settings.DisableUnreadBadge {
		c.clearAllUnread(ctx)
	}
	c.scheduleRefresh(ctx)
	logging.FromContext(ctx).Debug().Int("raised", len(raised)).Msg("settings applied")
}

func (c *SessionCoordinator) applyZoom(ctx context.Context, accountID string) {
	view, ok := c.pool.View(accountID)
	if !ok {
		return
	}
	level, err := c.zoom.Get(ctx, accountID)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("account_id", accountID).Msg("failed to read zoom level")
		return
	}
	view.SetZoomLevel(level)
}

// scheduleRefresh pushes the switcher rows and the aggregated unread state to
// the chrome, once per burst of changes.
func (c *SessionCoordinator) scheduleRefresh(ctx context.Context) {
	if c.chrome == nil || c.closed {
		return
	}
	c.refresh.Post(refreshKey, func() { c.refreshChrome(ctx) })
}

func (c *SessionCoordinator) refreshChrome(ctx context.Context) {
	summary, err := c.accounts.Summary(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to refresh account switcher")
		return
	}
	c.chrome.AccountsChanged(ctx, summary)

	unread := false
	for _, s := range summary {
		if s.HasUnread {
			unread = true
			break
		}
	}
	if !c.unreadKnown || unread != c.lastUnread {
		c.unreadKnown = true
		c.lastUnread = unread
		c.chrome.UnreadChanged(ctx, unread)
	}
}
