package coordinator

import (
	"context"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

const (
	captureInhibitReason  = "Call in progress"
	notificationComponent = "notification"
)

// LoadFinished refreshes has_session once a session finished loading.
func (c *SessionCoordinator) LoadFinished(ctx context.Context, accountID string) {
	if err := c.accounts.RefreshSessionState(ctx, accountID); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("account_id", accountID).Msg("failed to refresh session state")
	}
}

// PermissionRequested answers an engine permission request from the ledger,
// asking the user when no decision is stored.
func (c *SessionCoordinator) PermissionRequested(
	ctx context.Context,
	accountID string,
	req port.PermissionRequest,
	callback usecase.PermissionCallback,
) {
	c.permissions.HandlePermissionRequest(ctx, accountID, req, callback)
}

// NotificationRaised marks the account unread and delivers the notification
// under a routing id that carries the account. A notification reusing a tag
// replaces the one already on screen.
func (c *SessionCoordinator) NotificationRaised(ctx context.Context, accountID string, raised port.RaisedNotification) {
	ctx = logging.WithAccountID(logging.WithComponent(ctx, notificationComponent), accountID)
	log := logging.FromContext(ctx)

	if _, ok := c.pool.Get(accountID); !ok {
		log.Debug().Msg("notification from a session that is gone, dropped")
		return
	}

	if !c.isWatched(accountID) {
		c.markUnread(ctx, accountID)
	}

	n, ok := c.router.Prepare(accountID, raised)
	if !ok {
		log.Debug().Msg("notification suppressed by policy")
		return
	}
	c.router.Remember(ctx, n.RoutingID, raised.Handle)

	if c.transport == nil {
		return
	}
	transport := c.transport
	previous, replacing := c.router.IssuedFor(n.RoutingID)
	sweeps := c.focusSweeps

	c.runner.Go(ctx, func(taskCtx context.Context) func() {
		if replacing {
			if err := transport.Withdraw(taskCtx, previous); err != nil {
				log.Debug().Err(err).Msg("failed to withdraw replaced notification")
			}
		}
		id, err := transport.Deliver(taskCtx, n.RoutingID, n.Title, n.Body, n.Icon)
		if err != nil {
			log.Warn().Err(err).Str("routing_id", n.RoutingID).Msg("failed to deliver notification")
			return nil
		}
		return func() {
			if c.focusSweeps != sweeps && c.focused {
				// Focus already swept the desktop while this was in flight.
				c.withdraw(ctx, []port.PlatformNotificationID{id})
				return
			}
			c.router.TrackIssued(n.RoutingID, id)
		}
	})
}

// TitleChanged follows the "(N) ..." unread counter of the page title.
func (c *SessionCoordinator) TitleChanged(ctx context.Context, accountID, title string) {
	if entity.ParseUnreadCount(title) == 0 {
		c.clearUnread(ctx, accountID)
		return
	}
	if !c.isWatched(accountID) {
		c.markUnread(ctx, accountID)
	}
}

// MediaCaptureChanged inhibits idle while any session uses the camera or
// microphone.
func (c *SessionCoordinator) MediaCaptureChanged(ctx context.Context, accountID string, capturing bool) {
	if c.capturing[accountID] == capturing {
		return
	}
	before := len(c.capturing)
	if capturing {
		c.capturing[accountID] = true
	} else {
		delete(c.capturing, accountID)
	}
	after := len(c.capturing)

	if c.idle == nil {
		return
	}
	idle := c.idle
	log := logging.FromContext(ctx)

	switch {
	case before == 0 && after == 1:
		c.runner.Go(ctx, func(ctx context.Context) func() {
			if err := idle.Inhibit(ctx, captureInhibitReason); err != nil {
				log.Warn().Err(err).Msg("failed to inhibit idle during capture")
			}
			return nil
		})
	case before == 1 && after == 0:
		c.runner.Go(ctx, func(ctx context.Context) func() {
			if err := idle.Uninhibit(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to release idle inhibition")
			}
			return nil
		})
	}
}

// WindowFocusChanged clears the foreground account's unread flag when the
// window gains focus and withdraws delivered notifications.
func (c *SessionCoordinator) WindowFocusChanged(ctx context.Context, focused bool) {
	c.focused = focused
	if !focused {
		return
	}
	if id := c.pool.Foreground(); id != "" {
		c.clearUnread(ctx, id)
	}
	if !c.settings.KeepNotificationsOnFocus {
		c.withdrawAll(ctx)
	}
}

// NotificationClicked routes a click to the account that raised the
// notification, shows it, clears its unread flag and replays the click into
// the session so the service opens the chat.
func (c *SessionCoordinator) NotificationClicked(ctx context.Context, routingID string) {
	accountID, tag, handle := c.router.OnClick(routingID)
	ctx = logging.WithAccountID(logging.WithComponent(ctx, notificationComponent), accountID)
	log := logging.FromContext(ctx).With().Str("tag", tag).Logger()

	if err := c.SwitchAccount(ctx, accountID); err != nil {
		log.Warn().Err(err).Msg("failed to switch to clicked notification's account")
		return
	}
	if c.pool.Foreground() != accountID {
		log.Debug().Msg("clicked notification belongs to a removed account")
		return
	}

	c.clearUnread(ctx, accountID)
	if handle != nil {
		handle.Click(ctx)
	}
	if c.chrome != nil {
		c.chrome.Present(ctx)
	}
	log.Debug().Bool("replayed", handle != nil).Msg("notification clicked")
}

// isWatched reports whether the user is looking at the account right now.
func (c *SessionCoordinator) isWatched(accountID string) bool {
	return c.focused && c.pool.Foreground() == accountID
}

func (c *SessionCoordinator) markUnread(ctx context.Context, accountID string) {
	if c.settings.DisableUnreadBadge {
		return
	}
	c.setUnread(ctx, accountID, true)
}

func (c *SessionCoordinator) clearUnread(ctx context.Context, accountID string) {
	c.setUnread(ctx, accountID, false)
}

func (c *SessionCoordinator) setUnread(ctx context.Context, accountID string, unread bool) {
	changed, err := c.accounts.SetUnread(ctx, accountID, unread)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("account_id", accountID).Msg("failed to update unread flag")
		return
	}
	if changed {
		c.scheduleRefresh(ctx)
	}
}

func (c *SessionCoordinator) clearAllUnread(ctx context.Context) {
	accounts, err := c.accounts.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to list accounts")
		return
	}
	for _, a := range accounts {
		if a.HasUnread {
			c.clearUnread(ctx, a.ID)
		}
	}
}

// withdrawAll removes every tracked notification from the desktop.
func (c *SessionCoordinator) withdrawAll(ctx context.Context) {
	c.focusSweeps++
	c.withdraw(ctx, c.router.WithdrawAll())
}

func (c *SessionCoordinator) withdraw(ctx context.Context, ids []port.PlatformNotificationID) {
	if len(ids) == 0 || c.transport == nil {
		return
	}
	transport := c.transport
	log := logging.FromContext(ctx)

	c.runner.Go(ctx, func(ctx context.Context) func() {
		for _, id := range ids {
			if err := transport.Withdraw(ctx, id); err != nil {
				log.Debug().Err(err).Str("platform_id", string(id)).Msg("failed to withdraw notification")
			}
		}
		return nil
	})
	log.Debug().Int("count", len(ids)).Msg("withdrawing notifications")
}
