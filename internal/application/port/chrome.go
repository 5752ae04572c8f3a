package port

import (
	"context"

	"github.com/bnema/chatshell/internal/domain/entity"
)

// WindowChrome is the window and tray surface that reflects coordinator state.
// Implemented by the UI layer.
type WindowChrome interface {
	// ActiveAccountChanged is called after the foreground session changed.
	ActiveAccountChanged(ctx context.Context, account entity.Account)

	// AccountsChanged is called after any change visible in the account
	// switcher (add, remove, reorder, identity, unread).
	AccountsChanged(ctx context.Context, summary []entity.AccountSummary)

	// UnreadChanged is called when the aggregated unread state flips, so the
	// tray badge can follow.
	UnreadChanged(ctx context.Context, hasUnread bool)

	// Present raises the window, after a notification click for example.
	Present(ctx context.Context)
}
