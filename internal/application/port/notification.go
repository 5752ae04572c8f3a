package port

import "context"

// PlatformNotificationID is the id a transport assigned to a delivered notification.
type PlatformNotificationID string

// NotificationTransport delivers desktop notifications.
// Implementations may block on IPC and are only called from the task runner.
type NotificationTransport interface {
	// Deliver shows a notification whose activation must come back carrying routingID.
	Deliver(ctx context.Context, routingID, title, body, icon string) (PlatformNotificationID, error)

	// Withdraw removes a previously delivered notification. Unknown ids are not an error.
	Withdraw(ctx context.Context, id PlatformNotificationID) error

	// OnActivated registers the callback invoked with the routing id of a
	// clicked notification. The callback may run on any goroutine.
	OnActivated(fn func(routingID string))

	Close() error
}
