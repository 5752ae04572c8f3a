package port

import (
	"context"

	"github.com/bnema/chatshell/internal/domain/entity"
)

// SessionSpec describes a new isolated browsing session.
type SessionSpec struct {
	AccountID string
	Dirs      entity.StorageDirs
	URI       string
	UserAgent string
	Visible   bool
}

// RenderingEngine creates isolated browsing sessions.
// Implemented by the web view layer; the core never owns engine objects
// beyond the handle returned here.
type RenderingEngine interface {
	CreateSession(ctx context.Context, spec SessionSpec) (EngineSession, error)
}

// EngineSession is the engine-side handle of one live session.
// All methods are called from the control thread.
type EngineSession interface {
	Load(ctx context.Context, uri string) error
	Reload(ctx context.Context) error
	SetVisible(visible bool)
	SetZoomLevel(level float64)
	Destroy()
}

// PermissionRequest is the engine's permission request, already reduced to
// tracked kinds at the engine boundary.
type PermissionRequest struct {
	Kinds []entity.PermissionKind
}

// NotificationHandle replays a notification click into the session that
// raised it so the service can navigate to the right chat.
type NotificationHandle interface {
	Click(ctx context.Context)
}

// RaisedNotification is a notification emitted by a session.
type RaisedNotification struct {
	Title  string
	Body   string
	Tag    string
	Icon   string
	Handle NotificationHandle
}
