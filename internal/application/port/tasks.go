package port

import "context"

// BackgroundRunner runs blocking work off the control thread. The function
// returned by work is posted back and executed on the control thread, so it
// may touch registry and pool state. A nil continuation is allowed.
type BackgroundRunner interface {
	Go(ctx context.Context, work func(ctx context.Context) func())
}
