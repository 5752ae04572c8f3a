package mainloop

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/chatshell/internal/application/port"
)

// TaskRunner runs blocking work (notification IPC, portal calls) on a bounded
// set of goroutines and posts each continuation back to the control thread.
type TaskRunner struct {
	poster  Poster
	group   errgroup.Group
	waiting sync.WaitGroup
}

// NewTaskRunner creates a runner with at most limit concurrent tasks.
// A non-positive limit uses the number of CPUs.
func NewTaskRunner(p Poster, limit int) *TaskRunner {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	r := &TaskRunner{poster: p}
	r.group.SetLimit(limit)
	return r
}

// Go never blocks the caller: when the runner is saturated the task waits
// for a slot on its own goroutine.
func (r *TaskRunner) Go(ctx context.Context, work func(ctx context.Context) func()) {
	task := func() error {
		if ctx.Err() != nil {
			return nil
		}
		if cont := work(ctx); cont != nil {
			r.poster.Post(cont)
		}
		return nil
	}
	if r.group.TryGo(task) {
		return
	}
	r.waiting.Add(1)
	go func() {
		defer r.waiting.Done()
		r.group.Go(task)
	}()
}

// Wait blocks until every started task has finished.
func (r *TaskRunner) Wait() error {
	r.waiting.Wait()
	return r.group.Wait()
}

// SyncRunner runs work and its continuation on the caller's goroutine.
type SyncRunner struct{}

// Go runs work then its continuation.
func (SyncRunner) Go(ctx context.Context, work func(ctx context.Context) func()) {
	if cont := work(ctx); cont != nil {
		cont()
	}
}

var (
	_ port.BackgroundRunner = (*TaskRunner)(nil)
	_ port.BackgroundRunner = SyncRunner{}
)
