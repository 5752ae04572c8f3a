package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one run of the latest one.
// Switching accounts rapidly, for example, refreshes the window chrome once.
type Coalescer struct {
	mu      sync.Mutex
	latest  map[string]func()
	poster  Poster
	stopped bool
}

// NewCoalescer creates a coalescer posting to p.
func NewCoalescer(p Poster) *Coalescer {
	if p == nil {
		panic("mainloop.NewCoalescer: poster cannot be nil")
	}
	return &Coalescer{
		latest: make(map[string]func()),
		poster: p,
	}
}

// Post schedules fn under key. While a task for key is queued, later posts
// only replace the function it will run.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, queued := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if queued {
		return
	}
	if !c.poster.Post(func() { c.fire(key) }) {
		c.mu.Lock()
		delete(c.latest, key)
		c.mu.Unlock()
	}
}

func (c *Coalescer) fire(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Pending returns how many keys await their run.
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.latest)
}

// Destroy drops queued work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.stopped = true
	c.latest = map[string]func(){}
	c.mu.Unlock()
}
