package clock

import (
	"sync"
	"time"
)

// Countdown is a per-player turn clock. It ticks once per interval while
// running and fires the expire callback exactly once when it reaches zero.
// Callbacks run on the countdown's goroutine, outside its lock.
type Countdown struct {
	mu       sync.Mutex
	total    int
	left     int
	interval time.Duration
	stop     chan struct{}

	onTick   func(secondsLeft int)
	onExpire func()
}

type Option func(*Countdown)

// WithInterval overrides the one second tick, mostly for tests.
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) {
		if d > 0 {
			c.interval = d
		}
	}
}

func New(seconds int, onTick func(secondsLeft int), onExpire func(), opts ...Option) *Countdown {
	c := &Countdown{
		total:    seconds,
		left:     seconds,
		interval: time.Second,
		onTick:   onTick,
		onExpire: onExpire,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start stops any running countdown and starts a new one. With resume the
// remaining time carries over; otherwise it is reset to the full budget.
func (c *Countdown) Start(resume bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.halt()
	if !resume || c.left <= 0 {
		c.left = c.total
	}
	stop := make(chan struct{})
	c.stop = stop
	go c.run(stop)
}

// Pause stops the countdown, keeping the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.halt()
}

func (c *Countdown) SecondsLeft() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

func (c *Countdown) halt() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			left, ok := c.tick(stop)
			if !ok {
				return
			}
			if c.onTick != nil {
				c.onTick(left)
			}
			if left == 0 {
				if c.onExpire != nil {
					c.onExpire()
				}
				return
			}
		}
	}
}

// tick decrements the clock if stop still belongs to the current run.
func (c *Countdown) tick(stop chan struct{}) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != stop {
		return 0, false
	}
	c.left--
	if c.left <= 0 {
		c.left = 0
		c.stop = nil
	}
	return c.left, true
}
