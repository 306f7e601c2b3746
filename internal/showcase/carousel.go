package showcase

import (
	"context"
	"sync"
	"time"

	"github.com/podoclinic/booking/internal/dto"
)

const (
	CarouselInterval = 5 * time.Second
	VisibleServices  = 4
)

// Carousel cycles through category groups on a fixed interval.
type Carousel struct {
	mu       sync.Mutex
	groups   []Group
	index    int
	interval time.Duration
	restart  chan struct{}
	onChange func(i int)
}

func NewCarousel(groups []Group) *Carousel {
	return &Carousel{
		groups:   groups,
		interval: CarouselInterval,
		restart:  make(chan struct{}, 1),
	}
}

// SetInterval changes the tick period. Call it before Run.
func (c *Carousel) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
}

// OnChange registers a callback fired after every index change.
func (c *Carousel) OnChange(fn func(i int)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.groups)
}

// Advance moves to the next group, wrapping to the first.
func (c *Carousel) Advance() {
	c.mu.Lock()
	if len(c.groups) == 0 {
		c.mu.Unlock()
		return
	}
	c.index = (c.index + 1) % len(c.groups)
	c.notifyLocked()
}

// Select jumps to group k modulo the group count and restarts the interval.
func (c *Carousel) Select(k int) {
	c.mu.Lock()
	n := len(c.groups)
	if n == 0 {
		c.mu.Unlock()
		return
	}
	c.index = ((k % n) + n) % n
	c.notifyLocked()

	select {
	case c.restart <- struct{}{}:
	default:
	}
}

// notifyLocked releases the lock before calling the callback.
func (c *Carousel) notifyLocked() {
	fn, i := c.onChange, c.index
	c.mu.Unlock()
	if fn != nil {
		fn(i)
	}
}

// Current returns the active group.
func (c *Carousel) Current() (Group, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.groups) == 0 {
		return Group{}, false
	}
	return c.groups[c.index], true
}

// Visible returns at most the first four services of the active group.
func (c *Carousel) Visible() []dto.Service {
	g, ok := c.Current()
	if !ok {
		return nil
	}
	if len(g.Services) > VisibleServices {
		return g.Services[:VisibleServices]
	}
	return g.Services
}

// Run advances on every interval until ctx ends.
func (c *Carousel) Run(ctx context.Context) {
	c.mu.Lock()
	interval := c.interval
	c.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Advance()
		case <-c.restart:
			ticker.Reset(interval)
		}
	}
}
