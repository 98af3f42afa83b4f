// Package carousel holds the hero slideshow position and the ticker that advances it.
package carousel

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is the slide cadence used when none is configured.
const DefaultInterval = 5 * time.Second

var (
	ErrEmpty           = errors.New("carousel has no slides")
	ErrOutOfRange      = errors.New("slide index out of range")
	ErrInvalidInterval = errors.New("carousel interval must be positive")
)

// Carousel is a wrap-around index over a fixed number of slides.
type Carousel struct {
	mu      sync.Mutex
	size    int
	current int
}

func New(size int) (*Carousel, error) {
	if size < 1 {
		return nil, ErrEmpty
	}
	return &Carousel{size: size}, nil
}

// Next advances one slide, wrapping to 0 after the last, and returns the new index.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = (c.current + 1) % c.size
	return c.current
}

func (c *Carousel) Select(i int) error {
	if i < 0 || i >= c.size {
		return ErrOutOfRange
	}
	c.mu.Lock()
	c.current = i
	c.mu.Unlock()
	return nil
}

func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Carousel) Len() int {
	return c.size
}

// Run calls fn with the next index every interval until ctx is done.
// No tick is delivered once ctx is cancelled.
func Run(ctx context.Context, interval time.Duration, c *Carousel, fn func(index int)) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			fn(c.Next())
		}
	}
}
