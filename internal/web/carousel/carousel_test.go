//go:build !integration

package carousel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarousel_Next(t *testing.T) {
	t.Run("returns to first slide after a full cycle", func(t *testing.T) {
		c, err := New(3)
		require.NoError(t, err)

		assert.Equal(t, 1, c.Next())
		assert.Equal(t, 2, c.Next())
		assert.Equal(t, 0, c.Next())
		assert.Equal(t, 0, c.Current())
	})

	t.Run("single slide stays put", func(t *testing.T) {
		c, err := New(1)
		require.NoError(t, err)

		assert.Equal(t, 0, c.Next())
	})
}

func TestCarousel_Select(t *testing.T) {
	c, err := New(3)
	require.NoError(t, err)

	require.NoError(t, c.Select(2))
	assert.Equal(t, 2, c.Current())
	assert.Equal(t, 0, c.Next())

	assert.ErrorIs(t, c.Select(3), ErrOutOfRange)
	assert.ErrorIs(t, c.Select(-1), ErrOutOfRange)
	assert.Equal(t, 0, c.Current())
}

func TestNew_Empty(t *testing.T) {
	_, err := New(0)

	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRun(t *testing.T) {
	t.Run("ticks until cancelled", func(t *testing.T) {
		// given
		c, err := New(3)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var seen []int
		done := make(chan struct{})

		// when
		go func() {
			defer close(done)
			_ = Run(ctx, time.Millisecond, c, func(i int) {
				seen = append(seen, i)
				if len(seen) == 3 {
					cancel()
				}
			})
		}()

		// then
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not stop after cancel")
		}
		assert.Equal(t, []int{1, 2, 0}, seen)
	})

	t.Run("returns immediately on cancelled context", func(t *testing.T) {
		c, err := New(3)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = Run(ctx, time.Hour, c, func(int) { t.Fatal("unexpected tick") })

		assert.NoError(t, err)
		assert.Equal(t, 0, c.Current())
	})

	t.Run("rejects a non-positive interval", func(t *testing.T) {
		c, err := New(3)
		require.NoError(t, err)

		for _, interval := range []time.Duration{0, -time.Second} {
			err := Run(context.Background(), interval, c, func(int) { t.Fatal("unexpected tick") })

			assert.ErrorIs(t, err, ErrInvalidInterval)
		}
		assert.Equal(t, 0, c.Current())
	})
}
