package countdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/countdown/internal/alert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steppingClock advances by step on every read.
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestFollow_AlertsOnceAndStops(t *testing.T) {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := &steppingClock{now: start, step: time.Second}
	var ticks []Breakdown
	var bell alert.Counter

	err := Follow(context.Background(), start.Add(3*time.Second), time.Millisecond, clock,
		func(b Breakdown) { ticks = append(ticks, b) }, &bell)

	require.NoError(t, err)
	require.Len(t, ticks, 4)
	assert.Equal(t, []Breakdown{{Seconds: 3}, {Seconds: 2}, {Seconds: 1}, {Elapsed: true}}, ticks)
	assert.Equal(t, 1, bell.Count())
}

func TestFollow_AlreadyElapsed(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	var bell alert.Counter
	n := 0

	err := Follow(context.Background(), now.Add(-time.Minute), time.Millisecond,
		ClockFunc(func() time.Time { return now }), func(Breakdown) { n++ }, &bell)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, bell.Count())
}

func TestFollow_Cancelled(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	var bell alert.Counter

	err := Follow(ctx, now.Add(time.Hour), time.Millisecond,
		ClockFunc(func() time.Time { return now }), func(Breakdown) {}, &bell)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, bell.Count())
}
