// Package alert provides the fire-and-forget effect played when a countdown
// reaches zero.
package alert

import (
	"context"
	"io"
	"sync"

	"github.com/dmitrijs2005/countdown/internal/logging"
)

// Alerter plays an alert. Implementations must not block the caller.
type Alerter interface {
	PlayAlert()
}

// Bell rings the terminal bell by writing BEL to w.
type Bell struct {
	mu      sync.Mutex
	w       io.Writer
	logger  logging.Logger
	enabled bool
}

// NewBell returns a Bell writing to w. A disabled bell does nothing.
func NewBell(w io.Writer, enabled bool, logger logging.Logger) *Bell {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Bell{w: w, logger: logger, enabled: enabled}
}

// PlayAlert rings the bell. Callers log the event that triggered it.
func (b *Bell) PlayAlert() {
	if !b.enabled || b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.logger.Warn(context.Background(), "failed to play alert", "error", err)
	}
}

// Func adapts a plain function to Alerter.
type Func func()

func (f Func) PlayAlert() { f() }

// Counter records how many alerts were played. Safe for concurrent use.
type Counter struct {
	mu sync.Mutex
	n  int
}

func (c *Counter) PlayAlert() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
