package countdown

import (
	"context"
	"time"

	"github.com/dmitrijs2005/countdown/internal/alert"
)

// Follow drives a single-event countdown: onTick receives a fresh breakdown
// immediately and then every interval. When the target is reached the
// alerter plays once and Follow returns nil, also when the target had
// already passed on the first tick.
func Follow(ctx context.Context, target time.Time, interval time.Duration,
	clock Clock, onTick func(Breakdown), alerter alert.Alerter) error {

	if clock == nil {
		clock = SystemClock
	}
	if interval <= 0 {
		interval = time.Second
	}

	if done := step(target, clock, onTick, alerter); done {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if done := step(target, clock, onTick, alerter); done {
				return nil
			}
		}
	}
}

func step(target time.Time, clock Clock, onTick func(Breakdown), alerter alert.Alerter) bool {
	b := Compute(target, clock.Now())
	onTick(b)
	if !b.Elapsed {
		return false
	}
	if alerter != nil {
		alerter.PlayAlert()
	}
	return true
}
