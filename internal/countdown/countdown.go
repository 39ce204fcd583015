// Package countdown computes the remaining time until an event and detects
// the moment a countdown reaches zero.
package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Breakdown is the remaining time split into whole units. All fields are
// zero and Elapsed is set once the target has been reached.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	Elapsed bool
}

// Compute splits target-now, truncated to milliseconds, into days, hours,
// minutes and seconds.
func Compute(target, now time.Time) Breakdown {
	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		return Breakdown{Elapsed: true}
	}

	b := Breakdown{Days: diff / msPerDay}
	diff %= msPerDay
	b.Hours = diff / msPerHour
	diff %= msPerHour
	b.Minutes = diff / msPerMinute
	diff %= msPerMinute
	b.Seconds = diff / msPerSecond
	return b
}

// String renders the breakdown the way list rows show it.
func (b Breakdown) String() string {
	if b.Elapsed {
		return "Event passed"
	}
	return fmt.Sprintf("%dd %02dh %02dm %02ds", b.Days, b.Hours, b.Minutes, b.Seconds)
}
