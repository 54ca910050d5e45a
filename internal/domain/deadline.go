package domain

import (
	"fmt"
	"time"
)

// Deadline is a fixed cutoff measured from its construction. It cannot be
// reset or extended.
type Deadline struct {
	start time.Time
	delay time.Duration
	now   func() time.Time
}

func NewDeadline(delay time.Duration) *Deadline {
	return newDeadlineWithClock(delay, time.Now)
}

func newDeadlineWithClock(delay time.Duration, now func() time.Time) *Deadline {
	return &Deadline{start: now(), delay: delay, now: now}
}

// Expired reports whether the delay has elapsed. A delay <= 0 is expired
// from the start.
func (deadline *Deadline) Expired() bool {
	return deadline.now().Sub(deadline.start) >= deadline.delay
}

func (deadline *Deadline) Elapsed() time.Duration {
	return deadline.now().Sub(deadline.start)
}

func (deadline *Deadline) String() string {
	return fmt.Sprintf("Deadline(%s/%s)", deadline.Elapsed(), deadline.delay)
}
