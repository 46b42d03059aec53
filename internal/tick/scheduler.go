// Package tick decides when a simulation tick is due, decoupling the
// simulation rate from the render rate.
package tick

import "time"

// Scheduler tracks the time of the last tick.
type Scheduler struct {
	last time.Time
}

// NewScheduler creates a scheduler whose last tick is now.
func NewScheduler(now time.Time) *Scheduler {
	return &Scheduler{last: now}
}

// Reset records now as the last tick without firing.
func (s *Scheduler) Reset(now time.Time) {
	s.last = now
}

// Due reports whether at least interval has elapsed since the last tick.
// When it has, now becomes the last tick.
func (s *Scheduler) Due(now time.Time, interval time.Duration) bool {
	if now.Sub(s.last) < interval {
		return false
	}
	s.last = now
	return true
}

// Last returns the time of the last tick.
func (s *Scheduler) Last() time.Time {
	return s.last
}
