// Package speed maps the score onto the snake's movement interval.
package speed

import (
	"math"
	"time"
)

const (
	// DefaultBase is the interval at score zero.
	DefaultBase = 150 * time.Millisecond

	// RampScore is the score at which the interval reaches zero.
	RampScore = 100
)

// Curve eases the movement interval from Base down to zero over
// [0, RampScore] following a quarter cosine, then holds it at zero.
type Curve struct {
	Base time.Duration
}

// Interval returns the minimum time between ticks at the given score.
func (c Curve) Interval(score int) time.Duration {
	if score <= 0 {
		return c.Base
	}
	if score >= RampScore {
		return 0
	}
	scale := math.Cos(float64(score) / RampScore * math.Pi / 2)
	if scale < 0 {
		scale = 0
	}
	return time.Duration(float64(c.Base) * scale)
}
