package sim

import (
	"github.com/iburimskiy/bouncing-discs/internal/config"
)

// Step advances every particle by one frame's worth of velocity and reflects
// velocity components on wall contact, clamping positions back into
// [radius, dim-radius]. The boundary test is non-strict, so a particle
// sitting exactly on a wall keeps reflecting until its velocity carries it
// back inside. Axes are handled independently; a corner hit flips both
// components in the same step. Returns the number of wall contacts.
func Step(set []Particle, width, height float64) int {
	bounces := 0
	for i := range set {
		p := &set[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X <= config.BallRadius || p.X >= width-config.BallRadius {
			p.VX = -p.VX
			p.X = clamp(p.X, config.BallRadius, width-config.BallRadius)
			bounces++
		}
		if p.Y <= config.BallRadius || p.Y >= height-config.BallRadius {
			p.VY = -p.VY
			p.Y = clamp(p.Y, config.BallRadius, height-config.BallRadius)
			bounces++
		}
	}
	return bounces
}

// clamp limits v to [lo, hi]. A viewport smaller than the disc diameter
// makes hi < lo; positions collapse to lo in that case.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
