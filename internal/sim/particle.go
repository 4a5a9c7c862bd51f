package sim

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/bouncing-discs/internal/config"
)

// Particle is a single simulated disc. The draw/collision radius is the
// global config.BallRadius, shared by every particle, so it is not stored
// per particle. Color is assigned once at seeding and never changes.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA
}

var paletteHex = []string{
	"#e6261f",
	"#eb7532",
	"#f7d038",
	"#a3e048",
	"#49da9a",
	"#34bbe6",
	"#4355db",
	"#d23be7",
}

var palette = func() []color.RGBA {
	out := make([]color.RGBA, len(paletteHex))
	for i, hex := range paletteHex {
		out[i] = parseColor(hex)
	}
	return out
}()

// parseColor parses a "#rrggbb" string, falling back to a default color on
// malformed input rather than failing.
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{200, 200, 255, 255}
}

// NewSet seeds count particles uniformly inside the safe interior bounds
// [radius, dim-radius], with velocity components drawn uniformly from
// [-SpeedMultiplier, +SpeedMultiplier] and a color drawn from the palette.
// Exact-zero velocity components are redrawn so no particle starts static.
func NewSet(rng *rand.Rand, count int, width, height float64) []Particle {
	set := make([]Particle, count)
	for i := range set {
		set[i] = Particle{
			X:     interiorCoord(rng, width),
			Y:     interiorCoord(rng, height),
			VX:    velocityComponent(rng),
			VY:    velocityComponent(rng),
			Color: palette[rng.IntN(len(palette))],
		}
	}
	return set
}

func interiorCoord(rng *rand.Rand, dim float64) float64 {
	lo := float64(config.BallRadius)
	hi := dim - config.BallRadius
	if hi <= lo {
		// Degenerate viewport: the safe interior collapses to a point.
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func velocityComponent(rng *rand.Rand) float64 {
	for {
		v := (rng.Float64()*2 - 1) * config.SpeedMultiplier
		if v != 0 {
			return v
		}
	}
}
