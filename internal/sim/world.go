package sim

import (
	"math/rand/v2"

	"github.com/iburimskiy/bouncing-discs/internal/config"
)

// World owns the simulation set and the current viewport bounds. The set is
// replaced wholesale on resize or reseed; individual particles are never
// added or removed. A single goroutine (the frame loop) touches the World.
type World struct {
	Particles []Particle
	Width     float64
	Height    float64
	Playing   bool

	rng *rand.Rand
}

func New(rng *rand.Rand, width, height float64) *World {
	w := &World{
		Width:   width,
		Height:  height,
		Playing: true,
		rng:     rng,
	}
	w.Reseed()
	return w
}

// Advance runs one step unless paused. Returns the step's wall-contact
// count, 0 while paused.
func (w *World) Advance() int {
	if !w.Playing {
		return 0
	}
	return w.StepOnce()
}

// StepOnce advances one step regardless of the play state. Used for manual
// stepping while paused.
func (w *World) StepOnce() int {
	return Step(w.Particles, w.Width, w.Height)
}

func (w *World) TogglePlay() { w.Playing = !w.Playing }

func (w *World) Pause() { w.Playing = false }

func (w *World) Resume() { w.Playing = true }

// Resize updates the viewport bounds and re-seeds the set. Calling it with
// the current bounds is a no-op, so it is safe to invoke every frame.
func (w *World) Resize(width, height float64) bool {
	if width == w.Width && height == w.Height {
		return false
	}
	w.Width = width
	w.Height = height
	w.Reseed()
	return true
}

// Reseed replaces the set with a fresh one on the current bounds.
func (w *World) Reseed() {
	w.Particles = NewSet(w.rng, config.ParticleCount, w.Width, w.Height)
}
