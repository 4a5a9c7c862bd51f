package game

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/bouncing-discs/internal/config"
)

// bouncePlayer plays a short sine blip whenever a particle reflects off a
// wall. If no audio device is available the simulation runs silent; sound is
// never a reason to fail.
type bouncePlayer struct {
	sr      beep.SampleRate
	ready   bool
	enabled bool
}

func newBouncePlayer() *bouncePlayer {
	b := &bouncePlayer{
		sr:      beep.SampleRate(config.SampleRate),
		enabled: true,
	}
	if err := speaker.Init(b.sr, b.sr.N(20*time.Millisecond)); err != nil {
		log.Printf("audio unavailable, running silent: %v", err)
		return b
	}
	b.ready = true
	return b
}

func (b *bouncePlayer) play() {
	if !b.ready || !b.enabled {
		return
	}
	tone, err := generators.SinTone(b.sr, config.BlipFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sr.N(config.BlipDuration*time.Millisecond), tone))
}

func (b *bouncePlayer) toggle() {
	if !b.ready {
		return
	}
	b.enabled = !b.enabled
	if !b.enabled {
		// Drop anything still queued so muting is immediate.
		speaker.Clear()
	}
}
