package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/bouncing-discs/internal/config"
	"github.com/iburimskiy/bouncing-discs/internal/sim"
)

var backgroundColor = color.RGBA{R: 16, G: 18, B: 28, A: 255}

// Game drives the simulation from Ebiten's frame loop: Update advances the
// world one step, Draw paints it, Layout reports the viewport and triggers a
// reseed when the window is resized.
type Game struct {
	world *sim.World
	blip  *bouncePlayer

	// button state
	buttonHovered bool
	buttonPressed bool

	lastBlip time.Time
}

func New(rng *rand.Rand) *Game {
	return &Game{
		world: sim.New(rng, config.WindowWidth, config.WindowHeight),
		blip:  newBouncePlayer(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.world.Playing {
		g.world.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.blip.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Handle button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = pointInRect(mouseX, mouseY, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.world.TogglePlay()
		}
		g.buttonPressed = false
	}

	bounces := g.world.Advance()
	// Cooldown so a busy frame queues one blip, not one per contact.
	if bounces > 0 && time.Since(g.lastBlip) >= 50*time.Millisecond {
		g.blip.play()
		g.lastBlip = time.Now()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for i := range g.world.Particles {
		p := &g.world.Particles[i]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(config.BallRadius), p.Color, true)
	}

	g.drawButton(screen)

	status := fmt.Sprintf("%d particles", len(g.world.Particles))
	if g.world.Playing {
		status += " - Running (Space to pause)"
	} else {
		status += " - Paused (Space to play, N to step)"
	}
	if !g.blip.enabled {
		status += " | muted"
	}
	status += " | R reseed, M mute, Q quit"
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout reports the drawable bounds 1:1 with the window. A size change
// replaces the simulation set wholesale on the new bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.world.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), bgColor, false)

	// Button border
	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), 2, borderColor, false)

	// Button text
	text := "Pause"
	if !g.world.Playing {
		text = "Play"
	}
	textWidth := len(text) * 8 // Approximate character width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight+8)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func pointInRect(px, py, x, y, w, h int) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
