package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bouncing-discs/internal/config"
	"github.com/iburimskiy/bouncing-discs/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Bouncing Discs")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	if err := ebiten.RunGame(game.New(rng)); err != nil {
		_ = zenity.Error("Display loop failed: "+err.Error(), zenity.Title("Bouncing Discs"))
		log.Fatal(err)
	}
}
