//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"orbit-lod/internal/app"
)

const hudWidth = 220

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := app.NewScene(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(scene, hudWidth)

	ebiten.SetWindowTitle("orbit: " + cfg.Profile)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+hudWidth, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
