// Command orbit-snapshot renders a single frame of the scene to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"orbit-lod/internal/app"
	"orbit-lod/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	meridian := flag.Float64("meridian", 0, "body meridian to hover over, in radians")
	altitude := flag.Float64("altitude", math.NaN(), "height above the surface; unset keeps the starting position")
	flag.Parse()

	if cfg.Verbose {
		gg.SetLogger(slog.Default())
	}
	if err := run(cfg, *meridian, *altitude); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, meridian, altitude float64) error {
	scene, err := app.NewScene(cfg)
	if err != nil {
		return err
	}
	if !math.IsNaN(altitude) {
		scene.Approach(meridian, altitude)
	}

	ctx := gg.NewContext(cfg.Width, cfg.Height)
	defer ctx.Close()
	pen := render.NewGGPen(ctx)
	stats := scene.Draw(pen, cfg.Width, cfg.Height)
	if err := pen.Err(); err != nil {
		return err
	}
	if err := ctx.SavePNG(cfg.Out); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Out, err)
	}

	log.Printf("wrote %s: %d leaves, depth %d, %d strokes", cfg.Out, stats.Leaves, stats.Depth, stats.Strokes)
	for _, line := range scene.Telemetry().Lines() {
		log.Print(line)
	}
	return nil
}
