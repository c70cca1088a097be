//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"orbit-lod/internal/render"
	"orbit-lod/internal/view"
)

// Overlay draws optional debugging visuals on top of the viewport. Keys 1-3
// toggle the horizon, range rings and outline statistics.
type Overlay struct {
	showHorizon bool
	showRings   bool
	showStats   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHorizon = !o.showHorizon
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showRings = !o.showRings
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showStats = !o.showStats
	}
}

// Draw renders the enabled layers for frame.
func (o *Overlay) Draw(screen *ebiten.Image, frame view.Frame, stats render.SurfaceStats) {
	cx, cy := float32(frame.Center.X), float32(frame.Center.Y)
	if o.showHorizon {
		vector.StrokeCircle(screen, cx, cy, float32(frame.Radius), 1, color.RGBA{R: 90, G: 90, B: 110, A: 255}, true)
	}
	if o.showRings {
		ring := color.RGBA{R: 40, G: 90, B: 60, A: 255}
		for _, r := range RingRadii(frame, RingDistances) {
			vector.StrokeCircle(screen, cx, cy, float32(r), 1, ring, true)
		}
	}
	if o.showStats {
		face := basicfont.Face7x13
		y := 16
		for _, line := range StatsLines(stats) {
			text.Draw(screen, line, face, 8, y, color.RGBA{R: 255, G: 200, B: 90, A: 255})
			y += 14
		}
	}
}
