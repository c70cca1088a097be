//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"orbit-lod/pkg/core"
)

// EbitenPen strokes paths onto an ebiten image with anti-aliased lines.
type EbitenPen struct {
	dst   *ebiten.Image
	path  polyPath
	Ink   color.Color
	Paper color.Color
	Width float32
}

// NewEbitenPen returns a white-on-black pen.
func NewEbitenPen() *EbitenPen {
	return &EbitenPen{Ink: color.White, Paper: color.Black, Width: 1}
}

// Target points the pen at the image to draw on for this frame.
func (p *EbitenPen) Target(dst *ebiten.Image) { p.dst = dst }

// BeginPath implements Pen.
func (p *EbitenPen) BeginPath() { p.path.reset() }

// MoveTo implements Pen.
func (p *EbitenPen) MoveTo(x, y float64) { p.path.moveTo(core.V(x, y)) }

// LineTo implements Pen.
func (p *EbitenPen) LineTo(x, y float64) { p.path.lineTo(core.V(x, y)) }

// Arc implements Pen.
func (p *EbitenPen) Arc(cx, cy, r, a0, a1 float64, ccw bool) { p.path.arc(cx, cy, r, a0, a1, ccw) }

// Stroke implements Pen.
func (p *EbitenPen) Stroke() {
	if p.dst == nil {
		p.path.reset()
		return
	}
	p.path.segments(func(a, b core.Vec2) {
		vector.StrokeLine(p.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), p.Width, p.Ink, true)
	})
	p.path.reset()
}

// FillRect implements Pen.
func (p *EbitenPen) FillRect(x, y, w, h float64) {
	if p.dst == nil {
		return
	}
	vector.DrawFilledRect(p.dst, float32(x), float32(y), float32(w), float32(h), p.Paper, false)
}
