package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"orbit-lod/pkg/core"
)

// GGPen draws through a gg software context. Strokes and arcs use Ink, fills
// use Paper. The first rasterization error is latched and reported by Err.
type GGPen struct {
	ctx   *gg.Context
	Ink   color.Color
	Paper color.Color
	Width float64
	err   error
}

// NewGGPen wraps ctx with white-on-black defaults.
func NewGGPen(ctx *gg.Context) *GGPen {
	return &GGPen{ctx: ctx, Ink: color.White, Paper: color.Black, Width: 1}
}

// Context exposes the underlying gg context.
func (p *GGPen) Context() *gg.Context { return p.ctx }

// Err returns the first error raised while rasterizing.
func (p *GGPen) Err() error { return p.err }

func (p *GGPen) latch(op string, err error) {
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("gg %s: %w", op, err)
	}
}

// BeginPath implements Pen.
func (p *GGPen) BeginPath() { p.ctx.ClearPath() }

// MoveTo implements Pen.
func (p *GGPen) MoveTo(x, y float64) { p.ctx.MoveTo(x, y) }

// LineTo implements Pen.
func (p *GGPen) LineTo(x, y float64) { p.ctx.LineTo(x, y) }

// Arc implements Pen. gg only sweeps arcs in increasing angle, so
// counter-clockwise arcs are drawn from their far end.
func (p *GGPen) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	sweep := arcSweep(a0, a1, ccw)
	from, to := a0, a0+sweep
	if sweep < 0 {
		from, to = to, a0
	}
	start := core.V(cx, cy).Ray(from, r)
	p.ctx.MoveTo(start.X, start.Y)
	p.ctx.DrawArc(cx, cy, r, from, to)
}

// Stroke implements Pen.
func (p *GGPen) Stroke() {
	p.ctx.SetColor(p.Ink)
	p.ctx.SetLineWidth(p.Width)
	p.latch("stroke", p.ctx.Stroke())
}

// FillRect implements Pen.
func (p *GGPen) FillRect(x, y, w, h float64) {
	p.ctx.ClearPath()
	p.ctx.SetColor(p.Paper)
	p.ctx.DrawRectangle(x, y, w, h)
	p.latch("fill", p.ctx.Fill())
}
