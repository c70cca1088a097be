// Package render turns world geometry into bounded-error screen strokes. The
// tessellation works against the minimal Pen capability so any backend that
// can stroke straight paths can display it.
package render

import "orbit-lod/pkg/core"

// Pen is a stateful path-based drawing surface.
type Pen interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	Arc(cx, cy, r, startAngle, endAngle float64, ccw bool)
	FillRect(x, y, w, h float64)
}

func strokeChord(pen Pen, a, b core.Vec2) {
	pen.BeginPath()
	pen.MoveTo(a.X, a.Y)
	pen.LineTo(b.X, b.Y)
	pen.Stroke()
}

func dot(pen Pen, at core.Vec2, r float64) {
	pen.BeginPath()
	pen.Arc(at.X, at.Y, r, 0, core.Tau, false)
	pen.Stroke()
}
