package render

import (
	"github.com/gdamore/tcell/v2"

	"orbit-lod/pkg/core"
)

// TermPen plots strokes onto a tcell screen using braille characters, giving
// each terminal cell 2x4 addressable dots. Pen coordinates are in dots.
type TermPen struct {
	screen tcell.Screen
	dots   *DotGrid
	path   polyPath
	Style  tcell.Style
}

// NewTermPen sizes a pen to the screen.
func NewTermPen(screen tcell.Screen) *TermPen {
	p := &TermPen{screen: screen, Style: tcell.StyleDefault.Foreground(tcell.ColorWhite)}
	p.Resize()
	return p
}

// Resize reallocates the dot raster after the terminal changed size.
func (p *TermPen) Resize() {
	cols, rows := p.screen.Size()
	p.dots = NewDotGrid(cols*2, rows*4)
}

// Size reports the drawable area in dots.
func (p *TermPen) Size() (w, h int) { return p.dots.W, p.dots.H }

// Dots exposes the raster.
func (p *TermPen) Dots() *DotGrid { return p.dots }

// BeginPath implements Pen.
func (p *TermPen) BeginPath() { p.path.reset() }

// MoveTo implements Pen.
func (p *TermPen) MoveTo(x, y float64) { p.path.moveTo(core.V(x, y)) }

// LineTo implements Pen.
func (p *TermPen) LineTo(x, y float64) { p.path.lineTo(core.V(x, y)) }

// Arc implements Pen.
func (p *TermPen) Arc(cx, cy, r, a0, a1 float64, ccw bool) { p.path.arc(cx, cy, r, a0, a1, ccw) }

// Stroke implements Pen.
func (p *TermPen) Stroke() {
	p.path.segments(p.dots.Line)
	p.path.reset()
}

// FillRect implements Pen. Terminal fills clear to the background.
func (p *TermPen) FillRect(x, y, w, h float64) { p.dots.ClearRect(x, y, w, h) }

// Flush copies the raster to the screen cells. Callers write overlay text
// afterwards and then call Show.
func (p *TermPen) Flush() {
	cols, rows := p.screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			p.screen.SetContent(cx, cy, p.dots.Braille(cx, cy), nil, p.Style)
		}
	}
}
