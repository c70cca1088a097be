package render

import (
	"math"

	"orbit-lod/pkg/core"
)

// DotGrid stores a binary raster in row-major order. Terminal backends pack it
// into braille cells of 2x4 dots.
type DotGrid struct {
	W, H int
	data []uint8
}

// NewDotGrid allocates a grid with the given dimensions.
func NewDotGrid(w, h int) *DotGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &DotGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Get reports whether the dot at (x, y) is set. Out-of-range dots are unset.
func (g *DotGrid) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return false
	}
	return g.data[y*g.W+x] != 0
}

// Set lights the dot at (x, y), ignoring out-of-range coordinates.
func (g *DotGrid) Set(x, y int) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.data[y*g.W+x] = 1
}

// Clear unsets every dot.
func (g *DotGrid) Clear() {
	clear(g.data)
}

// ClearRect unsets the dots covered by the rectangle.
func (g *DotGrid) ClearRect(x, y, w, h float64) {
	x0 := min(max(int(math.Floor(x)), 0), g.W)
	y0 := min(max(int(math.Floor(y)), 0), g.H)
	x1 := min(max(int(math.Ceil(x+w)), x0), g.W)
	y1 := min(int(math.Ceil(y+h)), g.H)
	for yy := y0; yy < y1; yy++ {
		clear(g.data[yy*g.W+x0 : yy*g.W+x1])
	}
}

// Line lights the dots along a straight segment.
func (g *DotGrid) Line(a, b core.Vec2) {
	steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
	if steps > 4*(g.W+g.H) {
		steps = 4 * (g.W + g.H)
	}
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		p := a.Lerp(b, t)
		g.Set(int(math.Floor(p.X)), int(math.Floor(p.Y)))
	}
}

// brailleBits maps a dot's position inside a 2x4 cell to its braille bit.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille packs the 2x4 block at cell (cx, cy) into a braille rune. An empty
// block is a space.
func (g *DotGrid) Braille(cx, cy int) rune {
	var bits rune
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			if g.Get(cx*2+dx, cy*4+dy) {
				bits |= brailleBits[dy][dx]
			}
		}
	}
	if bits == 0 {
		return ' '
	}
	return 0x2800 | bits
}
