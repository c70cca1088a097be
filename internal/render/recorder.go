package render

import "orbit-lod/pkg/core"

// Segment is one straight stroked piece, in screen pixels.
type Segment struct {
	A, B core.Vec2
}

// Len is the screen length of the segment.
func (s Segment) Len() float64 { return s.A.Dist(s.B) }

// ArcOp is a recorded Arc call.
type ArcOp struct {
	Center     core.Vec2
	R          float64
	Start, End float64
	CCW        bool
}

// Recorder is a Pen that remembers what was drawn instead of rasterizing it.
type Recorder struct {
	path  polyPath
	open  []ArcOp
	Segs  []Segment
	Arcs  []ArcOp
	Fills [][4]float64
	Paths int
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.path.reset()
	r.open = r.open[:0]
	r.Segs = r.Segs[:0]
	r.Arcs = r.Arcs[:0]
	r.Fills = r.Fills[:0]
	r.Paths = 0
}

// BeginPath implements Pen.
func (r *Recorder) BeginPath() {
	r.path.reset()
	r.open = r.open[:0]
}

// MoveTo implements Pen.
func (r *Recorder) MoveTo(x, y float64) { r.path.moveTo(core.V(x, y)) }

// LineTo implements Pen.
func (r *Recorder) LineTo(x, y float64) { r.path.lineTo(core.V(x, y)) }

// Arc implements Pen. Arcs are kept whole rather than flattened.
func (r *Recorder) Arc(cx, cy, rad, a0, a1 float64, ccw bool) {
	r.open = append(r.open, ArcOp{Center: core.V(cx, cy), R: rad, Start: a0, End: a1, CCW: ccw})
}

// Stroke implements Pen.
func (r *Recorder) Stroke() {
	r.Paths++
	r.path.segments(func(a, b core.Vec2) {
		r.Segs = append(r.Segs, Segment{A: a, B: b})
	})
	r.Arcs = append(r.Arcs, r.open...)
	r.path.reset()
	r.open = r.open[:0]
}

// FillRect implements Pen.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Fills = append(r.Fills, [4]float64{x, y, w, h})
}

// Longest returns the longest recorded segment length.
func (r *Recorder) Longest() float64 {
	longest := 0.0
	for _, s := range r.Segs {
		longest = max(longest, s.Len())
	}
	return longest
}
