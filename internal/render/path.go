package render

import (
	"math"

	"orbit-lod/pkg/core"
)

// arcStep is the target length, in pixels, of one flattened arc segment.
const arcStep = 2.0

const maxArcSegments = 256

// polyPath accumulates a path as polylines for backends that can only draw
// straight segments.
type polyPath struct {
	subpaths [][]core.Vec2
}

func (p *polyPath) reset() {
	p.subpaths = p.subpaths[:0]
}

func (p *polyPath) moveTo(v core.Vec2) {
	p.subpaths = append(p.subpaths, []core.Vec2{v})
}

func (p *polyPath) lineTo(v core.Vec2) {
	if len(p.subpaths) == 0 {
		p.moveTo(v)
		return
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], v)
}

// arc appends a flattened circular arc, joined to the current point by a
// straight line as a canvas would.
func (p *polyPath) arc(cx, cy, r, a0, a1 float64, ccw bool) {
	sweep := arcSweep(a0, a1, ccw)
	n := int(math.Ceil(math.Abs(sweep) * r / arcStep))
	n = min(max(n, 4), maxArcSegments)
	c := core.V(cx, cy)
	for i := 0; i <= n; i++ {
		p.lineTo(c.Ray(a0+sweep*float64(i)/float64(n), r))
	}
}

// segments calls fn for every straight piece of the path.
func (p *polyPath) segments(fn func(a, b core.Vec2)) {
	for _, sp := range p.subpaths {
		for i := 1; i < len(sp); i++ {
			fn(sp[i-1], sp[i])
		}
	}
}

// arcSweep resolves canvas arc angles into a signed sweep no longer than a
// full turn.
func arcSweep(a0, a1 float64, ccw bool) float64 {
	d := a1 - a0
	if ccw {
		d = -d
	}
	if d >= core.Tau {
		d = core.Tau
	} else {
		d = math.Mod(d, core.Tau)
		if d < 0 {
			d += core.Tau
		}
	}
	if ccw {
		return -d
	}
	return d
}
