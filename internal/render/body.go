package render

import (
	"math"

	"orbit-lod/internal/surface"
	"orbit-lod/pkg/core"
)

// Body places a surface profile in viewer-relative coordinates.
type Body struct {
	Center      core.Vec2
	Orientation float64
	Surface     surface.Describer
	// Extent bounds the outline radius; it sizes the coarse visibility gate.
	Extent float64
}

// SurfaceStats summarizes one outline pass.
type SurfaceStats struct {
	LineStats
	Leaves   int
	Depth    int
	Abstract bool
}

// vertex is a node sample placed in view space: the surface point and the
// damped inward point that starts its relief tick.
type vertex struct {
	point  core.Vec2
	relief core.Vec2
}

func place(b Body, frac float64, s surface.Sample, d uint64) vertex {
	angle := b.Orientation + frac*core.Tau
	return vertex{
		point:  b.Center.Ray(angle, s.Radius),
		relief: b.Center.Ray(angle, s.Radius*(1-1/float64(d))),
	}
}

// Surface draws the body outline. Small bodies get a single circle; larger
// ones are subdivided until each span's projected error is within threshold.
func (r *Renderer) Surface(b Body) SurfaceStats {
	var st SurfaceStats
	if extent := r.ScreenExtent(b.Center, b.Extent); extent < r.coarse() {
		dot(r.Pen, r.Frame.Project(b.Center), math.Max(extent, 1))
		st.Abstract = true
		return st
	}
	root := surface.Root(b.Surface)
	v := place(b, 0, root.Start, 1)
	stop := vertex{point: b.Center.Ray(b.Orientation+core.Tau, root.Stop.Radius)}
	r.surfaceDetail(b, root, v, stop, &st)
	return st
}

func (r *Renderer) surfaceDetail(b Body, nd surface.Node, start, stop vertex, st *SurfaceStats) {
	level := b.Center.Ray(b.Orientation+nd.StopFrac()*core.Tau, nd.Start.Radius)
	refine := nd.Depth <= surface.MinDepth ||
		r.Frame.Project(start.point).Dist(r.Frame.Project(level)) > r.Frame.Threshold
	if refine && nd.Depth < surface.MaxDepth {
		left, right := nd.Split(b.Surface)
		mid := place(b, right.StartFrac(), right.Start, right.D)
		r.surfaceDetail(b, left, start, mid, st)
		r.surfaceDetail(b, right, mid, stop, st)
		return
	}
	st.Leaves++
	st.Depth = max(st.Depth, nd.Depth)
	st.add(r.Line(start.relief, start.point))
	st.add(r.Line(start.point, stop.point))
}

// Vessel draws the triangular vessel glyph pointing along heading, or a dot
// when it is too small to resolve.
func (r *Renderer) Vessel(center core.Vec2, heading, radius float64) LineStats {
	var st LineStats
	if r.ScreenExtent(center, radius) < 1 {
		dot(r.Pen, r.Frame.Project(center), 1)
		return st
	}
	top := center.Ray(heading, radius)
	port := center.Ray(heading+math.Pi*4/5, radius)
	stbd := center.Ray(heading+math.Pi*6/5, radius)
	st.add(r.Line(top, port))
	st.add(r.Line(top, stbd))
	st.add(r.Line(port, stbd))
	return st
}
