package render

import (
	"math"

	"orbit-lod/internal/view"
	"orbit-lod/pkg/core"
)

// MaxLinePops caps the work spent bisecting one segment or circle. Past the
// cap the remaining stack is dropped and the stroke is left incomplete.
const MaxLinePops = 1000

// LineStats describes the outcome of one tessellated curve.
type LineStats struct {
	Strokes   int
	Truncated bool
}

func (s *LineStats) add(o LineStats) {
	s.Strokes += o.Strokes
	s.Truncated = s.Truncated || o.Truncated
}

// Renderer draws world geometry, already in viewer-relative coordinates, with
// chords no longer than the frame threshold on screen.
type Renderer struct {
	Pen   Pen
	Frame view.Frame

	// Coarse is the screen size, in pixels, below which bodies are drawn as a
	// single primitive. Zero means Frame.Threshold.
	Coarse float64

	points []core.Vec2
	angles []float64
}

// NewRenderer returns a renderer drawing onto pen.
func NewRenderer(pen Pen, frame view.Frame) *Renderer {
	return &Renderer{Pen: pen, Frame: frame}
}

func (r *Renderer) coarse() float64 {
	if r.Coarse > 0 {
		return r.Coarse
	}
	return r.Frame.Threshold
}

// Line draws the straight world segment source-target, bisecting it until
// each projected chord is within the threshold.
func (r *Renderer) Line(source, target core.Vec2) LineStats {
	var st LineStats
	points := append(r.points[:0], source, target)
	for meter := MaxLinePops; len(points) >= 2; meter-- {
		if meter == 0 {
			st.Truncated = true
			break
		}
		c := points[len(points)-1]
		points = points[:len(points)-1]
		a := points[len(points)-1]
		ap, cp := r.Frame.Project(a), r.Frame.Project(c)
		if ap.Dist(cp) > r.Frame.Threshold {
			points = append(points, a.Lerp(c, 0.5), c)
			continue
		}
		strokeChord(r.Pen, ap, cp)
		st.Strokes++
	}
	r.points = points[:0]
	return st
}

// Circle draws a world circle by bisecting angular spans, starting from
// quarter turns.
func (r *Renderer) Circle(center core.Vec2, radius float64) LineStats {
	var st LineStats
	angles := append(r.angles[:0], 0, math.Pi/2, math.Pi, 3*math.Pi/2, core.Tau)
	for meter := MaxLinePops; len(angles) >= 2; meter-- {
		if meter == 0 {
			st.Truncated = true
			break
		}
		cd := angles[len(angles)-1]
		angles = angles[:len(angles)-1]
		ad := angles[len(angles)-1]
		ap := r.Frame.Project(center.Ray(ad, radius))
		cp := r.Frame.Project(center.Ray(cd, radius))
		if ap.Dist(cp) > r.Frame.Threshold {
			angles = append(angles, (ad+cd)/2, cd)
			continue
		}
		strokeChord(r.Pen, ap, cp)
		st.Strokes++
	}
	r.angles = angles[:0]
	return st
}

// ScreenExtent estimates the projected radius of a disk of the given world
// radius around center.
func (r *Renderer) ScreenExtent(center core.Vec2, radius float64) float64 {
	cp := r.Frame.Project(center)
	extent := 0.0
	for k := 0; k < 4; k++ {
		rim := r.Frame.Project(center.Ray(float64(k)*math.Pi/2, radius))
		extent = math.Max(extent, cp.Dist(rim))
	}
	return extent
}
