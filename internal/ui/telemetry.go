package ui

import (
	"fmt"
	"math"
	"time"

	"orbit-lod/internal/render"
	"orbit-lod/internal/sim"
	"orbit-lod/internal/surface"
	"orbit-lod/internal/view"
	"orbit-lod/pkg/core"
)

// Telemetry is the vessel's situation relative to the target body.
type Telemetry struct {
	// Range is the distance between vessel and target centres.
	Range float64
	// Meridian is the body-fixed angle under the vessel, in [0, 2π).
	Meridian float64
	// Altitude is the height above the outline at Meridian. It is negative
	// inside the body.
	Altitude float64
	// Speed is the vessel speed relative to the target, in units per second.
	Speed float64
	// Heading is the vessel orientation in degrees, in [0, 360).
	Heading float64
	// TickRate is the simulation rate in ticks per second.
	TickRate float64
}

// Measure computes telemetry for w. The outline radius is looked up at the
// same detail the renderer uses for threshold.
func Measure(w *sim.World, desc surface.Describer, threshold float64, period time.Duration) Telemetry {
	rel := w.Vessel.Pos().Sub(w.Target.Pos())
	meridian := core.NormalizeAngle(rel.Angle() - w.Target.A)
	dist := rel.Len()
	vel := w.VesselVel.Pos().Sub(w.TargetVel.Pos())
	t := Telemetry{
		Range:    dist,
		Meridian: meridian,
		Altitude: dist - surface.RadiusAt(desc, meridian, threshold),
		Speed:    vel.Len() * 1000,
		Heading:  core.NormalizeAngle(w.Vessel.A) * 180 / math.Pi,
	}
	if period > 0 {
		t.TickRate = float64(time.Second) / float64(period)
	}
	return t
}

// Lines formats the telemetry for display, one reading per line.
func (t Telemetry) Lines() []string {
	return []string{
		fmt.Sprintf("range    %8.2f", t.Range),
		fmt.Sprintf("altitude %8.2f", t.Altitude),
		fmt.Sprintf("speed    %8.3f/s", t.Speed),
		fmt.Sprintf("heading  %6.1f°", t.Heading),
		fmt.Sprintf("tick     %6.1f/s", t.TickRate),
	}
}

// StatsLines formats the last outline pass for the debug overlay.
func StatsLines(st render.SurfaceStats) []string {
	if st.Abstract {
		return []string{"lod      dot"}
	}
	lines := []string{
		fmt.Sprintf("leaves   %d", st.Leaves),
		fmt.Sprintf("depth    %d", st.Depth),
		fmt.Sprintf("strokes  %d", st.Strokes),
	}
	if st.Truncated {
		lines = append(lines, "truncated")
	}
	return lines
}

// RingDistances are the world distances marked by the range-ring overlay.
var RingDistances = []float64{1, 10, 100, 1000}

// RingRadii returns the screen radius of each range ring in frame.
func RingRadii(frame view.Frame, distances []float64) []float64 {
	radii := make([]float64, len(distances))
	for i, d := range distances {
		radii[i] = view.ScreenRadius(d, frame.Radius, frame.Elevation)
	}
	return radii
}
