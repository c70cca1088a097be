package app

import (
	"fmt"
	"math"
	"time"

	"orbit-lod/internal/render"
	"orbit-lod/internal/sim"
	"orbit-lod/internal/surface"
	"orbit-lod/internal/ui"
	"orbit-lod/internal/view"
	"orbit-lod/pkg/core"
)

// VesselRadius is the size of the vessel glyph in world units.
const VesselRadius = 0.5

// Scene is the state every viewer shares: the world, the target's surface and
// the adjustable view settings. It composes frames onto any render.Pen.
type Scene struct {
	World   *sim.World
	Surface surface.Describer
	Clock   *sim.FixedStep
	// Seed is the resolved surface seed; other seeded effects share it.
	Seed core.Seed

	Elevation float64
	Threshold float64
	Margin    float64

	extent   float64
	renderer *render.Renderer
}

// NewScene builds the world and surface described by cfg.
func NewScene(cfg *Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	factory := surface.Profiles()[cfg.Profile]
	seed := cfg.SurfaceSeed()
	return &Scene{
		World:     sim.NewWorld(),
		Surface:   factory(seed, nil, cfg.Min, cfg.Max),
		Clock:     sim.NewFixedStep(cfg.Tick),
		Seed:      seed,
		Elevation: cfg.Elevation,
		Threshold: cfg.Threshold,
		Margin:    cfg.Margin,
		extent:    cfg.Max,
		renderer:  render.NewRenderer(nil, view.Frame{}),
	}, nil
}

// Step advances the world if a tick is due at now.
func (s *Scene) Step(now time.Time) bool {
	dt, ok := s.Clock.Due(now)
	if ok {
		s.World.Tick(dt)
	}
	return ok
}

// Resume restarts the tick clock at now after a pause.
func (s *Scene) Resume(now time.Time) { s.Clock.Restart(now) }

// Frame returns the view frame for a width x height viewport.
func (s *Scene) Frame(width, height int) view.Frame {
	return view.FrameFor(width, height, s.Elevation, s.Threshold, s.Margin)
}

// Draw clears the viewport and draws the vessel and the target body from the
// vessel's point of view.
func (s *Scene) Draw(pen render.Pen, width, height int) render.SurfaceStats {
	pen.FillRect(0, 0, float64(width), float64(height))
	r := s.renderer
	r.Pen = pen
	r.Frame = s.Frame(width, height)

	w := s.World
	cam := view.Camera{Eye: w.Vessel}
	r.Vessel(cam.ToView(w.Vessel.Pos()), cam.Heading(w.Vessel.A), VesselRadius)
	return r.Surface(render.Body{
		Center:      cam.ToView(w.Target.Pos()),
		Orientation: cam.Heading(w.Target.A),
		Surface:     s.Surface,
		Extent:      s.extent,
	})
}

// Telemetry measures the world at the current detail threshold.
func (s *Scene) Telemetry() ui.Telemetry {
	return ui.Measure(s.World, s.Surface, s.Threshold, s.Clock.Period())
}

// Controls implements ui.Tunables.
func (s *Scene) Controls() []ui.Control {
	return []ui.Control{
		{Key: "elevation", Label: "Elevation", Type: ui.ParamTypeFloat, Step: 1, Min: 1, HasMin: true},
		{Key: "threshold", Label: "Threshold", Type: ui.ParamTypeFloat, Step: 1, Min: 1, Max: 200, HasMin: true, HasMax: true},
		{Key: "tick", Label: "Tick ms", Type: ui.ParamTypeInt, Step: 10, Min: 10, Max: 1000, HasMin: true, HasMax: true},
	}
}

// Value implements ui.Tunables.
func (s *Scene) Value(key string) (float64, bool) {
	switch key {
	case "elevation":
		return s.Elevation, true
	case "threshold":
		return s.Threshold, true
	case "tick":
		return float64(s.Clock.Period()) / float64(time.Millisecond), true
	}
	return 0, false
}

// Set implements ui.Tunables.
func (s *Scene) Set(key string, value float64) bool {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "elevation":
		s.Elevation = value
	case "threshold":
		s.Threshold = value
	case "tick":
		s.Clock.SetPeriod(time.Duration(math.Round(value)) * time.Millisecond)
	default:
		return false
	}
	return true
}

// Approach places the vessel altitude units above the target's outline at
// meridian, facing the body centre.
func (s *Scene) Approach(meridian, altitude float64) {
	w := s.World
	r := surface.RadiusAt(s.Surface, meridian, s.Threshold)
	at := w.Target.Pos().Ray(w.Target.A+meridian, r+altitude)
	w.Vessel.X, w.Vessel.Y = at.X, at.Y
	w.Vessel.A = w.Target.A + meridian + math.Pi
}

var _ ui.Tunables = (*Scene)(nil)
