// Package view holds the per-frame viewer parameters and the fisheye mapping
// from viewer-relative world coordinates to screen pixels.
package view

import (
	"math"

	"orbit-lod/pkg/core"
)

// Frame is constant for one rendered frame.
type Frame struct {
	// Center is the screen position of the viewer.
	Center core.Vec2
	// Radius is the screen radius of the horizon, in pixels.
	Radius float64
	// Elevation is the world distance that projects to half of Radius.
	Elevation float64
	// Threshold is the largest screen chord, in pixels, drawn without
	// subdividing.
	Threshold float64
}

// FrameFor derives a frame centred in a width x height viewport, leaving
// margin pixels between the horizon and the nearest edge.
func FrameFor(width, height int, elevation, threshold, margin float64) Frame {
	r := float64(min(width, height))/2 - margin
	if r < 1 {
		r = 1
	}
	return Frame{
		Center:    core.V(float64(width)/2, float64(height)/2),
		Radius:    r,
		Elevation: elevation,
		Threshold: threshold,
	}
}

// Project maps p, relative to a viewer at the origin, onto the screen. Every
// finite point lands strictly inside the disk of the given radius around
// center. The origin maps to center.
func Project(p, center core.Vec2, radius, elevation float64) core.Vec2 {
	angle := math.Atan2(p.Y, p.X)
	hypot := math.Hypot(p.X, p.Y)
	return center.Ray(angle, ScreenRadius(hypot, radius, elevation))
}

// ScreenRadius is the distance from the view centre at which a point hypot
// world units from the viewer is drawn.
func ScreenRadius(hypot, radius, elevation float64) float64 {
	return math.Atan2(hypot, elevation) / (math.Pi / 2) * radius
}

// Project maps p with the frame's parameters.
func (f Frame) Project(p core.Vec2) core.Vec2 {
	return Project(p, f.Center, f.Radius, f.Elevation)
}

// Camera converts world coordinates into the viewer-relative frame of Eye.
// The eye's heading always points up the screen.
type Camera struct {
	Eye core.Pose
}

// ToView maps a world point to viewer-relative coordinates.
func (c Camera) ToView(p core.Vec2) core.Vec2 {
	return p.Sub(c.Eye.Pos()).Rotate(-c.Eye.A - core.Tau/4)
}

// Heading maps a world orientation to a view orientation.
func (c Camera) Heading(a float64) float64 {
	return a - c.Eye.A - core.Tau/4
}
