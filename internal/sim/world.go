// Package sim integrates the vessel and its target under keyboard thrust.
package sim

import (
	"time"

	"orbit-lod/pkg/core"
)

const (
	// Thrust is the translational acceleration of one held key, in world
	// units per ms².
	Thrust = 1e-6
	// Torque is the angular acceleration of one held key, in rad per ms².
	Torque = core.Tau / 1e7
)

// World holds the vessel and target state. Poses are positions plus
// orientation; the Vel poses are their first derivatives per millisecond.
type World struct {
	Vessel    core.Pose
	VesselVel core.Pose
	Target    core.Pose
	TargetVel core.Pose
	Keys      Keys
	Ticks     int
}

// NewWorld places the vessel at the origin and the target drifting past it.
func NewWorld() *World {
	return &World{
		Target:    core.Pose{X: 100},
		TargetVel: core.Pose{X: 1.0 / 1000},
	}
}

// Impulse is the acceleration produced by the held keys, in world axes.
func (w *World) Impulse() core.Pose {
	thrust := core.V(
		w.Keys.axis(KeyForward, KeyBack)*Thrust,
		w.Keys.axis(KeyStarboard, KeyPort)*Thrust,
	).Rotate(w.Vessel.A)
	return core.Pose{X: thrust.X, Y: thrust.Y, A: w.Keys.axis(KeyTurnLeft, KeyTurnRight) * Torque}
}

// Tick advances the world by dt with explicit Euler steps.
func (w *World) Tick(dt time.Duration) {
	ms := float64(dt) / float64(time.Millisecond)
	w.VesselVel = w.VesselVel.Add(w.Impulse().Scale(ms))
	w.Vessel = w.Vessel.Add(w.VesselVel.Scale(ms))
	w.Target = w.Target.Add(w.TargetVel.Scale(ms))
	w.Ticks++
}
