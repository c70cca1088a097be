package core

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Vec2 is a point or displacement in the plane.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Rotate turns v counter-clockwise (in y-up terms) by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Ray returns the point distance away from v in direction angle.
func (v Vec2) Ray(angle, distance float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X + cos*distance, v.Y + sin*distance}
}

// Lerp interpolates from v (t=0) to o (t=1).
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Len is the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Angle is the direction of v; zero for the zero vector.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Dist is the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Pose is a position plus orientation. Velocities and impulses share the type.
type Pose struct {
	X, Y, A float64
}

// Pos drops the orientation.
func (p Pose) Pos() Vec2 { return Vec2{p.X, p.Y} }

// Add returns the componentwise sum.
func (p Pose) Add(o Pose) Pose { return Pose{p.X + o.X, p.Y + o.Y, p.A + o.A} }

// Scale multiplies every component by k.
func (p Pose) Scale(k float64) Pose { return Pose{p.X * k, p.Y * k, p.A * k} }

// NormalizeAngle wraps a into [0, Tau).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	if a >= Tau {
		a = 0
	}
	return a
}
