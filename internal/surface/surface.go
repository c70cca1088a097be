// Package surface synthesizes the outline of an irregular body as a radius
// field over the dyadic subdivision of the circle. Nodes are never stored: any
// node can be recomputed from its position and the entropies of the two nodes
// that bracket it one level up.
package surface

import "orbit-lod/pkg/core"

// Sample is the value attached to a dyadic node.
type Sample struct {
	Entropy float64
	Radius  float64
}

// Describer yields the sample at position n/d of the circle, where d = 2^depth
// and before/after are the entropies of the bracketing nodes at depth-1.
type Describer interface {
	Describe(n, d uint64, before, after float64, depth int) Sample
}

// Field is the noise-driven asteroid profile.
type Field struct {
	seed     core.Seed
	scratch  *core.State
	min, max float64
}

// NewField returns a Field drawing from seed. scratch is overwritten on every
// Describe call and may be shared with other non-concurrent users.
func NewField(seed core.Seed, scratch *core.State, min, max float64) *Field {
	if scratch == nil {
		scratch = new(core.State)
	}
	return &Field{seed: seed, scratch: scratch, min: min, max: max}
}

// Bounds reports the radius range of the field.
func (f *Field) Bounds() (min, max float64) { return f.min, f.max }

// IndexWords maps a dyadic position to the four words folded into the seed.
// The position is scaled onto 32 bits, inverted, and fanned out by arithmetic
// shifts so neighbouring positions still differ in every word.
func IndexWords(n, d uint64) [4]uint32 {
	s := ^int32(uint32(uint64(float64(n) * 0xffffffff / float64(d))))
	return [4]uint32{uint32(s), uint32(s >> 8), uint32(s >> 16), uint32(s >> 24)}
}

// Describe implements Describer.
func (f *Field) Describe(n, d uint64, before, after float64, depth int) Sample {
	w := IndexWords(n, d)
	f.scratch.Reset(f.seed)
	f.scratch.Fold(w[:]...)
	f.scratch.Churn()
	f.scratch.Churn()
	f.scratch.Churn()

	// Shallow nodes average more draws, pulling coarse features toward the
	// middle of the range.
	base := 0.5
	for i := max(1, 9-depth); i > 0; i-- {
		base = (base + f.scratch.Random()) / 2
	}

	fd := float64(d)
	entropy := base/fd + (1-1/fd)*(before+after)/2
	return Sample{Entropy: entropy, Radius: f.min + (f.max-f.min)*entropy}
}
