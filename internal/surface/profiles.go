package surface

import (
	"maps"
	"math"
	"slices"

	"orbit-lod/pkg/core"
)

// Factory constructs a profile over the radius range [min, max].
type Factory func(seed core.Seed, scratch *core.State, min, max float64) Describer

var profiles = map[string]Factory{}

// Register adds a profile factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	profiles[name] = f
}

// Profiles exposes the registry of available profiles.
func Profiles() map[string]Factory {
	return profiles
}

// Names lists the registered profiles in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(profiles))
}

// Sinusoid is a smooth star-shaped profile with Count lobes. It ignores the
// neighbour entropies; every node is a direct function of its angle.
type Sinusoid struct {
	Min, Max float64
	Count    int
}

// Describe implements Describer.
func (s Sinusoid) Describe(n, d uint64, _, _ float64, _ int) Sample {
	f := float64(n) / float64(d)
	e := 0.5 + 0.5*math.Sin(f*core.Tau*float64(s.Count))
	return Sample{Entropy: e, Radius: s.Min + (s.Max-s.Min)*e}
}

func init() {
	Register("asteroid", func(seed core.Seed, scratch *core.State, min, max float64) Describer {
		return NewField(seed, scratch, min, max)
	})
	Register("sinusoid", func(_ core.Seed, _ *core.State, min, max float64) Describer {
		return Sinusoid{Min: min, Max: max, Count: 5}
	})
}
