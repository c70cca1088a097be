package surface

import (
	"math"
	"testing"

	"orbit-lod/pkg/core"
)

func TestRadiusAtZeroMeridian(t *testing.T) {
	f := newTestField(core.ZeroSeed())
	root := f.Describe(0, 1, 0, 0, 0)
	for _, threshold := range []float64{0.5, 5, 20, 1e6} {
		got := RadiusAt(f, 0, threshold)
		if math.Abs(got-root.Radius) > 1e-9 {
			t.Fatalf("threshold %v: RadiusAt(0) = %v, want %v", threshold, got, root.Radius)
		}
	}
}

func TestRadiusAtWrapsMeridian(t *testing.T) {
	f := newTestField(core.NewSeed(5))
	a := RadiusAt(f, 1.25, 10)
	b := RadiusAt(f, 1.25+core.Tau, 10)
	c := RadiusAt(f, 1.25-2*core.Tau, 10)
	if math.Abs(a-b) > 1e-9 || math.Abs(a-c) > 1e-9 {
		t.Fatalf("meridian not normalized: %v %v %v", a, b, c)
	}
}

func TestRadiusAtCoarseMatchesTree(t *testing.T) {
	f := newTestField(core.NewSeed(11))
	tree := levels(f, MinDepth+1)
	leaves := tree[MinDepth+1]
	d := len(leaves)

	// A huge threshold stops right after the forced levels.
	for n := 0; n < d; n++ {
		got := RadiusAt(f, float64(n)/float64(d)*core.Tau, 1e9)
		if math.Abs(got-leaves[n].Radius) > 1e-6 {
			t.Fatalf("node %d/%d: RadiusAt %v, tree %v", n, d, got, leaves[n].Radius)
		}
	}

	// Between nodes the lookup follows the chord.
	mid := (0.5 + 3) / float64(d) * core.Tau
	want := (leaves[3].Radius + leaves[4].Radius) / 2
	if got := RadiusAt(f, mid, 1e9); math.Abs(got-want) > 1e-6 {
		t.Fatalf("chord midpoint = %v, want %v", got, want)
	}
}

func TestRadiusAtRefinesWithThreshold(t *testing.T) {
	f := newTestField(core.NewSeed(3))
	lo, hi := f.Bounds()
	prev := math.NaN()
	for _, threshold := range []float64{64, 16, 4, 1, 0.25} {
		got := RadiusAt(f, 2.0, threshold)
		if got < lo || got > hi {
			t.Fatalf("threshold %v: radius %v outside [%v, %v]", threshold, got, lo, hi)
		}
		if !math.IsNaN(prev) && math.Abs(got-prev) > (hi-lo)/4 {
			t.Fatalf("refinement jumped from %v to %v", prev, got)
		}
		prev = got
	}
}

func TestRadiusAtNeverExceedsMaxDepth(t *testing.T) {
	f := newTestField(core.NewSeed(1))
	got := RadiusAt(f, 4.0, 0)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("zero threshold produced %v", got)
	}
}

func TestSinusoidProfile(t *testing.T) {
	s := Sinusoid{Min: 10, Max: 20, Count: 5}
	if got := s.Describe(0, 1, 0, 0, 0); math.Abs(got.Radius-15) > 1e-9 {
		t.Fatalf("sinusoid at 0 = %+v", got)
	}
	peak := s.Describe(1, 20, 0, 0, 0) // a quarter lobe
	if math.Abs(peak.Radius-20) > 1e-9 || math.Abs(peak.Entropy-1) > 1e-9 {
		t.Fatalf("sinusoid peak = %+v", peak)
	}
}

func TestProfilesRegistry(t *testing.T) {
	names := Names()
	if len(names) < 2 || names[0] != "asteroid" || names[1] != "sinusoid" {
		t.Fatalf("unexpected profiles %v", names)
	}
	desc := Profiles()["asteroid"](core.ZeroSeed(), nil, 500, 1000)
	if got := desc.Describe(0, 1, 0, 0, 0); math.Abs(got.Radius-903.50321792076966) > 1e-9 {
		t.Fatalf("registered asteroid root = %+v", got)
	}
}
