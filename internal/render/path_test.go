package render

import (
	"math"
	"testing"

	"orbit-lod/pkg/core"
)

func TestArcSweep(t *testing.T) {
	cases := []struct {
		a0, a1 float64
		ccw    bool
		want   float64
	}{
		{0, math.Pi, false, math.Pi},
		{0, core.Tau, false, core.Tau},
		{0, 3 * core.Tau, false, core.Tau},
		{math.Pi, 0, false, math.Pi},
		{0, math.Pi / 2, true, -3 * math.Pi / 2},
		{0, -core.Tau, true, -core.Tau},
	}
	for _, tc := range cases {
		if got := arcSweep(tc.a0, tc.a1, tc.ccw); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("arcSweep(%v, %v, %v) = %v, want %v", tc.a0, tc.a1, tc.ccw, got, tc.want)
		}
	}
}

func TestPolyPathArcOnCircle(t *testing.T) {
	var p polyPath
	p.moveTo(core.V(0, 0))
	p.arc(10, 10, 5, 0, core.Tau, false)
	if len(p.subpaths) != 1 {
		t.Fatalf("arc should extend the current subpath, got %d", len(p.subpaths))
	}
	pts := p.subpaths[0][1:]
	if len(pts) < 5 {
		t.Fatalf("too few arc points: %d", len(pts))
	}
	for _, pt := range pts {
		if d := pt.Dist(core.V(10, 10)); math.Abs(d-5) > 1e-9 {
			t.Fatalf("arc point %v off the circle (%v)", pt, d)
		}
	}
	n := 0
	p.segments(func(a, b core.Vec2) { n++ })
	if n != len(pts) {
		t.Fatalf("segments = %d, want %d", n, len(pts))
	}
}

func TestLineToWithoutMoveStartsSubpath(t *testing.T) {
	var p polyPath
	p.lineTo(core.V(1, 1))
	p.lineTo(core.V(2, 2))
	n := 0
	p.segments(func(a, b core.Vec2) {
		if a != core.V(1, 1) || b != core.V(2, 2) {
			t.Fatalf("unexpected segment %v-%v", a, b)
		}
		n++
	})
	if n != 1 {
		t.Fatalf("segments = %d", n)
	}
}
