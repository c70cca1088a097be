package sim

import (
	"math"
	"testing"
	"time"

	"orbit-lod/pkg/core"
)

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-12*math.Max(1, math.Abs(b)) }

func TestKeyForRune(t *testing.T) {
	cases := map[rune]Key{
		'w': KeyForward, 's': KeyBack, 'a': KeyPort,
		'd': KeyStarboard, 'q': KeyTurnLeft, 'e': KeyTurnRight, 'W': KeyForward,
	}
	for r, want := range cases {
		got, ok := KeyForRune(r)
		if !ok || got != want {
			t.Fatalf("KeyForRune(%q) = %v,%v want %v", r, got, ok, want)
		}
	}
	if _, ok := KeyForRune('x'); ok {
		t.Fatalf("unexpected mapping for x")
	}
}

func TestKeysReleaseAll(t *testing.T) {
	var ks Keys
	ks.Press(KeyForward)
	ks.Press(KeyTurnLeft)
	ks.Press(Key(42))
	if ks.Held() != 2 {
		t.Fatalf("held = %d want 2", ks.Held())
	}
	ks.Release(KeyForward)
	if ks.Held() != 1 {
		t.Fatalf("held after release = %d want 1", ks.Held())
	}
	ks.ReleaseAll()
	if ks.Held() != 0 {
		t.Fatalf("held after release all = %d", ks.Held())
	}
}

func TestTickCoasts(t *testing.T) {
	w := NewWorld()
	w.Tick(100 * time.Millisecond)
	if w.Vessel != (core.Pose{}) {
		t.Fatalf("idle vessel moved: %+v", w.Vessel)
	}
	if !near(w.Target.X, 100.1) || w.Target.Y != 0 {
		t.Fatalf("target = %+v want x=100.1", w.Target)
	}
	if w.Ticks != 1 {
		t.Fatalf("ticks = %d", w.Ticks)
	}
}

func TestTickForwardThrust(t *testing.T) {
	w := NewWorld()
	w.Keys.Press(KeyForward)
	w.Tick(100 * time.Millisecond)
	// v = 1e-6*100, x = v*100
	if !near(w.VesselVel.X, 1e-4) || !near(w.Vessel.X, 1e-2) {
		t.Fatalf("vel %+v pos %+v", w.VesselVel, w.Vessel)
	}
	w.Keys.Release(KeyForward)
	w.Tick(100 * time.Millisecond)
	if !near(w.VesselVel.X, 1e-4) || !near(w.Vessel.X, 2e-2) {
		t.Fatalf("coast: vel %+v pos %+v", w.VesselVel, w.Vessel)
	}
}

func TestThrustFollowsHeading(t *testing.T) {
	w := NewWorld()
	w.Vessel.A = core.Tau / 4
	w.Keys.Press(KeyForward)
	imp := w.Impulse()
	if math.Abs(imp.X) > 1e-20 || !near(imp.Y, Thrust) {
		t.Fatalf("forward impulse at quarter turn = %+v", imp)
	}
	w.Keys.ReleaseAll()
	w.Keys.Press(KeyStarboard)
	imp = w.Impulse()
	if !near(imp.X, -Thrust) || math.Abs(imp.Y) > 1e-20 {
		t.Fatalf("starboard impulse at quarter turn = %+v", imp)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	w := NewWorld()
	for _, k := range []Key{KeyForward, KeyBack, KeyPort, KeyStarboard, KeyTurnLeft, KeyTurnRight} {
		w.Keys.Press(k)
	}
	if imp := w.Impulse(); imp != (core.Pose{}) {
		t.Fatalf("impulse = %+v want zero", imp)
	}
}

func TestTorque(t *testing.T) {
	w := NewWorld()
	w.Keys.Press(KeyTurnLeft)
	w.Tick(10 * time.Millisecond)
	if !near(w.VesselVel.A, Torque*10) || !near(w.Vessel.A, Torque*100) {
		t.Fatalf("spin %+v", w.Vessel)
	}
	w = NewWorld()
	w.Keys.Press(KeyTurnRight)
	w.Tick(10 * time.Millisecond)
	if w.VesselVel.A >= 0 {
		t.Fatalf("turn right spun %v", w.VesselVel.A)
	}
}

func TestFixedStep(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	if _, ok := fs.Due(t0); ok {
		t.Fatalf("first call ticked")
	}
	if _, ok := fs.Due(t0.Add(50 * time.Millisecond)); ok {
		t.Fatalf("ticked early")
	}
	dt, ok := fs.Due(t0.Add(130 * time.Millisecond))
	if !ok || dt != 130*time.Millisecond {
		t.Fatalf("Due = %v,%v want 130ms,true", dt, ok)
	}
	dt, ok = fs.Due(t0.Add(230 * time.Millisecond))
	if !ok || dt != 100*time.Millisecond {
		t.Fatalf("second Due = %v,%v", dt, ok)
	}
	fs.SetPeriod(0)
	if fs.Period() != DefaultPeriod {
		t.Fatalf("period = %v", fs.Period())
	}
}

func TestLatch(t *testing.T) {
	l := Latch{Hold: 200 * time.Millisecond}
	var ks Keys
	t0 := time.Unix(0, 0)
	l.Pulse(KeyForward, t0)
	l.Apply(t0.Add(100*time.Millisecond), &ks)
	if !ks[KeyForward] {
		t.Fatalf("key dropped inside hold window")
	}
	l.Pulse(KeyForward, t0.Add(150*time.Millisecond))
	l.Apply(t0.Add(300*time.Millisecond), &ks)
	if !ks[KeyForward] {
		t.Fatalf("repeat did not extend hold")
	}
	l.Apply(t0.Add(400*time.Millisecond), &ks)
	if ks[KeyForward] {
		t.Fatalf("key held past window")
	}
	l.Pulse(KeyBack, t0)
	l.Reset()
	l.Apply(t0, &ks)
	if ks.Held() != 0 {
		t.Fatalf("reset left keys held")
	}
}

func TestFixedStepRestartSkipsPause(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	t0 := time.Unix(0, 0)
	fs.Due(t0)
	fs.Due(t0.Add(100 * time.Millisecond))
	resume := t0.Add(time.Minute)
	fs.Restart(resume)
	if _, ok := fs.Due(resume.Add(50 * time.Millisecond)); ok {
		t.Fatalf("ticked early after restart")
	}
	dt, ok := fs.Due(resume.Add(100 * time.Millisecond))
	if !ok || dt != 100*time.Millisecond {
		t.Fatalf("Due after restart = %v,%v want 100ms,true", dt, ok)
	}
}
